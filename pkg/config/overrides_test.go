package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestApplyOverrides(t *testing.T) {
	c, err := NewDatastore("")
	assert.NoError(t, err)
	c.Store.Configuration.APIKey = "from-file"
	c.Store.Configuration.CredentialsFile = "kept.json"

	v := viper.New()
	v.Set(KeyAPIKey, "from-flag")
	v.Set(KeyDocumentID, "doc-9")
	v.Set(KeyEndpoint, "http://127.0.0.1:1234")
	v.Set(KeyUnThrottle, true)
	v.Set(KeyRequestsPerSecond, 0)
	v.Set(KeyTimeoutSeconds, 5)
	v.Set(KeySheets, []string{"Summary:3", "Raw"})

	c.ApplyOverrides(v)

	api := c.Store.Configuration
	assert.Equal(t, "from-flag", api.APIKey)
	assert.Equal(t, "kept.json", api.CredentialsFile)
	assert.Equal(t, "http://127.0.0.1:1234", api.SheetsAPIURL)
	assert.True(t, api.UnThrottle)
	assert.Equal(t, float64(5), api.RequestsPerSecond)
	assert.Equal(t, 5, api.TimeoutSeconds)
	assert.Equal(t, "doc-9", c.Store.DocumentID)
	assert.Equal(t, []SheetConfig{{Name: "Summary", HeaderRowIndex: 3}, {Name: "Raw"}}, c.Store.Sheets)
}

func TestApplyOverridesFromEnvironment(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "env-key")
	t.Setenv("SPREADSHEET_ID", "env-doc")
	t.Setenv("SHEETMAPPER_LISTEN_ADDRESS", ":9090")

	c, err := NewDatastore("")
	assert.NoError(t, err)

	c.ApplyOverrides(NewViper())

	assert.Equal(t, "env-key", c.Store.Configuration.APIKey)
	assert.Equal(t, "env-doc", c.Store.DocumentID)
	assert.Equal(t, ":9090", c.Store.ListenAddress)
}

func TestApplyOverridesNothingSet(t *testing.T) {
	c, err := NewDatastore("")
	assert.NoError(t, err)
	before := c.Store

	c.ApplyOverrides(viper.New())

	assert.Equal(t, before, c.Store)
}
