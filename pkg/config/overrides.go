package config

import (
	"sheetmapper/pkg/sheets"

	"github.com/spf13/viper"
)

// Keys shared by command line flags, environment variables and the overlay.
const (
	KeyAPIKey            = "apiKey"
	KeyCredentialsFile   = "credentialsFile"
	KeyDocumentID        = "documentID"
	KeyEndpoint          = "endpoint"
	KeyProxy             = "proxy"
	KeyUnThrottle        = "unthrottle"
	KeyRequestsPerSecond = "requestsPerSecond"
	KeyTimeoutSeconds    = "timeoutSeconds"
	KeyListenAddress     = "listenAddress"
	KeySheets            = "sheets"
)

// NewViper returns a viper instance with the environment variables bound.
// Callers bind their own flags on top.
func NewViper() *viper.Viper {
	v := viper.New()
	_ = v.BindEnv(KeyAPIKey, "SHEETMAPPER_API_KEY", "GOOGLE_API_KEY")
	_ = v.BindEnv(KeyCredentialsFile, "SHEETMAPPER_CREDENTIALS_FILE", "GOOGLE_APPLICATION_CREDENTIALS")
	_ = v.BindEnv(KeyDocumentID, "SHEETMAPPER_DOCUMENT_ID", "SPREADSHEET_ID")
	_ = v.BindEnv(KeyEndpoint, "SHEETMAPPER_ENDPOINT")
	_ = v.BindEnv(KeyListenAddress, "SHEETMAPPER_LISTEN_ADDRESS")
	return v
}

// ApplyOverrides copies every key set in v over the loaded store.
func (c *Config) ApplyOverrides(v *viper.Viper) {
	api := &c.Store.Configuration
	if v.IsSet(KeyAPIKey) {
		api.APIKey = v.GetString(KeyAPIKey)
	}
	if v.IsSet(KeyCredentialsFile) {
		api.CredentialsFile = v.GetString(KeyCredentialsFile)
	}
	if v.IsSet(KeyEndpoint) {
		api.SheetsAPIURL = v.GetString(KeyEndpoint)
	}
	if v.IsSet(KeyProxy) {
		api.HTTPProxyURL = v.GetString(KeyProxy)
	}
	if v.IsSet(KeyUnThrottle) {
		api.UnThrottle = v.GetBool(KeyUnThrottle)
	}
	if v.IsSet(KeyRequestsPerSecond) && v.GetFloat64(KeyRequestsPerSecond) > 0 {
		api.RequestsPerSecond = v.GetFloat64(KeyRequestsPerSecond)
	}
	if v.IsSet(KeyTimeoutSeconds) && v.GetInt(KeyTimeoutSeconds) > 0 {
		api.TimeoutSeconds = v.GetInt(KeyTimeoutSeconds)
	}
	if v.IsSet(KeyDocumentID) {
		c.Store.DocumentID = v.GetString(KeyDocumentID)
	}
	if v.IsSet(KeyListenAddress) {
		c.Store.ListenAddress = v.GetString(KeyListenAddress)
	}
	if v.IsSet(KeySheets) {
		if options := sheets.ParseSheetOptions(v.GetStringSlice(KeySheets)); len(options) > 0 {
			c.Store.Sheets = make([]SheetConfig, len(options))
			for i, o := range options {
				c.Store.Sheets[i] = SheetConfig{Name: o.ID, HeaderRowIndex: o.HeaderRowIndex}
			}
		}
	}
}
