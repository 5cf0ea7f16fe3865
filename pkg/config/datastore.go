package config

import (
	"fmt"
	"os"
	"time"

	"sheetmapper/pkg/sheets"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultListenAddress     = ":80"
	defaultRequestsPerSecond = 5
	defaultTimeoutSeconds    = 30
)

type APIConfig struct {
	// Base URL of the Sheets API. Empty means the public Google endpoint.
	SheetsAPIURL    string
	APIKey          string
	CredentialsFile string
	HTTPProxyURL    string
	UnThrottle      bool // Should we disable rate-limiting for this API?
	// Ignored when UnThrottle is set.
	RequestsPerSecond float64
	TimeoutSeconds    int
}

// SheetConfig is a sheet read by default when no sheets are requested
// explicitly.
type SheetConfig struct {
	Name           string
	HeaderRowIndex int
}

type Store struct {
	Configuration APIConfig
	DocumentID    string
	ListenAddress string
	Sheets        []SheetConfig
}

type Config struct {
	Filename string
	Store    Store
}

// Write the current config out to a toml file.
func (c *Config) Save() error {
	b, err := toml.Marshal(c.Store)
	if err != nil {
		return err
	}
	return os.WriteFile(c.Filename, b, 0644)
}

// Load the current config from a toml file.
func (c *Config) Load() error {
	b, err := os.ReadFile(c.Filename)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, &c.Store)
}

// NewDatastore loads filename, writing a default config there when the file
// does not exist yet. An empty filename gives the defaults without touching
// the filesystem.
func NewDatastore(filename string) (*Config, error) {
	c := &Config{
		Filename: filename,
	}
	if filename != "" {
		if err := c.Load(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load config %s: %w", filename, err)
			}
			setDefaults(&c.Store)
			if err := c.Save(); err != nil {
				return nil, fmt.Errorf("failed to write default config %s: %w", filename, err)
			}
		}
	}
	setDefaults(&c.Store)
	return c, nil
}

func setDefaults(s *Store) {
	if s.ListenAddress == "" {
		s.ListenAddress = defaultListenAddress
	}
	if s.Configuration.RequestsPerSecond <= 0 {
		s.Configuration.RequestsPerSecond = defaultRequestsPerSecond
	}
	if s.Configuration.TimeoutSeconds <= 0 {
		s.Configuration.TimeoutSeconds = defaultTimeoutSeconds
	}
}

func (c *Config) ClientConfig() sheets.ClientConfig {
	api := c.Store.Configuration
	return sheets.ClientConfig{
		Endpoint:          api.SheetsAPIURL,
		APIKey:            api.APIKey,
		CredentialsFile:   api.CredentialsFile,
		HTTPProxyURL:      api.HTTPProxyURL,
		UnThrottle:        api.UnThrottle,
		RequestsPerSecond: api.RequestsPerSecond,
		Timeout:           time.Duration(api.TimeoutSeconds) * time.Second,
	}
}

func (c *Config) SheetOptions() []sheets.SheetOption {
	options := make([]sheets.SheetOption, 0, len(c.Store.Sheets))
	for _, s := range c.Store.Sheets {
		options = append(options, sheets.SheetOption{
			ID:             s.Name,
			HeaderRowIndex: s.HeaderRowIndex,
		})
	}
	return options
}
