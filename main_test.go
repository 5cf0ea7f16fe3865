package main

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogger(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		structured bool
		wantLevel  log.Level
		wantFormat log.Formatter
		wantErr    bool
	}{
		{name: "default text", level: "info", wantLevel: log.InfoLevel, wantFormat: &log.TextFormatter{}},
		{name: "debug json", level: "debug", structured: true, wantLevel: log.DebugLevel, wantFormat: &log.JSONFormatter{}},
		{name: "unknown level", level: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := log.New()
			err := configureLogger(logger, tt.level, tt.structured)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, logger.GetLevel())
			assert.IsType(t, tt.wantFormat, logger.Formatter)
		})
	}
}
