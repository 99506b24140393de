//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/delivery-service/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name          string
		cfg           config.LogConfig
		expectedLevel zerolog.Level
	}{
		{name: "empty level defaults to info", cfg: config.LogConfig{}, expectedLevel: zerolog.InfoLevel},
		{name: "debug", cfg: config.LogConfig{Level: "debug"}, expectedLevel: zerolog.DebugLevel},
		{name: "pretty output", cfg: config.LogConfig{Level: "warn", Pretty: true}, expectedLevel: zerolog.WarnLevel},
		{name: "unknown level falls back to info", cfg: config.LogConfig{Level: "chatty"}, expectedLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				InitializeLogger(tt.cfg)
			})
			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}

	InitializeLogger(config.LogConfig{Level: "info"})
}
