package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavit/mavit-cash/internal/common"
)

func TestSetupLogging(t *testing.T) {
	t.Cleanup(viper.Reset)

	tests := []struct {
		name   string
		level  string
		format string
		wantOK bool
	}{
		{name: "defaults", level: "info", format: "console", wantOK: true},
		{name: "json debug", level: "debug", format: "json", wantOK: true},
		{name: "bad level", level: "loud", format: "console"},
		{name: "bad format", level: "info", format: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("logging.level", tt.level)
			viper.Set("logging.format", tt.format)

			err := setupLogging()
			if tt.wantOK {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}
