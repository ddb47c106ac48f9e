package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		errorMsg    string
	}{
		{
			name: "Success with minimal required config",
			envVars: map[string]string{
				"POS_UPI_ID":         "payee@bank",
				"POS_ADMIN_PASSWORD": "secret",
			},
			expectError: false,
		},
		{
			name: "Success with all config specified",
			envVars: map[string]string{
				"POS_STORE_PATH":            "/tmp/pos.db",
				"POS_POLL_INTERVAL_SECONDS": "5",
				"POS_UPI_ID":                "payee@bank",
				"POS_UPI_NAME":              "Test Restaurant",
				"POS_ADMIN_PASSWORD":        "secret",
				"LOG_LEVEL":                 "debug",
				"LOG_FORMAT":                "console",
			},
			expectError: false,
		},
		{
			name: "Error - missing UPI payee id",
			envVars: map[string]string{
				"POS_ADMIN_PASSWORD": "secret",
			},
			expectError: true,
			errorMsg:    "UPI payee id is required",
		},
		{
			name: "Error - missing admin password",
			envVars: map[string]string{
				"POS_UPI_ID": "payee@bank",
			},
			expectError: true,
			errorMsg:    "admin password is required",
		},
		{
			name: "Error - sub-second poll interval",
			envVars: map[string]string{
				"POS_UPI_ID":                "payee@bank",
				"POS_ADMIN_PASSWORD":        "secret",
				"POS_POLL_INTERVAL_SECONDS": "0",
			},
			expectError: true,
			errorMsg:    "poll interval",
		},
		{
			name: "Error - invalid log level",
			envVars: map[string]string{
				"POS_UPI_ID":         "payee@bank",
				"POS_ADMIN_PASSWORD": "secret",
				"LOG_LEVEL":          "invalid",
			},
			expectError: true,
			errorMsg:    "invalid log level",
		},
		{
			name: "Error - invalid log format",
			envVars: map[string]string{
				"POS_UPI_ID":         "payee@bank",
				"POS_ADMIN_PASSWORD": "secret",
				"LOG_FORMAT":         "xml",
			},
			expectError: true,
			errorMsg:    "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
			}

			os.Clearenv()
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("POS_UPI_ID", "payee@bank")
	os.Setenv("POS_ADMIN_PASSWORD", "secret")
	defer os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/pos.db", cfg.Store.Path)
	assert.Equal(t, 10*time.Second, cfg.Store.PollInterval)
	assert.Equal(t, "Kerala Veg Restaurant", cfg.UPI.PayeeName)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}
