package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDeviceName(t *testing.T) {
	tests := []struct {
		name       string
		deviceName string
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "valid name - lowercase",
			deviceName: "laptop",
			wantErr:    false,
		},
		{
			name:       "valid name - with dash",
			deviceName: "work-laptop",
			wantErr:    false,
		},
		{
			name:       "valid name - with underscore",
			deviceName: "home_pc",
			wantErr:    false,
		},
		{
			name:       "valid name - with numbers",
			deviceName: "phone2",
			wantErr:    false,
		},
		{
			name:       "valid name - max length",
			deviceName: "a1234567890123456789012345678901", // 32 символа
			wantErr:    false,
		},
		{
			name:       "invalid - empty name",
			deviceName: "",
			wantErr:    true,
			errMsg:     "device name cannot be empty",
		},
		{
			name:       "invalid - too short (2 chars)",
			deviceName: "pc",
			wantErr:    true,
			errMsg:     "must be at least 3 characters",
		},
		{
			name:       "invalid - too long (33 chars)",
			deviceName: "a12345678901234567890123456789012", // 33 символа
			wantErr:    true,
			errMsg:     "must not exceed 32 characters",
		},
		{
			name:       "invalid - with dot",
			deviceName: "work.laptop",
			wantErr:    true,
			errMsg:     "can only contain letters",
		},
		{
			name:       "invalid - with space",
			deviceName: "work laptop",
			wantErr:    true,
			errMsg:     "can only contain letters",
		},
		{
			name:       "invalid - cyrillic characters",
			deviceName: "ноутбук",
			wantErr:    true,
			errMsg:     "can only contain letters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeviceName(tt.deviceName)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateScope(t *testing.T) {
	tests := []struct {
		name    string
		scope   string
		wantErr bool
	}{
		{
			name:    "empty scope is default",
			scope:   "",
			wantErr: false,
		},
		{
			name:    "valid scope",
			scope:   "work",
			wantErr: false,
		},
		{
			name:    "valid scope with dash",
			scope:   "side-project",
			wantErr: false,
		},
		{
			name:    "invalid - with space",
			scope:   "side project",
			wantErr: true,
		},
		{
			name:    "invalid - too long",
			scope:   "a12345678901234567890123456789012",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScope(tt.scope)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
