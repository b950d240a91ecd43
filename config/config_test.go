package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SITE_LANGUAGE", "")
	t.Setenv("CHECKOUT_BASIC_URL", "")
	t.Setenv("CHECKOUT_COMPLETE_URL", "")
	t.Setenv("SUPPORT_EMAIL", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, language.Spanish, cfg.LanguageTag())
	assert.Empty(t, cfg.CheckoutBasicURL)
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name: "all values set",
			env: map[string]string{
				"PORT":                  "3000",
				"SITE_LANGUAGE":         "es-AR",
				"CHECKOUT_BASIC_URL":    "https://pay.example.com/basic",
				"CHECKOUT_COMPLETE_URL": "https://pay.example.com/complete",
				"SUPPORT_EMAIL":         "soporte@example.com",
			},
		},
		{
			name:    "non numeric port",
			env:     map[string]string{"PORT": "http"},
			wantErr: true,
		},
		{
			name:    "checkout link is not a url",
			env:     map[string]string{"CHECKOUT_BASIC_URL": "not a url"},
			wantErr: true,
		},
		{
			name:    "bad support email",
			env:     map[string]string{"SUPPORT_EMAIL": "soporte"},
			wantErr: true,
		},
		{
			name:    "bad language tag",
			env:     map[string]string{"SITE_LANGUAGE": "not_a_language_tag!"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"PORT", "SITE_LANGUAGE", "CHECKOUT_BASIC_URL", "CHECKOUT_COMPLETE_URL", "SUPPORT_EMAIL"} {
				t.Setenv(key, tt.env[key])
			}

			cfg, err := FromEnv()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.env["PORT"], cfg.Port)
			assert.Equal(t, tt.env["CHECKOUT_COMPLETE_URL"], cfg.CheckoutCompleteURL)
			assert.Equal(t, "es-AR", cfg.LanguageTag().String())
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "es", cfg.LanguageTag().String())
}
