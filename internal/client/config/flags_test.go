package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		want        Config
	}{
		{
			name: "all flags",
			args: []string{"storydeck", "-a", "http://flag.example:9000", "-t", "30", "-d", "alt.db"},
			want: Config{ServerBaseURL: "http://flag.example:9000", RequestTimeout: 30 * time.Second, CredentialsDSN: "alt.db"},
		},
		{
			name: "defaults survive absent flags",
			args: []string{"storydeck"},
			want: func() Config { var c Config; c.LoadDefaults(); return c }(),
		},
		{
			name:        "non-numeric timeout",
			args:        []string{"storydeck", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, tt.want.ServerBaseURL, cfg.ServerBaseURL)
			assert.Equal(t, tt.want.RequestTimeout, cfg.RequestTimeout)
			assert.Equal(t, tt.want.CredentialsDSN, cfg.CredentialsDSN)
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("STORYDECK_SERVER_URL", "http://env.example:9000")
	t.Setenv("STORYDECK_REQUEST_TIMEOUT", "25s")
	t.Setenv("STORYDECK_LOG_PRETTY", "false")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://env.example:9000", cfg.ServerBaseURL)
	assert.Equal(t, 25*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, "storydeck.db", cfg.CredentialsDSN, "unset vars keep defaults")
}
