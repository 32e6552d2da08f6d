package config

import (
	"encoding/json"
	"os"

	"github.com/storydeck/storydeck/internal/flagx"
	"github.com/storydeck/storydeck/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the timeout either as a string
// like "10s" or as integer nanoseconds.
type jsonConfig struct {
	ServerBaseURL  *string         `json:"server_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	CredentialsDSN *string         `json:"credentials_dsn"`
	LogLevel       *string         `json:"log_level"`
	LogPretty      *bool           `json:"log_pretty"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flags. Absent file path means no JSON layer. Fields missing
// from the file keep their current values. Read or unmarshal errors panic;
// a broken config file should stop the client immediately.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CredentialsDSN != nil {
		cfg.CredentialsDSN = *jc.CredentialsDSN
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogPretty != nil {
		cfg.LogPretty = *jc.LogPretty
	}
}
