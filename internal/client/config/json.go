package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/flagx"
	"github.com/dmitrijs2005/accountkeeper/internal/timex"
)

// JsonConfig is the DTO used for JSON unmarshalling. Durations accept
// either strings like "15s" or integer nanoseconds (timex.Duration).
type JsonConfig struct {
	IAMBaseURL          string         `json:"iam_base_url"`
	AccountsBaseURL     string         `json:"accounts_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	DatabasePath        string         `json:"database_path"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. When no file is given the function is a no-op.
// Empty JSON fields leave the current value in place. Read or
// unmarshal errors panic; the overlay order is defaults -> JSON ->
// flags.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.IAMBaseURL != "" {
		cfg.IAMBaseURL = jc.IAMBaseURL
	}
	if jc.AccountsBaseURL != "" {
		cfg.AccountsBaseURL = jc.AccountsBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
