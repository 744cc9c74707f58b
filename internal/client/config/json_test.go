package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"iam_base_url":          "http://iam.example/api/iam",
		"accounts_base_url":     "http://svc.example/facebook",
		"request_timeout":       "30s",
		"online_check_interval": "10s",
	})

	t.Run("loads from file named by flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{DatabasePath: "keep.db"}
		parseJson(cfg)

		assert.Equal(t, "http://iam.example/api/iam", cfg.IAMBaseURL)
		assert.Equal(t, "http://svc.example/facebook", cfg.AccountsBaseURL)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
		// Fields missing from the JSON keep their current value.
		assert.Equal(t, "keep.db", cfg.DatabasePath)
	})

	t.Run("no config flag leaves values unchanged", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{IAMBaseURL: "defaults:1234", RequestTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.IAMBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
