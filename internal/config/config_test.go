package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.Grace.Std())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, DefaultTheme, cfg.Theme.Name)
	assert.Empty(t, cfg.Theme.Variant)
}

func TestParse_OverlaysDefaults(t *testing.T) {
	data := []byte(`
[server]
addr = ":9090"
grace = "2s"

[log]
level = "DEBUG"

[theme]
variant = "dark"
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.Grace.Std())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, DefaultTheme, cfg.Theme.Name)
	assert.Equal(t, "dark", cfg.Theme.Variant)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		invalid     bool
		errContains []string
	}{
		{
			name:        "unknown key",
			data:        "[server]\nport = 80\n",
			invalid:     true,
			errContains: []string{"port"},
		},
		{
			name:        "bad duration",
			data:        "[server]\ngrace = \"soon\"\n",
			errContains: []string{"decode toml"},
		},
		{
			name:        "malformed toml",
			data:        "[server\n",
			errContains: []string{"decode toml"},
		},
		{
			name:        "all problems joined",
			data:        "[server]\naddr = \"nope\"\ngrace = \"-1s\"\n[log]\nlevel = \"loud\"\nformat = \"xml\"\n[theme]\nname = \"\"\n",
			invalid:     true,
			errContains: []string{"server.addr", "server.grace", "log.level", "log.format", "theme.name is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig))
			for _, want := range tt.errContains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := LoadFile("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("reads toml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ltixml.toml")
		require.NoError(t, os.WriteFile(path, []byte("[log]\nformat = \"json\"\n"), 0o600))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("rejects other extensions", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "ltixml.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only .toml")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestEncode_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Theme.Variant = "dark"

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cfg))
	assert.Contains(t, buf.String(), "5s")

	decoded, err := Load(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, cfg, decoded)
}
