package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[calendar]
tax_rate = 0.16
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "seed.toml", cfg.Catalog.SeedFile)
	assert.Equal(t, "default", cfg.Calendar.DefaultSession)
	assert.Equal(t, 0.16, cfg.Calendar.TaxRate)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[logs]
level = "debug"

[metrics]
enabled = true
service_name = "calendar-test"

[database]
enabled = true
host = "localhost"
port = 5432
user = "salon"
password = "secret"
dbname = "salon"

[catalog]
seed_file = "demo.toml"
seed_appointments = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "calendar-test", cfg.Metrics.ServiceName)
	assert.True(t, cfg.Catalog.SeedAppointments)
	assert.Equal(t, "host=localhost port=5432 user=salon password=secret dbname=salon sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
enabled = true
host = "localhost"
port = 5432
dbname = "salon"
`)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 6543, cfg.Database.Port)

	t.Setenv("DB_PORT", "abc")
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 7070
`)
	t.Setenv(PathEnv, path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)

	tests := []struct {
		name    string
		content string
	}{
		{"bad port", "[server]\nhttp_port = 70000\n"},
		{"bad level", "[logs]\nlevel = \"verbose\"\n"},
		{"bad tax", "[calendar]\ntax_rate = 1.5\n"},
		{"bad metrics path", "[metrics]\npath = \"metrics\"\n"},
		{"db without host", "[database]\nenabled = true\nport = 5432\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
