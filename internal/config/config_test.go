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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.local"
port = 5432
user = "booking"
password = "secret"
dbname = "rst_booking"

[logs]
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "rst-booking"

[customer_service]
url = "http://customers.local:8081"
timeout = 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "http://customers.local:8081", cfg.CustomerService.URL)

	// Не заданные в файле значения подставляются из defaults
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
}

func TestLoad_DSN(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "booking"
password = "secret"
dbname = "rst_booking"
sslmode = "disable"

[customer_service]
url = "http://localhost:8081"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=booking password=secret dbname=rst_booking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_InvalidConfig(t *testing.T) {
	// Без host и dbname конфигурация невалидна
	path := writeConfig(t, `
[database]
user = "booking"

[customer_service]
url = "http://localhost:8081"
`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
