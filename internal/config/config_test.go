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

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "svc"
password = "svc"
dbname = "timeslots"
sslmode = "disable"

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = false

[auth]
jwt_secret = "secret"
token_ttl_minutes = 60
admin_token = "admin"
`

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, validConfig)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "timeslots", cfg.Database.DBName)
	assert.Equal(t, "secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 60, cfg.Auth.TokenTTLMinutes)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.Error(t, err)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "timeslots"

[auth]
token_ttl_minutes = 60
`)

	_, err := Load(path)

	assert.ErrorContains(t, err, "jwt_secret")
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 0

[database]
host = "localhost"
dbname = "timeslots"

[auth]
jwt_secret = "secret"
token_ttl_minutes = 60
`)

	_, err := Load(path)

	assert.ErrorContains(t, err, "http_port")
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "svc",
		Password: "pw",
		DBName:   "timeslots",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.local port=5433 user=svc password=pw dbname=timeslots sslmode=require",
		cfg.DSN())
}
