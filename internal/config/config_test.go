package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "fieldsy"
password = "secret"
dbname = "fieldsy_scheduling"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/service.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "fieldsy-scheduling-service"

[field_service]
url = "http://localhost:8081"
timeout = 5

[scheduling]
horizon_days = 90
cancellation_threshold_hours = 24
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "fieldsy_scheduling", cfg.Database.DBName)
	assert.Equal(t, 90, cfg.Scheduling.HorizonDays)
	assert.Equal(t, 24, cfg.Scheduling.CancellationThresholdHours)
	assert.Equal(t,
		"host=localhost port=5432 user=fieldsy password=secret dbname=fieldsy_scheduling sslmode=disable",
		cfg.Database.DSN())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing port",
			content: "[database]\nhost = \"localhost\"\ndbname = \"x\"\n[field_service]\nurl = \"http://x\"\n",
		},
		{
			name: "metrics enabled without path",
			content: `
[server]
http_port = 8080

[database]
host = "localhost"
port = 5432
dbname = "fieldsy_scheduling"

[metrics]
enabled = true
path = ""

[field_service]
url = "http://localhost:8081"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
