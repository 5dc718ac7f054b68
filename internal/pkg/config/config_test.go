package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.RememberTTL)
	assert.Equal(t, "auth-token", cfg.Auth.CookieName)
	assert.Equal(t, "zh", cfg.I18n.DefaultLanguage)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.False(t, cfg.Line.Enabled())

	// No secret by default.
	assert.Error(t, cfg.Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
auth:
  jwt_secret: from-file
log:
  level: debug
`), 0o600))

	t.Setenv("APP_AUTH__JWT_SECRET", "from-env")
	t.Setenv("APP_SCHEDULER__LEAD_TIME", "2h")
	t.Setenv("CHANNEL_SECRET", "secret")
	t.Setenv("CHANNEL_ACCESS_TOKEN", "token")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.Scheduler.LeadTime)
	assert.True(t, cfg.Line.Enabled())
	require.NoError(t, cfg.Validate())
}

func TestLegacyPortVariable(t *testing.T) {
	t.Setenv("PORT", "3001")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3001, cfg.Server.Port)
}

func TestMissingConfigFileIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		cfg.Auth.JWTSecret = "secret"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, false},
		{"empty dsn", func(c *Config) { c.Database.DSN = "" }, false},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, false},
		{"bad timezone", func(c *Config) { c.App.Timezone = "Mars/Olympus" }, false},
		{"unsupported language", func(c *Config) { c.I18n.DefaultLanguage = "fr" }, false},
		{"bcrypt cost too low", func(c *Config) { c.Auth.BcryptCost = 2 }, false},
		{"postgres", func(c *Config) { c.Database.Driver = DriverPostgres }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
