package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"server": map[string]interface{}{
			"port":             8080,
			"read_timeout":     "10s",
			"write_timeout":    "30s",
			"idle_timeout":     "1m",
			"shutdown_timeout": "5s",
			"allow_origins":    []string{"*"},
		},
		"database": map[string]interface{}{
			"driver":         DriverSQLite,
			"dsn":            "apptracker.db",
			"seed":           true,
			"log_sql":        false,
			"max_open_conns": 10,
		},
		"auth": map[string]interface{}{
			"jwt_secret":    "",
			"token_ttl":     "24h",
			"remember_ttl":  "720h", // 30 days
			"cookie_name":   "auth-token",
			"cookie_secure": false,
			"bcrypt_cost":   12,
		},
		"line": map[string]interface{}{
			"channel_secret":       "",
			"channel_access_token": "",
		},
		"scheduler": map[string]interface{}{
			"enabled":            true,
			"deadline_scan_spec": "0 */15 * * * *", // every 15 minutes, seconds precision
			"lead_time":          "24h",
		},
		"app": map[string]interface{}{
			"timezone": "Local",
		},
		"log": map[string]interface{}{
			"level":  "info",
			"format": "text",
		},
		"i18n": map[string]interface{}{
			"default_language": "zh",
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}
