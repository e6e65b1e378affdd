// Package config loads application configuration from environment
// variables. Defaults match the original deployment of the rental
// management backend: port 5002, local MySQL, database rental_management.
package config

import "os"

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable.
type Config struct {
	Env    string // application environment (e.g. "dev", "prod")
	Port   string // HTTP port to listen on
	DBUser string // database username
	DBPass string // database password (optional)
	DBHost string // database host address
	DBPort string // database port number
	DBName string // database name
}

// Load reads configuration values from environment variables and returns
// a Config. Every variable has a default, so the server starts with no
// environment at all against a local MySQL instance.
func Load() Config {
	return Config{
		Env:    envStr("APP_ENV", "dev"),
		Port:   envStr("APP_PORT", "5002"),
		DBUser: envStr("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"), // empty allowed
		DBHost: envStr("DB_HOST", "localhost"),
		DBPort: envStr("DB_PORT", "3306"),
		DBName: envStr("DB_NAME", "rental_management"),
	}
}
