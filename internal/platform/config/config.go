// Package config loads process configuration from the environment.
package config

import (
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Recognized values of the environment mode.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	defaultPoolSize = 10
	defaultPort     = 3000
)

// Config carries every recognized environment setting.
type Config struct {
	// Env gates verbose error detail and startup logging.
	Env string

	AppHost string
	AppPort int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBDatabase string

	// DBPoolSize bounds the connection pool.
	DBPoolSize int

	// RunMigrations enables AutoMigrate at startup.
	RunMigrations bool

	// PostersDir, when set, is served under /images/posters.
	PostersDir string
}

// Load reads the process environment. Defaults follow the predecessor
// service; an absent variable never fails.
func Load() Config {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Env:        envMode(),
		AppHost:    appHost(),
		AppPort:    getint("APP_PORT", defaultPort),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBDatabase: getenv("DB_DATABASE", "test"),
		DBPoolSize: getint("DB_POOL_SIZE", defaultPoolSize),

		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		PostersDir:    os.Getenv("POSTERS_DIR"),
	}
}

// IsDevelopment reports whether verbose diagnostics are enabled.
func (c Config) IsDevelopment() bool { return c.Env == EnvDevelopment }

// Addr returns the host:port pair the HTTP server listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.AppHost, strconv.Itoa(c.AppPort))
}

// envMode resolves APP_ENV, accepting NODE_ENV from deployments of the
// predecessor service. Anything unset means production.
func envMode() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("NODE_ENV"); env != "" {
		return env
	}
	return EnvProduction
}

// appHost resolves APP_HOST; USE_LOCAL_IP forces binding on all interfaces.
func appHost() string {
	if host := os.Getenv("APP_HOST"); host != "" {
		return host
	}
	if os.Getenv("USE_LOCAL_IP") != "" {
		return "0.0.0.0"
	}
	return "localhost"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
