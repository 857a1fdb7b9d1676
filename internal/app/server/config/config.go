package config

import (
	"log"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	defaultRunAddress = ":8080"
	defaultDatabase   = "postgres://localhost:5432/junebugjournal?sslmode=disable"
)

type Config struct {
	Env     string
	Storage string
	// ResetDB replaces the seed and tip catalogs with the bundled data on start.
	ResetDB bool
	DB      DB
	Server  Server
	Logger  Logger
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	// Migrations is a directory of migration files, empty means the embedded set.
	Migrations string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// MustLoad читает .env (если есть) и переменные окружения.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return Load(viper.GetViper())
}

// Load builds the configuration from v, which is expected to read the environment.
func Load(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("storage", StoragePostgres)
	v.SetDefault("database_uri", defaultDatabase)
	v.SetDefault("log_level", "")

	runAddress := v.GetString("run_address")
	if runAddress == "" {
		// PORT остался от старого деплоя
		if port := v.GetString("port"); port != "" {
			runAddress = ":" + port
		} else {
			runAddress = defaultRunAddress
		}
	}

	return &Config{
		Env:     v.GetString("app_env"),
		Storage: strings.ToLower(v.GetString("storage")),
		ResetDB: truthy(v.GetString("reset_db")),
		DB: DB{
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: Server{RunAddress: runAddress},
		Logger: Logger{LogLevel: v.GetString("log_level")},
	}
}

// truthy treats any non-empty value as set, except explicit false values.
func truthy(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return true
}
