package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultMigrations = "migrations"
	defaultLogLevel   = "info"
	defaultCacheTTL   = 300
)

type Config struct {
	Env    string
	DB     db
	Server server
	Logger logger
	Cache  cache
}

type db struct {
	DatabaseURI string
	Migrations  string
}

type server struct {
	RunAddress string
}

type logger struct {
	LogLevel string
}

// cache configures the optional redis read cache. An empty Addr disables it.
type cache struct {
	Addr       string
	DB         int
	TTLSeconds int
}

// MustLoad reads configuration from the environment, with .env as a
// convenience for local runs.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrations)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("CACHE_TTL_SECONDS", defaultCacheTTL)

	return &Config{
		Env: viper.GetString("APP_ENV"),
		DB: db{
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
		},
		Server: server{RunAddress: viper.GetString("RUN_ADDRESS")},
		Logger: logger{LogLevel: viper.GetString("LOG_LEVEL")},
		Cache: cache{
			Addr:       viper.GetString("CACHE_ADDR"),
			DB:         viper.GetInt("CACHE_DB"),
			TTLSeconds: viper.GetInt("CACHE_TTL_SECONDS"),
		},
	}
}
