package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`

	DBHost     string `yaml:"db_host" env:"PGHOST" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env:"PGPORT" env-default:"5432"`
	DBName     string `yaml:"db_name" env:"PGDATABASE" env-required:"true"`
	DBUser     string `yaml:"db_user" env:"PGUSER" env-required:"true"`
	DBPassword string `yaml:"db_password" env:"PGPASSWORD"`
	DBSchema   string `yaml:"db_schema" env:"PGSCHEMA" env-default:"public"`
	DBSSLMode  string `yaml:"db_sslmode" env:"PGSSLMODE" env-default:"disable"`

	DefaultLocale string        `yaml:"default_locale" env:"APP_LOCALE" env-default:"KO"`
	CacheTTL      time.Duration `yaml:"cache_ttl" env:"CACHE_TTL" env-default:"1m"`

	CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-default:"http://localhost:5173"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// MustConfig reads the secrets file named by CONFIG_PATH (falling back to
// ./config/local.yaml), letting PG* environment variables fill anything the
// file leaves out. Missing required database settings are fatal: the service
// cannot do anything without a store.
func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	var cfg Config
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config %s: %s", configPath, err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}
	return &cfg
}
