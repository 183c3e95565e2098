package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	DatabaseDSN     string        `env:"DATABASE_URI"`
	MigrationsDir   string        `env:"MIGRATIONS_DIR"`
	AdminJWTSecret  string        `env:"ADMIN_JWT_SECRET"`
	LockWaitTimeout time.Duration `env:"LOCK_WAIT_TIMEOUT"`
}

func LoadConfig() (*Config, error) {
	// .env опционален: в проде переменные приходят из окружения
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.AdminJWTSecret == "" {
		return nil, errors.New("admin JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.AdminJWTSecret, "s", "", "Admin JWT secret key")
	flag.DurationVar(&flagConfig.LockWaitTimeout, "l", 3*time.Second, "Account lock wait timeout")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	lockWaitTimeout := envConfig.LockWaitTimeout
	if lockWaitTimeout == 0 {
		lockWaitTimeout = flagsConfig.LockWaitTimeout
	}
	return &Config{
		RunAddress:      defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:   defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		AdminJWTSecret:  defaultIfBlank(envConfig.AdminJWTSecret, flagsConfig.AdminJWTSecret),
		LockWaitTimeout: lockWaitTimeout,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
