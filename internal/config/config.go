package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"db" validate:"required"`
	HTTP     HTTPConfig     `mapstructure:"http" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	// MigrateOnStart применяет миграции перед запуском сервера
	MigrateOnStart bool `mapstructure:"migrate_on_start"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host" validate:"required"`
	Port         int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	User         string `mapstructure:"user" validate:"required"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"name" validate:"required"`
	SSLMode      string `mapstructure:"sslmode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

var defaults = map[string]any{
	"db.host":               "localhost",
	"db.port":               5432,
	"db.user":               "taskboard",
	"db.password":           "taskboard",
	"db.name":               "taskboard",
	"db.sslmode":            "disable",
	"db.max_open_conns":     10,
	"db.max_idle_conns":     5,
	"http.addr":             ":8080",
	"http.read_timeout":     "10s",
	"http.write_timeout":    "10s",
	"http.shutdown_timeout": "5s",
	"log.level":             "info",
	"log.format":            "json",
	"migrate_on_start":      false,
}

// Load читает .env (если есть) и переменные окружения вида DB_HOST, HTTP_ADDR, LOG_LEVEL
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
