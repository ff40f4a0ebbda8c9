// Package config loads application settings from configs/config.yml, an
// optional .env file and TEMANIKAN_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "TEMANIKAN"

type Config struct {
	Port       string        `validate:"required,numeric"`
	LogLevel   string        `validate:"oneof=debug info warn error"`
	LogFile    string
	DSN        string        `validate:"required"`
	Auth       Auth
	FeedPeriod time.Duration `validate:"gt=0"`
	// DiagnosisDelay may be zero to answer immediately.
	DiagnosisDelay time.Duration `validate:"gte=0"`
	EmergencyClean time.Duration `validate:"gt=0"`
	AllowedOrigins []string      `validate:"min=1,dive,required"`
}

type Auth struct {
	DemoMode   bool
	AdminEmail string        `validate:"required,email"`
	SigningKey string        `validate:"required,min=8"`
	TokenTTL   time.Duration `validate:"gt=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("db.dsn", "file:temanikan?mode=memory&cache=shared")
	v.SetDefault("auth.demo_mode", true)
	v.SetDefault("auth.admin_email", "admin@temanikan.com")
	v.SetDefault("auth.signing_key", "temanikan-dev-key")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("telemetry.period", 3*time.Second)
	v.SetDefault("diagnosis.delay", 2*time.Second)
	v.SetDefault("monitoring.emergency_clean", 5*time.Second)
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Load reads configuration. dir is searched for config.yml; a missing file
// is not an error. dotEnv is loaded first when it exists.
func Load(dir, dotEnv string) (Config, error) {
	if dotEnv != "" {
		if _, err := os.Stat(dotEnv); err == nil {
			if err := godotenv.Load(dotEnv); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", dotEnv, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("stat %s: %w", dotEnv, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Port:     v.GetString("port"),
		LogLevel: strings.ToLower(v.GetString("log.level")),
		LogFile:  v.GetString("log.file"),
		DSN:      v.GetString("db.dsn"),
		Auth: Auth{
			DemoMode:   v.GetBool("auth.demo_mode"),
			AdminEmail: v.GetString("auth.admin_email"),
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
		FeedPeriod:     v.GetDuration("telemetry.period"),
		DiagnosisDelay: v.GetDuration("diagnosis.delay"),
		EmergencyClean: v.GetDuration("monitoring.emergency_clean"),
		AllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
