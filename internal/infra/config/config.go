package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPServerAddress string `mapstructure:"HTTP_SERVER_ADDRESS"`
	GinMode           string `mapstructure:"GIN_MODE"`

	// Optional evaluation store; empty disables persistence
	DBSource string `mapstructure:"DB_SOURCE"`

	// RabbitMQ Configuration
	RabbitMQURL              string `mapstructure:"RABBITMQ_URL"`
	RabbitMQQueueEvaluations string `mapstructure:"RABBITMQ_QUEUE_EVALUATIONS"`

	RateLimitRPS      float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int     `mapstructure:"RATE_LIMIT_BURST"`
	MaxPasswordLength int     `mapstructure:"MAX_PASSWORD_LENGTH"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogFile  string `mapstructure:"LOG_FILE"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE_EVALUATIONS", "strength_evaluations")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("MAX_PASSWORD_LENGTH", 1024)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
}

// LoadConfig reads path/.env when present and lets environment variables
// override it.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}
