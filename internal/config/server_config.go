package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port                 int     `mapstructure:"port"`
	MetricsPort          int     `mapstructure:"metrics_port"`
	MaxRequestsPerSecond float64 `mapstructure:"max_requests_per_second"`
}

func (config ServerConfig) validate() error {

	var missingFields []string

	if config.Port == 0 {
		missingFields = append(missingFields, "port")
	}

	if config.MetricsPort == 0 {
		missingFields = append(missingFields, "metrics_port")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("server.port", "PORT"); err != nil {
		return err
	}

	if err := viper.BindEnv("server.metrics_port", "METRICS_PORT"); err != nil {
		return err
	}

	return viper.BindEnv("server.max_requests_per_second", "MAX_REQUESTS_PER_SECOND")
}
