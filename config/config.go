package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	LogLevel              string
	LogFormat             string
	StorePath             string
	ExportDir             string
}

const envPrefix = "CPUSCHED"

// Load reads configFile, or config.yaml from the working directory when
// configFile is empty. A missing default file is not an error. Environment
// variables such as CPUSCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM override the file.
func Load(configFile string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("store.path", "cpusched.db")
	v.SetDefault("export.dir", ".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		StorePath:             v.GetString("store.path"),
		ExportDir:             v.GetString("export.dir"),
	}
	if config.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be > 0, got %d", config.RoundRobinTimeQuantum)
	}
	return config, nil
}
