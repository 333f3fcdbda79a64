package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

type ServiceConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

type DatabaseConfig struct {
	// Path to the SQLite database file. ":memory:" is accepted for tests.
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	LogToFile bool   `mapstructure:"logToFile"`
	FilePath  string `mapstructure:"filePath"`
}

type SchedulerConfig struct {
	// SnapshotCron is the cron spec for the automatic net-worth snapshot.
	SnapshotCron string `mapstructure:"snapshotCron"`
	Enabled      bool   `mapstructure:"enabled"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("FINTRACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("service.port", "8000")
	viper.SetDefault("database.path", "./data/fintrack.db")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("scheduler.snapshotCron", "0 6 * * *")
	viper.SetDefault("scheduler.enabled", false)

	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
