// Package config loads frontdesk settings from an optional config file and
// FRONTDESK_ prefixed environment variables.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/tomasbasham/frontdesk"
	"github.com/tomasbasham/frontdesk/archive"
)

type AppEnv string

const (
	ProductionEnv AppEnv = "production"
	DevelopEnv    AppEnv = "develop"
	LocalEnv      AppEnv = "local"
	TestEnv       AppEnv = "test"
)

// Archive drivers.
const (
	FileDriver     = "file"
	PostgresDriver = "postgres"
)

const envPrefix = "FRONTDESK"

type (
	Config struct {
		AppEnv    AppEnv
		Log       Log
		Archive   Archive
		Postgres  archive.PostgresConfig
		Scheduler frontdesk.RunLimits
	}

	Log struct {
		Level  logrus.Level
		Format string
		File   string
	}

	Archive struct {
		Driver string
		Path   string
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", string(LocalEnv))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("archive.driver", FileDriver)
	v.SetDefault("archive.path", archive.DefaultPath)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "frontdesk")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.database", "frontdesk")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("scheduler.high_run", frontdesk.DefaultRunLimits.High)
	v.SetDefault("scheduler.mid_run", frontdesk.DefaultRunLimits.Mid)
	v.SetDefault("scheduler.low_run", frontdesk.DefaultRunLimits.Low)
}

// Load reads the configuration. When path is empty a frontdesk.{yaml,env,...}
// file in the working directory is used if present; environment variables
// such as FRONTDESK_ARCHIVE_PATH always take precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config : failed to read %s", path)
		}
	} else {
		v.SetConfigName("frontdesk")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "config : failed to read frontdesk config")
			}
		}
	}

	level, err := logrus.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, errors.Wrap(err, "config : invalid log.level")
	}

	cfg := &Config{
		AppEnv: AppEnv(v.GetString("app_env")),
		Log: Log{
			Level:  level,
			Format: strings.ToLower(v.GetString("log.format")),
			File:   v.GetString("log.file"),
		},
		Archive: Archive{
			Driver: strings.ToLower(v.GetString("archive.driver")),
			Path:   v.GetString("archive.path"),
		},
		Postgres: archive.PostgresConfig{
			Host:     v.GetString("postgres.host"),
			Port:     v.GetInt("postgres.port"),
			User:     v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			Database: v.GetString("postgres.database"),
			SSLMode:  v.GetString("postgres.sslmode"),
		},
		Scheduler: frontdesk.RunLimits{
			High: v.GetInt("scheduler.high_run"),
			Mid:  v.GetInt("scheduler.mid_run"),
			Low:  v.GetInt("scheduler.low_run"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Archive.Driver {
	case FileDriver, PostgresDriver:
	default:
		return errors.Errorf("config : archive.driver %q is not supported", c.Archive.Driver)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("config : log.format %q is not supported", c.Log.Format)
	}

	limits := []struct {
		key   string
		value int
	}{
		{"scheduler.high_run", c.Scheduler.High},
		{"scheduler.mid_run", c.Scheduler.Mid},
		{"scheduler.low_run", c.Scheduler.Low},
	}
	for _, l := range limits {
		if l.value < 1 {
			return errors.Errorf("config : %s must be at least 1, got %d", l.key, l.value)
		}
	}
	return nil
}
