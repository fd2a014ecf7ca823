package config

import (
	"strings"

	"github.com/caarlos0/env"

	"github.com/ReconfigureIO/linkbudget/service/aggregate"
	"github.com/ReconfigureIO/linkbudget/service/storage"
)

type Config struct {
	ProgramName string     `env:"LINK_NAME" envDefault:"linkbudget"`
	DbUrl       string     `env:"DATABASE_URL"`
	Port        string     `env:"PORT" envDefault:"8080"`
	Link        LinkConfig `env:"LINK"`
}

type LinkConfig struct {
	Env          string `env:"LINK_ENV" envDefault:"development"`
	Migrate      bool   `env:"LINK_MIGRATE"`
	LogzioToken  string `env:"LOGZIO_TOKEN"`
	LogLevel     string `env:"LINK_LOG_LEVEL" envDefault:"info"`
	CORSOrigins  string `env:"LINK_CORS_ORIGINS"`
	ArchiveEvery string `env:"LINK_ARCHIVE_EVERY" envDefault:"1h"`
	Storage      storage.ServiceConfig
	Thresholds   aggregate.Thresholds
}

// Origins returns the configured CORS origins. Empty means any origin.
func (l LinkConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(l.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Production returns if the service runs in production.
func (l LinkConfig) Production() bool {
	return l.Env == "production"
}

func ParseEnvConfig() (*Config, error) {
	conf := Config{}

	err := env.Parse(&conf)
	if err != nil {
		return nil, err
	}

	err = env.Parse(&conf.Link)
	if err != nil {
		return nil, err
	}

	err = env.Parse(&conf.Link.Storage)
	if err != nil {
		return nil, err
	}

	err = env.Parse(&conf.Link.Thresholds)
	if err != nil {
		return nil, err
	}

	return &conf, nil
}
