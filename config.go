package aosoa

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config holds global configuration for the layout system
var Config config = config{logger: zerolog.Nop()}

type config struct {
	logger zerolog.Logger
}

type envConfig struct {
	LogLevel string `config:"AOSOA_LOG_LEVEL"`
}

// SetLogger configures the logger used for debug events
func (c *config) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

func (c *config) Logger() *zerolog.Logger {
	return &c.logger
}

// LoadEnv applies AOSOA_LOG_LEVEL to the configured logger when set
func (c *config) LoadEnv() error {
	var env envConfig
	if err := jlconfig.FromEnv().To(&env); err != nil {
		return eris.Wrap(err, "failed to read environment")
	}
	if env.LogLevel == "" {
		return nil
	}
	level, err := zerolog.ParseLevel(env.LogLevel)
	if err != nil {
		return eris.Wrapf(err, "invalid AOSOA_LOG_LEVEL %q", env.LogLevel)
	}
	c.logger = c.logger.Level(level)
	return nil
}
