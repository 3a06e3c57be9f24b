package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogger configures the standard logrus logger from configuration.
func SetupLogger(c *Config) error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	switch c.LogFormat {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: use text or json", c.LogFormat)
	}
	return nil
}
