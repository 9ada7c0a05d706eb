// Package logging holds the shared logrus logger used by ubiquitous-gen.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLogger is the base logger; packages derive their own entry from it
// with a subsystem field.
var DefaultLogger = initializeDefaultLogger()

func initializeDefaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logger
}

// SetLogLevel sets the level of DefaultLogger from a name such as "debug".
func SetLogLevel(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	DefaultLogger.SetLevel(lvl)
	return nil
}

// SetOutput redirects DefaultLogger.
func SetOutput(w io.Writer) {
	DefaultLogger.SetOutput(w)
}
