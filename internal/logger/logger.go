package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.New()
	Logger.SetOutput(os.Stdout)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	Logger.SetLevel(logrus.InfoLevel)

	// LOG_LEVEL=debug wins until the config is loaded
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if parsedLevel, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
			Logger.SetLevel(parsedLevel)
		}
	}
}

// WithComponent adds a component field to the logger
func WithComponent(component string) *logrus.Entry {
	return Logger.WithField("component", component)
}

// WithView tags entries emitted on behalf of one dashboard view.
func WithView(component, view string) *logrus.Entry {
	return Logger.WithFields(logrus.Fields{"component": component, "view": view})
}

// SetLevel applies a textual level, falling back to info when it cannot be parsed.
func SetLevel(level string) (logrus.Level, error) {
	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		Logger.SetLevel(logrus.InfoLevel)
		return logrus.InfoLevel, err
	}
	Logger.SetLevel(parsed)
	return parsed, nil
}

// SetFormat switches between the text formatter and JSON lines.
func SetFormat(format string) {
	if strings.EqualFold(format, "json") {
		Logger.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Writer exposes the logger as an io.Writer for gin and net/http.
func Writer() io.Writer {
	return Logger.Writer()
}
