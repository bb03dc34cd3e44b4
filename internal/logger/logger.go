package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Init configures the shared application logger from the LOG_LEVEL env var.
func Init() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		Log.Warnf("Invalid LOG_LEVEL '%s', defaulting to INFO", levelStr)
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}
