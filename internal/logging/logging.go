package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup builds the process logger. Production emits JSON with the level
// under "loglevel"; other environments use the text formatter.
func Setup(env, level string) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stdout
	if env == "production" {
		logger.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		}
	} else {
		logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.Level = parsed
	return logger
}
