package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup returns the structured JSON logger used by the CLI layer. The
// reconciliation core stays pure and never logs.
func Setup() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stderr,
		Level: logrus.InfoLevel,
	}

	return &logger
}
