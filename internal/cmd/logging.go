package cmd

import (
	"io"

	"palcfg/internal/configservice"

	"github.com/sirupsen/logrus"
)

// newLogger builds the logger handed to the store. Records go to w, which is
// stderr outside of tests.
func newLogger(w io.Writer, s configservice.Settings) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(s.LogLevel)
	if s.LogJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log
}
