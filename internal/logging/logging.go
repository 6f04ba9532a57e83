// Package logging builds the logrus logger shared by all components.
// The logger is passed explicitly; there is no package-level global.
package logging

import "github.com/sirupsen/logrus"

// New returns a logger at the given level ("debug", "info", ...) with
// the given output format ("text" or "json"). Unknown levels fall back
// to info.
func New(level, format string) *logrus.Logger {
	log := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
