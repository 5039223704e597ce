package main

import (
	"os"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// setupLogging configures the standard logger. Logs go to stderr, or to
// logFile when one is given.
func setupLogging(level, logFile string) error {

	log.SetOutput(colorable.NewColorableStderr())
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})

	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return errors.Wrapf(err, "failed to open log file %s", logFile)
		}
		log.SetOutput(f)
		log.SetFormatter(&log.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(lvl)
	return nil

}
