package main

import (
	"io"

	log "github.com/sirupsen/logrus"
)

func newLogger(w io.Writer, debug bool) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}
