package main

import (
	"fmt"
	"io"
	"time"

	"github.com/suryansh-23/revoker/internal/config"
	"github.com/suryansh-23/revoker/internal/debug"
	"github.com/suryansh-23/revoker/internal/detect"
	"github.com/suryansh-23/revoker/internal/report"
	"github.com/suryansh-23/revoker/internal/tokentype"
)

type appState struct {
	cfg      config.Config
	cfgFound bool
	cfgPath  string
	logger   *debug.Logger
	reporter report.Reporter
	env      tokentype.Env
	registry *detect.Registry
	closers  []io.Closer
}

func (s *appState) close() {
	for _, c := range s.closers {
		_ = c.Close()
	}
	s.closers = nil
	if s.reporter != nil {
		s.reporter.Flush(2 * time.Second)
	}
}

type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.code)
}
