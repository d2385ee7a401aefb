// Package app wires config, logging and the HTTP server together.
package app

import (
	"fmt"
	"github.com/fpawel/ltool/internal/api"
	"github.com/fpawel/ltool/internal/cfg"
	"github.com/fpawel/ltool/internal/pkg/logfile"
	"github.com/powerman/structlog"
	"io"
	"os"
	"os/signal"
	"syscall"
)

type BuildInfo struct {
	Commit string
	UUID   string
	Date   string
	Time   string
}

func Main(buildInfo BuildInfo) {
	logFile := logfile.MustNew("")
	defer log.ErrIfFail(logFile.Close)
	structlog.DefaultLogger.SetOutput(io.MultiWriter(os.Stderr, logFile))

	log.Debug(fmt.Sprintf("build: %+v", buildInfo))

	c := cfg.Get()
	stopServer := api.RunServer(c.Addr)

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	sig := <-done
	log.Debug("system signal: " + sig.String())

	stopServer()

	log.Debug("all canceled and closed")
}

var log = structlog.New()
