package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vitrine/internal/logger"
	"github.com/alexisbeaulieu97/vitrine/internal/metrics"
	"github.com/alexisbeaulieu97/vitrine/internal/settings"
)

// appContext carries the process services shared by every command. It is
// populated lazily so commands such as version never touch settings.
type appContext struct {
	flags    *rootFlags
	settings *settings.Config
	log      *logger.Logger
	metrics  *metrics.Metrics
	closers  []io.Closer
}

// load reads settings and builds the logger and metrics registry.
// Interactive commands pass interactive=true so logs never reach the
// terminal the program draws on.
func (a *appContext) load(cmd *cobra.Command, interactive bool) error {
	if a.settings != nil {
		return nil
	}

	cfg, err := settings.Load(settings.Options{
		ConfigFile: a.flags.configFile,
		EnvFiles:   a.flags.envFiles,
	})
	if err != nil {
		return withCode(newCommandError("load settings", "reading configuration", err,
			"Check the settings file and VITRINE_* environment variables."), exitInvalid)
	}
	if a.flags.logLevel != "" {
		cfg.Logging.Level = a.flags.logLevel
	}

	var writer io.Writer = cmd.ErrOrStderr()
	switch {
	case a.flags.logFile != "":
		file, err := os.OpenFile(a.flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return newCommandError("open log file", a.flags.logFile, err, "Choose a writable path for --log-file.")
		}
		a.closers = append(a.closers, file)
		writer = file
	case interactive:
		writer = io.Discard
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Logging.Level,
		HumanReadable: cfg.Logging.Pretty,
		Writer:        writer,
		Component:     "vitrine",
	})
	if err != nil {
		return withCode(newCommandError("create logger", fmt.Sprintf("level %q", cfg.Logging.Level), err,
			"Use one of trace, debug, info, warn or error."), exitInvalid)
	}

	a.settings = cfg
	a.log = log
	a.metrics = metrics.New()
	return nil
}

// close releases files opened by load.
func (a *appContext) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

// serveMetrics starts the metrics endpoint when enabled and returns a
// function that stops it.
func (a *appContext) serveMetrics(updateGauges func()) func() {
	if a.settings == nil || !a.settings.Metrics.Enabled {
		return func() {}
	}

	srv := &http.Server{
		Addr:              a.settings.Metrics.Addr,
		Handler:           a.metrics.Router(updateGauges),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error(err, "metrics server stopped", "addr", srv.Addr)
		}
	}()
	a.log.Info("serving metrics", "addr", srv.Addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
