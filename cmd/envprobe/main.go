// Command envprobe prints the active Python interpreter's executable, version
// and sys.path, then reports whether networkx and matplotlib can be imported.
//
// Missing libraries are reported on stdout and never change the exit status.
// Diagnostics go to stderr; set ENVPROBE_LOG_LEVEL=debug to see them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/richinsley/envprobe"
	"github.com/richinsley/envprobe/internal/config"
	"github.com/richinsley/envprobe/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "envprobe:", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "envprobe: invalid ENVPROBE_LOG_LEVEL %q: %v\n", cfg.LogLevel, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	if err := run(ctx, cfg); err != nil {
		logger.Error().Err(err).Msg("envprobe failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	var (
		interp *envprobe.PythonInterpreter
		err    error
	)
	if cfg.Python != "" {
		interp, err = envprobe.NewPythonInterpreter(ctx, cfg.Python)
	} else {
		interp, err = envprobe.FindPython(ctx)
	}
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().
		Str("path", interp.Path).
		Str("version", interp.Version.String()).
		Msg("using interpreter")

	targets := envprobe.DefaultTargets(interp, envprobe.WithTimeout(cfg.ProbeTimeout))
	_, err = envprobe.Run(ctx, os.Stdout, interp, targets)
	return err
}
