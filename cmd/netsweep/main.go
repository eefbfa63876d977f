// cmd/netsweep/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"netsweep/internal/adapters/output"
	"netsweep/internal/core/domain"
	"netsweep/internal/core/ports"
	"netsweep/internal/core/usecases"
	"netsweep/internal/platform/config"
	"netsweep/internal/platform/logx"
	"netsweep/internal/platform/netinfo"
	"netsweep/internal/platform/registry"
	"netsweep/internal/platform/ui"

	// Import probers for auto-registration via init()
	_ "netsweep/internal/adapters/probe"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitOK     = 0
	exitFailed = 1 // escritura de salida fallida o barrido interrumpido
	exitConfig = 2 // configuración inválida o sin prober utilizable
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// 1. Load centralized config
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try: netsweep -h for help")
		return exitConfig
	}
	if cfg.PrintHelp {
		config.PrintHelp(os.Stdout)
		return exitOK
	}
	if cfg.PrintVersion {
		config.PrintVersion(os.Stdout, version, commit, date)
		return exitOK
	}

	mode, err := ui.ParseMode(cfg.UI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConfig
	}

	// 2. Shared logger
	logger := newLogger(cfg, mode)

	// 3. Resolve target subnet
	prefix, err := resolvePrefix(cfg.Prefix, logger)
	if err != nil {
		logger.Err(err, "phase", "validation")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConfig
	}

	// 4. Build prober from registry
	prober, err := registry.Global().Build(cfg.Prober, cfg.ProberConfig(), logger)
	if err != nil {
		logger.Err(err, "phase", "prober-build")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Hint: raw sockets need root or CAP_NET_RAW; try --prober exec")
		return exitConfig
	}
	defer func() {
		if err := prober.Close(); err != nil {
			logger.Warn("failed to close prober", "prober", prober.Name(), "error", err.Error())
		}
	}()

	scheduler, err := usecases.NewScheduler(usecases.SchedulerOptions{
		Strategy: cfg.Strategy,
		Dispatch: cfg.Dispatch,
		Prober:   prober,
		Logger:   logger,
	})
	if err != nil {
		logger.Err(err, "phase", "scheduler-build")
		return exitConfig
	}

	logger.Info("netsweep starting",
		"version", version,
		"prefix", prefix.String(),
		"timeout_ms", cfg.TimeoutMS,
		"workers", cfg.Workers,
		"strategy", scheduler.Name(),
		"prober", prober.Name(),
	)

	// 5. Presenter as sweep observer
	presenter := ui.NewPresenter(mode, os.Stdout)
	defer presenter.Close()

	service := usecases.NewSweepService(usecases.SweepServiceOptions{
		Scheduler:   scheduler,
		Logger:      logger,
		Observers:   []ports.Notifier{ui.NewNotifier(presenter)},
		Timeout:     cfg.Timeout(),
		Concurrency: cfg.Workers,
		Rate:        cfg.Rate,
		ProberName:  prober.Name(),
	})

	// 6. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	// 7. Execute sweep
	start := time.Now()
	result, runErr := service.Run(ctx, prefix)
	elapsed := time.Since(start)

	if result == nil {
		logger.Err(runErr, "phase", "run")
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return exitConfig
	}
	if runErr != nil {
		logger.Err(runErr, "phase", "run", "elapsed_ms", elapsed.Milliseconds())
		presenter.Warning(fmt.Sprintf("scan interrupted: %d of %d addresses probed", result.Metadata.Probed, domain.HostsPerBlock))
		// Continue to emit partial results
	}

	// 8. Write outputs
	if err := writeOutputs(cfg, mode, result, presenter, logger); err != nil {
		logger.Err(err, "phase", "output")
		presenter.Error(err.Error())
		return exitFailed
	}

	logger.Info("netsweep finished",
		"elapsed_ms", elapsed.Milliseconds(),
		"alive", result.Len(),
		"failed", result.Metadata.Failed,
	)

	if runErr != nil {
		return exitFailed
	}
	return exitOK
}

// newLogger crea el logger compartido. Con la UI pretty sube a warn salvo
// que se pida debug para no ensuciar la barra de progreso.
func newLogger(cfg config.Config, mode ui.UIMode) logx.Logger {
	level := logx.ParseLevel(cfg.LogLevel)
	logger := logx.NewWithLevel(level)
	if mode == ui.UIModePretty && level == logx.LevelInfo {
		logger.SetLevel(logx.LevelWarn)
	}
	return logger
}

// resolvePrefix valida el prefijo o detecta el /24 local cuando es "auto".
func resolvePrefix(raw string, logger logx.Logger) (domain.Prefix, error) {
	if raw == config.AutoPrefix {
		detected, err := netinfo.DetectPrefix()
		if err != nil {
			return "", fmt.Errorf("%w: cannot detect local subnet: %w", domain.ErrInvalidPrefix, err)
		}
		logger.Info("detected local subnet", "prefix", detected)
		raw = detected
	}
	return domain.ParsePrefix(raw)
}

// writeOutputs imprime la tabla y, si se pidió, persiste el archivo.
func writeOutputs(cfg config.Config, mode ui.UIMode, result *domain.ResultSet, presenter ui.Presenter, logger logx.Logger) error {
	sink := output.NewSink(output.SinkOptions{
		Out:     os.Stdout,
		Format:  cfg.Output.Format,
		NoTable: cfg.Output.NoTable || mode == ui.UIModeJSON,
		Logger:  logger,
	})

	if err := sink.Emit(result); err != nil {
		return fmt.Errorf("table output: %w", err)
	}

	if cfg.Output.Path == "" {
		return nil
	}
	if err := sink.Persist(result, cfg.Output.Path); err != nil {
		return err
	}
	presenter.Info(fmt.Sprintf("Results saved to %s", cfg.Output.Path))
	return nil
}

// rootContextWithSignals creates a root context canceled on SIGINT/SIGTERM.
// Returns a context and cancel function that cleans up all resources (signals, goroutines).
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	// System signal channel
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	// Goroutine waiting for signals OR context cancellation
	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	// Cleanup function that cleans up EVERYTHING
	cleanupCancel := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanupCancel
}
