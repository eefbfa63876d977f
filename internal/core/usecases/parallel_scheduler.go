// internal/core/usecases/parallel_scheduler.go
package usecases

import (
	"context"
	"time"

	"netsweep/internal/core/domain"
	"netsweep/internal/core/ports"
	"netsweep/internal/platform/logx"
	"netsweep/internal/platform/workerpool"
)

// ParallelScheduler sondea las direcciones con un worker pool acotado por
// ScanOptions.Concurrency. La agregación ocurre en la goroutine del Submit.
type ParallelScheduler struct {
	prober   ports.Prober
	logger   logx.Logger
	dispatch string
	seed     uint64
}

// NewParallelScheduler crea un scheduler paralelo.
// dispatch es el orden de despacho ("fifo" o "shuffle").
func NewParallelScheduler(prober ports.Prober, dispatch string, logger logx.Logger) (*ParallelScheduler, error) {
	if logger == nil {
		logger = logx.New()
	}
	// validar el orden de despacho antes del primer barrido
	if _, err := workerpool.SchedulerByName[domain.ProbeOutcome](dispatch, 0); err != nil {
		return nil, err
	}
	return &ParallelScheduler{
		prober:   prober,
		logger:   logger.With("component", "scheduler", "strategy", string(StrategyParallel)),
		dispatch: dispatch,
		seed:     uint64(time.Now().UnixNano()),
	}, nil
}

// Name retorna la estrategia.
func (s *ParallelScheduler) Name() string {
	return string(StrategyParallel)
}

// ScanSubnet implementa ports.Scheduler.
func (s *ParallelScheduler) ScanSubnet(ctx context.Context, addresses []domain.Address, opts ports.ScanOptions) (*domain.ResultSet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	rs := domain.NewResultSet(opts.Prefix)
	rs.Metadata.Strategy = s.Name()
	rs.Metadata.Prober = s.prober.Name()

	if len(addresses) == 0 {
		rs.Finalize()
		return rs, nil
	}

	workers := opts.Concurrency
	if workers > len(addresses) {
		workers = len(addresses)
	}

	order, err := workerpool.SchedulerByName[domain.ProbeOutcome](s.dispatch, s.seed)
	if err != nil {
		return nil, err
	}

	pool := workerpool.NewWorkerPool(workerpool.WorkerPoolConfig[domain.ProbeOutcome]{
		Workers:   workers,
		Scheduler: order,
		Logger:    s.logger,
	})

	tasks := make([]workerpool.Task[domain.ProbeOutcome], len(addresses))
	for i, addr := range addresses {
		tasks[i] = NewProbeTask(s.prober, addr, opts.Timeout).WithLimiter(opts.Limiter)
	}

	s.logger.Info("scan started",
		"prefix", opts.Prefix,
		"addresses", len(addresses),
		"workers", workers,
		"timeout_ms", opts.Timeout.Milliseconds(),
		"dispatch", order.Name(),
	)

	c := newCollector(rs, opts, s.logger)

	pool.Start()
	pool.Submit(ctx, tasks, func(r workerpool.TaskResult[domain.ProbeOutcome]) {
		c.record(r.Value, r.Error)
	})
	// joins every worker before the result leaves this function
	pool.Stop()

	rs.Finalize()

	s.logger.Info("scan finished",
		"alive", rs.Len(),
		"probed", rs.Metadata.Probed,
		"failed", rs.Metadata.Failed,
		"duration_ms", rs.Metadata.Duration.Milliseconds(),
	)

	if err := ctx.Err(); err != nil {
		return rs, err
	}
	return rs, nil
}
