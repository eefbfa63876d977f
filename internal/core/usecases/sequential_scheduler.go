// internal/core/usecases/sequential_scheduler.go
package usecases

import (
	"context"

	"netsweep/internal/core/domain"
	"netsweep/internal/core/ports"
	"netsweep/internal/platform/logx"
)

// SequentialScheduler sondea las direcciones de a una, en orden ascendente.
// ScanOptions.Concurrency se valida pero el techo efectivo es siempre 1.
type SequentialScheduler struct {
	prober ports.Prober
	logger logx.Logger
}

// NewSequentialScheduler crea un scheduler secuencial.
func NewSequentialScheduler(prober ports.Prober, logger logx.Logger) *SequentialScheduler {
	if logger == nil {
		logger = logx.New()
	}
	return &SequentialScheduler{
		prober: prober,
		logger: logger.With("component", "scheduler", "strategy", string(StrategySequential)),
	}
}

// Name retorna la estrategia.
func (s *SequentialScheduler) Name() string {
	return string(StrategySequential)
}

// ScanSubnet implementa ports.Scheduler.
func (s *SequentialScheduler) ScanSubnet(ctx context.Context, addresses []domain.Address, opts ports.ScanOptions) (*domain.ResultSet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	rs := domain.NewResultSet(opts.Prefix)
	rs.Metadata.Strategy = s.Name()
	rs.Metadata.Prober = s.prober.Name()

	s.logger.Info("scan started",
		"prefix", opts.Prefix,
		"addresses", len(addresses),
		"timeout_ms", opts.Timeout.Milliseconds(),
	)

	c := newCollector(rs, opts, s.logger)
	for _, addr := range addresses {
		if ctx.Err() != nil {
			break
		}
		c.record(NewProbeTask(s.prober, addr, opts.Timeout).WithLimiter(opts.Limiter).Execute(ctx))
	}

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
