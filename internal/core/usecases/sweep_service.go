// internal/core/usecases/sweep_service.go
package usecases

import (
	"context"
	"fmt"
	"time"

	"netsweep/internal/core/domain"
	"netsweep/internal/core/ports"
	"netsweep/internal/platform/logx"
	"netsweep/internal/platform/rate"
)

// notificationTimeout tiempo máximo que un observer puede tardar por evento.
const notificationTimeout = 2 * time.Second

// SweepService une el enumerador de direcciones con el scheduler y publica
// los eventos del barrido a los observers.
type SweepService struct {
	scheduler   ports.Scheduler
	logger      logx.Logger
	observers   []ports.Notifier
	timeout     time.Duration
	concurrency int
	rate        float64
	proberName  string
}

// SweepServiceOptions configura el servicio.
type SweepServiceOptions struct {
	Scheduler   ports.Scheduler
	Logger      logx.Logger
	Observers   []ports.Notifier
	Timeout     time.Duration
	Concurrency int

	// Rate sondas por segundo como máximo (0 = sin límite)
	Rate float64

	// ProberName solo se usa para el evento de inicio
	ProberName string
}

// NewSweepService crea una nueva instancia del servicio.
func NewSweepService(opts SweepServiceOptions) *SweepService {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &SweepService{
		scheduler:   opts.Scheduler,
		logger:      opts.Logger.With("component", "sweep"),
		observers:   opts.Observers,
		timeout:     opts.Timeout,
		concurrency: opts.Concurrency,
		rate:        opts.Rate,
		proberName:  opts.ProberName,
	}
}

// Run barre el bloque /24 completo. Con el contexto cancelado retorna el
// resultado parcial junto con el error del contexto.
func (s *SweepService) Run(ctx context.Context, prefix domain.Prefix) (*domain.ResultSet, error) {
	if s.scheduler == nil {
		return nil, fmt.Errorf("scheduler cannot be nil")
	}

	addresses := prefix.Enumerate()
	total := len(addresses)

	opts := ports.ScanOptions{
		Prefix:      prefix,
		Timeout:     s.timeout,
		Concurrency: s.concurrency,
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if s.rate < 0 {
		return nil, fmt.Errorf("%w: rate %.1f", domain.ErrInvalidConfig, s.rate)
	}
	if s.rate > 0 {
		opts.Limiter = rate.New(s.rate, 1)
	}

	s.notify(ctx, ports.NewEvent(ports.EventTypeScanStarted, "sweep", ports.ScanStartedEvent{
		Prefix:      prefix,
		Total:       total,
		Timeout:     s.timeout,
		Concurrency: s.concurrency,
		Strategy:    s.scheduler.Name(),
		Prober:      s.proberName,
	}))

	done, alive := 0, 0
	opts.OnOutcome = func(o domain.ProbeOutcome) {
		done++
		if o.Reachable {
			alive++
			s.notify(ctx, ports.NewEvent(ports.EventTypeHostAlive, "sweep", ports.HostAliveEvent{Outcome: o}))
		}
		s.notify(ctx, ports.NewEvent(ports.EventTypeProbeCompleted, "sweep", ports.ProbeCompletedEvent{
			Outcome: o,
			Done:    done,
			Total:   total,
		}))
	}

	rs, err := s.scheduler.ScanSubnet(ctx, addresses, opts)
	if rs == nil {
		return nil, err
	}

	canceled := err != nil && ctx.Err() != nil
	if canceled {
		s.logger.Warn("scan interrupted", "probed", rs.Metadata.Probed, "total", total)
	}

	// ctx may already be canceled; the completion event must still go out
	s.notify(context.WithoutCancel(ctx), ports.NewEvent(ports.EventTypeScanCompleted, "sweep", ports.ScanCompletedEvent{
		ScanID:   rs.ID,
		Prefix:   prefix,
		Stats:    rs.Stats(),
		Canceled: canceled,
	}))

	if err != nil {
		return rs, fmt.Errorf("%w: %w", domain.ErrScanCanceled, err)
	}
	return rs, nil
}

// notify entrega el evento a cada observer en orden. Los errores se
// registran y nunca interrumpen el barrido.
func (s *SweepService) notify(ctx context.Context, event ports.Event) {
	for _, observer := range s.observers {
		notifyCtx, cancel := context.WithTimeout(ctx, notificationTimeout)
		if err := observer.Notify(notifyCtx, event); err != nil {
			s.logger.Warn("notification failed", "event", string(event.Type), "error", err.Error())
		}
		cancel()
	}
}
