// internal/core/usecases/probe_task.go
package usecases

import (
	"context"
	"time"

	"netsweep/internal/core/domain"
	"netsweep/internal/core/ports"
	"netsweep/internal/platform/errors"
)

// probeGrace margen sobre el timeout de la sonda antes de cortar el contexto.
// El prober resuelve su propio timeout; el contexto solo acota probers colgados.
const probeGrace = 250 * time.Millisecond

// ProbeTask adapta una sonda de ports.Prober a workerpool.Task.
type ProbeTask struct {
	prober  ports.Prober
	addr    domain.Address
	timeout time.Duration
	limiter ports.RateLimiter
}

// NewProbeTask crea una nueva ProbeTask.
func NewProbeTask(prober ports.Prober, addr domain.Address, timeout time.Duration) *ProbeTask {
	return &ProbeTask{
		prober:  prober,
		addr:    addr,
		timeout: timeout,
	}
}

// WithLimiter hace que la tarea espere un token antes de enviar.
func (pt *ProbeTask) WithLimiter(l ports.RateLimiter) *ProbeTask {
	pt.limiter = l
	return pt
}

// Execute ejecuta la sonda. Siempre retorna un ProbeOutcome; el error solo
// acompaña fallos operativos del prober, nunca un timeout.
func (pt *ProbeTask) Execute(ctx context.Context) (domain.ProbeOutcome, error) {
	// El timeout corre desde el envío, no desde la espera del token
	if pt.limiter != nil {
		if err := pt.limiter.Wait(ctx); err != nil {
			return domain.NewOutcome(pt.addr, false, 0), nil
		}
	}

	probeCtx, cancel := context.WithTimeout(ctx, pt.timeout+probeGrace)
	defer cancel()

	reply, err := pt.prober.Probe(probeCtx, pt.addr, pt.timeout)
	if err != nil {
		// Timeout propio o escaneo cancelado: no es un fallo de la sonda
		if errors.IsTimeout(err) || ctx.Err() != nil {
			return domain.NewOutcome(pt.addr, false, 0), nil
		}
		return domain.FailedOutcome(pt.addr, err), err
	}

	return domain.NewOutcome(pt.addr, reply.Reachable, reply.RTT), nil
}

// Name retorna el nombre de la tarea (dirección sondeada).
func (pt *ProbeTask) Name() string {
	return pt.addr.String()
}

// Address retorna la dirección sondeada.
func (pt *ProbeTask) Address() domain.Address {
	return pt.addr
}
