// internal/core/ports/scheduler.go
package ports

import (
	"context"
	"time"

	"netsweep/internal/core/domain"
)

// Scheduler despacha una sonda por dirección con un límite de concurrencia
// y agrega los hosts que respondieron.
type Scheduler interface {
	// Name retorna la estrategia ("parallel", "sequential")
	Name() string

	// ScanSubnet sondea cada dirección exactamente una vez. Retorna solo cuando
	// todas las sondas despachadas terminaron. Si ctx se cancela retorna el
	// ResultSet parcial junto con ctx.Err().
	ScanSubnet(ctx context.Context, addresses []domain.Address, opts ScanOptions) (*domain.ResultSet, error)
}

// ScanOptions configura un barrido.
type ScanOptions struct {
	// Prefix bloque al que pertenecen las direcciones
	Prefix domain.Prefix

	// Timeout espera máxima por sonda, medida desde el despacho
	Timeout time.Duration

	// Concurrency máximo de sondas en vuelo
	Concurrency int

	// Limiter acota el ritmo de envío (opcional). La espera por un token no
	// cuenta contra Timeout.
	Limiter RateLimiter

	// OnOutcome se invoca una vez por dirección, desde una sola goroutine,
	// en orden de finalización (opcional)
	OnOutcome func(domain.ProbeOutcome)
}

// RateLimiter entrega permisos de envío; Wait bloquea hasta obtener uno.
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Validate rechaza opciones fuera de rango.
func (o ScanOptions) Validate() error {
	if o.Timeout <= 0 {
		return domain.ErrInvalidTimeout
	}
	if o.Concurrency < 1 {
		return domain.ErrInvalidConcurrency
	}
	return nil
}
