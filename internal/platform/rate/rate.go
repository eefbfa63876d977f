// Package rate limita el ritmo de envío de sondas con un token bucket.
package rate

import (
	"context"
	"sync"
	"time"
)

// Limiter implementa un token bucket. Wait bloquea hasta obtener un token;
// Allow nunca bloquea.
type Limiter struct {
	mu     sync.Mutex
	rate   float64 // tokens por segundo
	burst  int     // capacidad del bucket
	tokens float64
	last   time.Time
	now    func() time.Time
}

// New crea un limiter de rate sondas por segundo con ráfaga burst.
// Valores <= 0 se reemplazan por 1.
//
// Example:
//
//	limiter := rate.New(500, 10) // 500 sondas/s, ráfaga de 10
func New(rate float64, burst int) *Limiter {
	if rate <= 0 {
		rate = 1
	}
	if burst <= 0 {
		burst = 1
	}

	l := &Limiter{
		rate:   rate,
		burst:  burst,
		tokens: float64(burst), // bucket lleno al inicio
		now:    time.Now,
	}
	l.last = l.now()
	return l
}

// Wait bloquea hasta que haya un token o el contexto se cancele.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		wait := l.reserve()
		if wait <= 0 {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Allow consume un token si hay uno disponible.
func (l *Limiter) Allow() bool {
	return l.reserve() <= 0
}

// Tokens retorna los tokens disponibles.
func (l *Limiter) Tokens() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance()
	return l.tokens
}

// Rate retorna el ritmo en tokens por segundo.
func (l *Limiter) Rate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rate
}

// Burst retorna la capacidad del bucket.
func (l *Limiter) Burst() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.burst
}

// reserve consume un token y retorna 0, o retorna cuánto falta para el
// próximo token sin consumir nada.
func (l *Limiter) reserve() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance()

	if l.tokens >= 1 {
		l.tokens--
		return 0
	}

	missing := 1.0 - l.tokens
	wait := time.Duration(missing / l.rate * float64(time.Second))
	if wait <= 0 {
		wait = time.Millisecond
	}
	return wait
}

// advance suma los tokens acumulados desde la última llamada. Requiere l.mu.
func (l *Limiter) advance() {
	now := l.now()
	elapsed := now.Sub(l.last).Seconds()
	if elapsed > 0 {
		l.tokens += elapsed * l.rate
		if l.tokens > float64(l.burst) {
			l.tokens = float64(l.burst)
		}
	}
	l.last = now
}
