// internal/core/usecases/strategy.go
package usecases

import (
	"fmt"
	"runtime"
	"strings"

	"netsweep/internal/core/ports"
	"netsweep/internal/platform/logx"
)

// Strategy identifica la implementación de ScanSubnet.
type Strategy string

const (
	StrategyAuto       Strategy = "auto"
	StrategyParallel   Strategy = "parallel"
	StrategySequential Strategy = "sequential"
)

// gomaxprocs se reemplaza en tests.
var gomaxprocs = func() int { return runtime.GOMAXPROCS(0) }

// ResolveStrategy traduce el nombre configurado a una estrategia concreta.
// "auto" elige parallel si el runtime puede ejecutar goroutines en paralelo.
func ResolveStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case "", StrategyAuto:
		if gomaxprocs() > 1 {
			return StrategyParallel, nil
		}
		return StrategySequential, nil
	case StrategyParallel:
		return StrategyParallel, nil
	case StrategySequential:
		return StrategySequential, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (valid: auto, parallel, sequential)", name)
	}
}

// SchedulerOptions configura NewScheduler.
type SchedulerOptions struct {
	Strategy string
	Dispatch string
	Prober   ports.Prober
	Logger   logx.Logger
}

// NewScheduler construye el scheduler de la estrategia pedida.
func NewScheduler(opts SchedulerOptions) (ports.Scheduler, error) {
	if opts.Prober == nil {
		return nil, fmt.Errorf("prober cannot be nil")
	}

	strategy, err := ResolveStrategy(opts.Strategy)
	if err != nil {
		return nil, err
	}

	switch strategy {
	case StrategySequential:
		return NewSequentialScheduler(opts.Prober, opts.Logger), nil
	default:
		ps, err := NewParallelScheduler(opts.Prober, opts.Dispatch, opts.Logger)
		if err != nil {
			return nil, err
		}
		return ps, nil
	}
}
