// internal/platform/workerpool/schedulers.go
package workerpool

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// FIFOScheduler no reordena (First In First Out).
type FIFOScheduler[T any] struct{}

// NewFIFOScheduler crea un scheduler FIFO.
func NewFIFOScheduler[T any]() *FIFOScheduler[T] {
	return &FIFOScheduler[T]{}
}

// Schedule retorna tasks en el orden original.
func (s *FIFOScheduler[T]) Schedule(tasks []Task[T]) []Task[T] {
	scheduled := make([]Task[T], len(tasks))
	copy(scheduled, tasks)
	return scheduled
}

// Name retorna el nombre del scheduler.
func (s *FIFOScheduler[T]) Name() string {
	return "fifo"
}

// ShuffleScheduler despacha las tareas en una permutación pseudoaleatoria.
// Con la misma semilla la permutación es siempre la misma.
type ShuffleScheduler[T any] struct {
	Seed uint64
}

// NewShuffleScheduler crea un scheduler que baraja las tareas.
func NewShuffleScheduler[T any](seed uint64) *ShuffleScheduler[T] {
	return &ShuffleScheduler[T]{Seed: seed}
}

// Schedule retorna una copia barajada de tasks.
func (s *ShuffleScheduler[T]) Schedule(tasks []Task[T]) []Task[T] {
	scheduled := make([]Task[T], len(tasks))
	copy(scheduled, tasks)

	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))
	rng.Shuffle(len(scheduled), func(i, j int) {
		scheduled[i], scheduled[j] = scheduled[j], scheduled[i]
	})

	return scheduled
}

// Name retorna el nombre del scheduler.
func (s *ShuffleScheduler[T]) Name() string {
	return "shuffle"
}

// SchedulerNames lista los nombres aceptados por SchedulerByName.
var SchedulerNames = []string{"fifo", "shuffle"}

// SchedulerByName construye un scheduler a partir de su nombre.
func SchedulerByName[T any](name string, seed uint64) (Scheduler[T], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fifo":
		return NewFIFOScheduler[T](), nil
	case "shuffle":
		return NewShuffleScheduler[T](seed), nil
	default:
		return nil, fmt.Errorf("unknown dispatch order %q (valid: %s)", name, strings.Join(SchedulerNames, ", "))
	}
}
