// internal/platform/workerpool/worker_pool.go
package workerpool

import (
	"context"
	"sync"
	"time"

	"netsweep/internal/platform/logx"
)

// Task representa una tarea a ejecutar en el worker pool.
type Task[T any] interface {
	// Execute ejecuta la tarea y retorna su valor
	Execute(ctx context.Context) (T, error)

	// Name retorna el nombre de la tarea
	Name() string
}

// Scheduler define el orden en que las tareas se despachan.
type Scheduler[T any] interface {
	// Schedule ordena las tareas según la estrategia
	Schedule(tasks []Task[T]) []Task[T]

	// Name retorna el nombre del scheduler
	Name() string
}

// WorkerPool gestiona la ejecución concurrente de tareas con un número fijo
// de workers. Nunca hay más de Workers tareas ejecutándose a la vez.
type WorkerPool[T any] struct {
	workers   int
	scheduler Scheduler[T]
	logger    logx.Logger

	// Channels
	taskQueue chan job[T]
	results   chan TaskResult[T]

	// Control
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	stopped sync.Once
}

// job asocia una tarea con el contexto del Submit que la despachó.
type job[T any] struct {
	ctx  context.Context
	task Task[T]
}

// TaskResult representa el resultado de una tarea.
type TaskResult[T any] struct {
	Task     Task[T]
	Value    T
	Error    error
	Duration time.Duration
}

// WorkerPoolConfig configura el worker pool.
type WorkerPoolConfig[T any] struct {
	Workers   int
	Scheduler Scheduler[T]
	Logger    logx.Logger
}

// NewWorkerPool crea un nuevo worker pool.
func NewWorkerPool[T any](cfg WorkerPoolConfig[T]) *WorkerPool[T] {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewFIFOScheduler[T]()
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool[T]{
		workers:   cfg.Workers,
		scheduler: cfg.Scheduler,
		logger:    cfg.Logger.With("component", "worker-pool"),
		taskQueue: make(chan job[T], cfg.Workers*2), // Buffer 2x workers
		results:   make(chan TaskResult[T], cfg.Workers*2),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start inicia el worker pool.
func (wp *WorkerPool[T]) Start() {
	wp.logger.Debug("starting worker pool", "workers", wp.workers, "scheduler", wp.scheduler.Name())

	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// worker es el goroutine que procesa tareas.
func (wp *WorkerPool[T]) worker(id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.ctx.Done():
			return

		case j, ok := <-wp.taskQueue:
			if !ok {
				return
			}

			wp.executeTask(id, j)
		}
	}
}

// executeTask ejecuta una tarea individual.
func (wp *WorkerPool[T]) executeTask(workerID int, j job[T]) {
	start := time.Now()

	value, err := j.task.Execute(j.ctx)
	duration := time.Since(start)

	wp.logger.Debug("task completed",
		"worker_id", workerID,
		"task", j.task.Name(),
		"duration_ms", duration.Milliseconds(),
		"error", err != nil,
	)

	// Enviar resultado
	select {
	case wp.results <- TaskResult[T]{
		Task:     j.task,
		Value:    value,
		Error:    err,
		Duration: duration,
	}:
	case <-wp.ctx.Done():
		// Pool stopped, discard result
	}
}

// Submit despacha las tareas en el orden del scheduler e invoca onResult
// por cada resultado, siempre desde la goroutine que llamó a Submit.
//
// Si ctx se cancela no se despachan más tareas; las ya despachadas terminan
// y sus resultados se entregan igual. Submit retorna cuando todas las tareas
// despachadas entregaron su resultado y devuelve cuántas fueron.
func (wp *WorkerPool[T]) Submit(ctx context.Context, tasks []Task[T], onResult func(TaskResult[T])) int {
	if len(tasks) == 0 {
		return 0
	}

	scheduledTasks := wp.scheduler.Schedule(tasks)

	wp.logger.Debug("submitting tasks",
		"total", len(scheduledTasks),
		"scheduler", wp.scheduler.Name(),
	)

	// Alimentar el queue; informa cuántas tareas llegó a despachar
	dispatched := make(chan int, 1)
	go func() {
		n := 0
		defer func() { dispatched <- n }()
		for _, task := range scheduledTasks {
			if ctx.Err() != nil {
				return
			}
			select {
			case wp.taskQueue <- job[T]{ctx: ctx, task: task}:
				n++
			case <-ctx.Done():
				return
			case <-wp.ctx.Done():
				return
			}
		}
	}()

	// Recolectar resultados
	received, total := 0, -1
	feed := dispatched
	for total < 0 || received < total {
		select {
		case result := <-wp.results:
			received++
			if onResult != nil {
				onResult(result)
			}
		case n := <-feed:
			total = n
			feed = nil
		case <-wp.ctx.Done():
			wp.logger.Warn("pool stopped while waiting for results")
			return received
		}
	}

	if total < len(tasks) {
		wp.logger.Debug("submit interrupted", "dispatched", total, "total", len(tasks))
	}

	return received
}

// Stop detiene el worker pool y espera a que todos los workers terminen.
// Es seguro llamarlo más de una vez, pero no en paralelo con Submit.
func (wp *WorkerPool[T]) Stop() {
	wp.stopped.Do(func() {
		// Cancel context to signal workers
		wp.cancel()

		// Close task queue
		close(wp.taskQueue)

		// Wait for all workers to finish
		wp.wg.Wait()

		// Close results channel
		close(wp.results)

		wp.logger.Debug("worker pool stopped")
	})
}

// Stats retorna estadísticas del worker pool.
func (wp *WorkerPool[T]) Stats() WorkerPoolStats {
	return WorkerPoolStats{
		Workers:       wp.workers,
		SchedulerName: wp.scheduler.Name(),
		QueueSize:     len(wp.taskQueue),
		ResultsSize:   len(wp.results),
	}
}

// WorkerPoolStats contiene estadísticas del worker pool.
type WorkerPoolStats struct {
	Workers       int
	SchedulerName string
	QueueSize     int
	ResultsSize   int
}
