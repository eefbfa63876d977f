// internal/core/ports/notifier.go
package ports

import (
	"context"
	"time"

	"netsweep/internal/core/domain"
)

// Notifier es el port para notificaciones de eventos del barrido.
// Implementa el patrón Observer para desacoplar la lógica de negocio
// de la presentación (barra de progreso, líneas JSON, etc.).
type Notifier interface {
	// Notify envía una notificación para un evento
	Notify(ctx context.Context, event Event) error

	// Close cierra el notifier y libera recursos
	Close() error
}

// Event representa un evento del sistema.
type Event struct {
	// Type tipo de evento
	Type EventType

	// Timestamp momento del evento
	Timestamp time.Time

	// Source componente que generó el evento
	Source string

	// Target dirección o bloque relacionado (opcional)
	Target string

	// Data datos específicos del evento
	Data interface{}
}

// EventType define los tipos de eventos del sistema.
type EventType string

const (
	EventTypeScanStarted    EventType = "scan.started"
	EventTypeScanCompleted  EventType = "scan.completed"
	EventTypeProbeCompleted EventType = "probe.completed"
	EventTypeHostAlive      EventType = "host.alive"
)

// NewEvent crea un nuevo evento.
func NewEvent(eventType EventType, source string, data interface{}) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	}
}

// ScanStartedEvent datos para evento de inicio de escaneo.
type ScanStartedEvent struct {
	Prefix      domain.Prefix
	Total       int
	Timeout     time.Duration
	Concurrency int
	Strategy    string
	Prober      string
}

// ProbeCompletedEvent datos de progreso tras cada sonda.
type ProbeCompletedEvent struct {
	Outcome domain.ProbeOutcome
	Done    int
	Total   int
}

// HostAliveEvent datos para un host que respondió.
type HostAliveEvent struct {
	Outcome domain.ProbeOutcome
}

// ScanCompletedEvent datos para evento de finalización de escaneo.
type ScanCompletedEvent struct {
	ScanID   string
	Prefix   domain.Prefix
	Stats    domain.Stats
	Canceled bool
}
