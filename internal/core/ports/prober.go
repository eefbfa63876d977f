// internal/core/ports/prober.go
package ports

import (
	"context"
	"time"

	"netsweep/internal/core/domain"
)

// Prober es el port para las sondas de vida. Cualquier mecanismo capaz de
// responder "¿contestó esta dirección dentro del timeout?" lo implementa
// (socket ICMP, binario ping del sistema, red simulada en tests).
type Prober interface {
	// Name retorna el nombre único del prober (ej: "icmp", "udp", "exec")
	Name() string

	// Probe envía un único echo request y espera la respuesta hasta timeout.
	// Un timeout o la ausencia de respuesta NO es un error: retorna
	// Reachable=false y err=nil. Los errores quedan para fallos operativos.
	Probe(ctx context.Context, addr domain.Address, timeout time.Duration) (ProbeReply, error)

	// Close libera recursos del prober
	Close() error
}

// ProbeReply es la respuesta de una sonda.
type ProbeReply struct {
	Reachable bool
	RTT       time.Duration
}

// ProberConfig contiene la configuración común de los probers.
type ProberConfig struct {
	// TTL time-to-live del echo request
	TTL int

	// Custom configuración específica del prober
	Custom map[string]interface{}
}

// DefaultTTL es el TTL usado por todas las sondas.
const DefaultTTL = 64

// DefaultProberConfig retorna una configuración por defecto.
func DefaultProberConfig() ProberConfig {
	return ProberConfig{
		TTL:    DefaultTTL,
		Custom: make(map[string]interface{}),
	}
}

// ProberMetadata contiene metadatos sobre un prober.
type ProberMetadata struct {
	Name        string
	Description string

	// RequiresPrivilege indica si necesita CAP_NET_RAW / root
	RequiresPrivilege bool

	// Priority orden de preferencia para la selección automática (mayor = preferido)
	Priority int
}
