// internal/core/domain/result_set.go
package domain

import (
	"fmt"
	"time"
)

// ResultSet representa el resultado de un barrido sobre un bloque /24.
// Contiene solo los hosts que respondieron, en orden de finalización.
// Tiene un único escritor: el colector del scheduler.
type ResultSet struct {
	// ID identificador del escaneo
	ID string

	// Prefix bloque escaneado
	Prefix Prefix

	// Entries hosts que respondieron, en orden de llegada
	Entries []ProbeOutcome

	// Metadata información del escaneo
	Metadata ScanMetadata

	seen map[Address]struct{}
}

// ScanMetadata contiene información sobre la ejecución del barrido.
type ScanMetadata struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Probed número de direcciones cuya sonda terminó
	Probed int

	// Failed número de sondas que terminaron con error operativo
	Failed int

	// Strategy scheduler usado (parallel, sequential)
	Strategy string

	// Prober implementación de la sonda (icmp, udp, exec)
	Prober string
}

// NewResultSet crea un ResultSet vacío para el prefijo dado.
func NewResultSet(prefix Prefix) *ResultSet {
	return &ResultSet{
		ID:      generateScanID(),
		Prefix:  prefix,
		Entries: make([]ProbeOutcome, 0),
		Metadata: ScanMetadata{
			StartTime: time.Now(),
		},
		seen: make(map[Address]struct{}),
	}
}

// Record registra una sonda terminada: actualiza contadores y agrega el
// resultado si el host respondió. Devuelve true si se agregó una entrada.
func (rs *ResultSet) Record(o ProbeOutcome) bool {
	rs.Metadata.Probed++
	if o.Err != nil {
		rs.Metadata.Failed++
	}
	return rs.Add(o)
}

// Add agrega un resultado positivo. Descarta resultados negativos y
// direcciones ya presentes.
func (rs *ResultSet) Add(o ProbeOutcome) bool {
	if !o.Reachable {
		return false
	}
	if rs.seen == nil {
		rs.seen = make(map[Address]struct{}, len(rs.Entries))
		for _, e := range rs.Entries {
			rs.seen[e.Address] = struct{}{}
		}
	}
	if _, dup := rs.seen[o.Address]; dup {
		return false
	}
	rs.seen[o.Address] = struct{}{}
	rs.Entries = append(rs.Entries, o)
	return true
}

// Contains indica si la dirección respondió.
func (rs *ResultSet) Contains(addr Address) bool {
	for _, e := range rs.Entries {
		if e.Address == addr {
			return true
		}
	}
	return false
}

// Addresses devuelve las direcciones que respondieron, en orden de llegada.
func (rs *ResultSet) Addresses() []Address {
	out := make([]Address, len(rs.Entries))
	for i, e := range rs.Entries {
		out[i] = e.Address
	}
	return out
}

// Len número de hosts que respondieron.
func (rs *ResultSet) Len() int {
	return len(rs.Entries)
}

// IsEmpty indica si ningún host respondió.
func (rs *ResultSet) IsEmpty() bool {
	return len(rs.Entries) == 0
}

// Finalize cierra el escaneo y calcula la duración.
func (rs *ResultSet) Finalize() {
	rs.Metadata.EndTime = time.Now()
	rs.Metadata.Duration = rs.Metadata.EndTime.Sub(rs.Metadata.StartTime)
}

// Stats resumen numérico del escaneo.
type Stats struct {
	Alive    int
	Probed   int
	Failed   int
	Duration time.Duration
}

// Stats calcula estadísticas del ResultSet.
func (rs *ResultSet) Stats() Stats {
	return Stats{
		Alive:    len(rs.Entries),
		Probed:   rs.Metadata.Probed,
		Failed:   rs.Metadata.Failed,
		Duration: rs.Metadata.Duration,
	}
}

// Summary devuelve un resumen legible del escaneo.
func (rs *ResultSet) Summary() string {
	return fmt.Sprintf("%s: %d/%d hosts alive (failed=%d, duration=%s)",
		rs.Prefix.CIDR(), len(rs.Entries), rs.Metadata.Probed, rs.Metadata.Failed,
		rs.Metadata.Duration.Round(time.Millisecond))
}

// generateScanID genera un ID único para el escaneo.
func generateScanID() string {
	return fmt.Sprintf("scan-%d", time.Now().UnixNano())
}
