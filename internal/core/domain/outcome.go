// internal/core/domain/outcome.go
package domain

import "time"

// TimestampLayout is the layout used for outcome timestamps in tabular output.
const TimestampLayout = "2006-01-02 15:04:05"

// ProbeOutcome es el resultado de una sonda de vida sobre una dirección.
// Lo crea el worker al terminar la sonda y no se modifica después.
type ProbeOutcome struct {
	// Address dirección sondeada
	Address Address

	// Reachable indica si hubo respuesta dentro del timeout
	Reachable bool

	// RTT tiempo de ida y vuelta (cero si no hubo respuesta)
	RTT time.Duration

	// Timestamp momento en que terminó la sonda
	Timestamp time.Time

	// Err error operativo de la sonda, si lo hubo. Nunca aborta el escaneo.
	Err error
}

// NewOutcome crea un resultado con el timestamp actual.
func NewOutcome(addr Address, reachable bool, rtt time.Duration) ProbeOutcome {
	if !reachable {
		rtt = 0
	}
	return ProbeOutcome{
		Address:   addr,
		Reachable: reachable,
		RTT:       rtt,
		Timestamp: time.Now(),
	}
}

// FailedOutcome crea un resultado negativo a partir de un error de la sonda.
func FailedOutcome(addr Address, err error) ProbeOutcome {
	o := NewOutcome(addr, false, 0)
	o.Err = err
	return o
}

// FormattedTimestamp devuelve el timestamp en formato YYYY-MM-DD HH:MM:SS.
func (o ProbeOutcome) FormattedTimestamp() string {
	return o.Timestamp.Format(TimestampLayout)
}
