// internal/platform/ui/symbols.go
package ui

import "github.com/pterm/pterm"

// Status representa el estado de una dirección sondeada
type Status int

const (
	StatusPending Status = iota
	StatusAlive
	StatusSilent
	StatusFailed
)

// String convierte el status a string
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusAlive:
		return "alive"
	case StatusSilent:
		return "silent"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Symbol retorna el símbolo Unicode para cada estado
func (s Status) Symbol() string {
	switch s {
	case StatusPending:
		return "⏸"
	case StatusAlive:
		return "✓"
	case StatusSilent:
		return "·"
	case StatusFailed:
		return "✗"
	default:
		return "?"
	}
}

// Color retorna el color pterm para cada estado
func (s Status) Color() pterm.Color {
	switch s {
	case StatusAlive:
		return pterm.FgGreen
	case StatusFailed:
		return pterm.FgRed
	case StatusPending, StatusSilent:
		return pterm.FgGray
	default:
		return pterm.FgDefault
	}
}

// Style retorna un pterm.Style configurado para el estado
func (s Status) Style() *pterm.Style {
	return pterm.NewStyle(s.Color())
}

// Icons globales para diferentes elementos de la UI
var (
	IconTarget  = "🎯"
	IconWarning = "⚠"
	IconError   = "✗"
	IconSuccess = "✓"
	IconTime    = "⏱"
	IconProbe   = "📡"
	IconWorkers = "⚙️"
)

// Separadores
var (
	SeparatorHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
)
