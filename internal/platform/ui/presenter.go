// internal/platform/ui/presenter.go
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// UIMode define el modo de visualización
type UIMode string

const (
	UIModePretty UIMode = "pretty" // Banner, barra de progreso y líneas en vivo (default)
	UIModeRaw    UIMode = "raw"    // Eventos en formato logfmt
	UIModeJSON   UIMode = "json"   // Eventos en JSON, uno por línea
	UIModeQuiet  UIMode = "quiet"  // Sin UI visual
)

// Modes lista los modos válidos.
var Modes = []UIMode{UIModePretty, UIModeRaw, UIModeJSON, UIModeQuiet}

// ParseMode valida un nombre de modo.
func ParseMode(s string) (UIMode, error) {
	mode := UIMode(strings.ToLower(strings.TrimSpace(s)))
	if mode == "" {
		return UIModePretty, nil
	}
	for _, m := range Modes {
		if mode == m {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown ui mode %q (valid: pretty, raw, json, quiet)", s)
}

// Presenter define la interfaz para presentar el progreso de un barrido
// de manera visual e interactiva.
type Presenter interface {
	// Start inicia la presentación con información del escaneo
	Start(info ScanInfo)

	// HostAlive notifica un host que respondió
	HostAlive(host HostInfo)

	// Progress actualiza el avance (sondas terminadas sobre el total)
	Progress(done, total int)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Finish finaliza la presentación con estadísticas finales
	Finish(stats ScanStats)

	// Close limpia recursos del presenter
	Close() error
}

// ScanInfo contiene información inicial del escaneo
type ScanInfo struct {
	Subnet    string
	Addresses int
	Workers   int
	Timeout   time.Duration
	Strategy  string
	Prober    string
}

// HostInfo describe un host que respondió
type HostInfo struct {
	Address   string
	RTT       time.Duration
	Timestamp time.Time
}

// ScanStats contiene estadísticas finales del escaneo
type ScanStats struct {
	TotalDuration time.Duration
	Alive         int
	Probed        int
	Failed        int
	Canceled      bool
}

// NewPresenter crea el presenter del modo pedido. Los modos raw y json
// escriben en w (nil = stdout).
func NewPresenter(mode UIMode, w io.Writer) Presenter {
	if w == nil {
		w = os.Stdout
	}
	switch mode {
	case UIModeRaw:
		return NewRawPresenter(LogFormatText, w)
	case UIModeJSON:
		return NewRawPresenter(LogFormatJSON, w)
	case UIModeQuiet:
		return NewNoopPresenter()
	default:
		return NewPTermPresenter()
	}
}
