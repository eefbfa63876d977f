// internal/platform/ui/raw_presenter.go
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogFormat define el formato de salida para el modo raw
type LogFormat string

const (
	LogFormatText LogFormat = "text" // Formato logfmt (default)
	LogFormatJSON LogFormat = "json" // Formato JSON estructurado
)

// progressSteps número de líneas de progreso por barrido
const progressSteps = 8

// RawPresenter implementa el Presenter para modo raw (logs sin formato visual)
type RawPresenter struct {
	format LogFormat
	out    io.Writer
	mu     sync.Mutex
	now    func() time.Time
}

// NewRawPresenter crea un nuevo RawPresenter
func NewRawPresenter(format LogFormat, out io.Writer) *RawPresenter {
	return &RawPresenter{
		format: format,
		out:    out,
		now:    time.Now,
	}
}

// log escribe un log en el formato configurado
func (r *RawPresenter) log(level, message string, fields map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.now().UTC().Format(time.RFC3339)

	if r.format == LogFormatJSON {
		r.logJSON(timestamp, level, message, fields)
	} else {
		r.logText(timestamp, level, message, fields)
	}
}

// logText escribe en formato logfmt: timestamp LEVEL message key=value key2=value2
func (r *RawPresenter) logText(timestamp, level, message string, fields map[string]interface{}) {
	parts := []string{timestamp, fmt.Sprintf("%-5s", level), message}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, r.formatValue(fields[k])))
	}

	fmt.Fprintln(r.out, strings.Join(parts, " "))
}

// logJSON escribe en formato JSON estructurado
func (r *RawPresenter) logJSON(timestamp, level, message string, fields map[string]interface{}) {
	logEntry := map[string]interface{}{
		"timestamp": timestamp,
		"level":     level,
		"message":   message,
	}

	if len(fields) > 0 {
		data := make(map[string]interface{}, len(fields))
		for k, v := range fields {
			if d, ok := v.(time.Duration); ok {
				v = d.Milliseconds()
				k += "_ms"
			}
			data[k] = v
		}
		logEntry["data"] = data
	}

	jsonBytes, _ := json.Marshal(logEntry)
	fmt.Fprintln(r.out, string(jsonBytes))
}

// formatValue formatea valores para logfmt (entrecomilla strings con espacios)
func (r *RawPresenter) formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		if strings.Contains(val, " ") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case time.Duration:
		return val.String()
	case float64:
		return fmt.Sprintf("%.1f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Start inicia la presentación
func (r *RawPresenter) Start(info ScanInfo) {
	r.log("INFO", "scan_started", map[string]interface{}{
		"subnet":    info.Subnet,
		"addresses": info.Addresses,
		"workers":   info.Workers,
		"timeout":   info.Timeout,
		"strategy":  info.Strategy,
		"prober":    info.Prober,
	})
}

// HostAlive registra un host que respondió
func (r *RawPresenter) HostAlive(host HostInfo) {
	r.log("INFO", "host_alive", map[string]interface{}{
		"address": host.Address,
		"rtt":     host.RTT,
	})
}

// Progress registra el avance en pocos pasos para no inundar la salida
func (r *RawPresenter) Progress(done, total int) {
	if total <= 0 {
		return
	}
	step := total / progressSteps
	if step < 1 {
		step = 1
	}
	if done != total && done%step != 0 {
		return
	}
	r.log("INFO", "scan_progress", map[string]interface{}{
		"done":       done,
		"total":      total,
		"percentage": float64(done) * 100 / float64(total),
	})
}

// Info muestra un mensaje informativo
func (r *RawPresenter) Info(msg string) {
	r.log("INFO", msg, nil)
}

// Warning muestra una advertencia
func (r *RawPresenter) Warning(msg string) {
	r.log("WARN", msg, nil)
}

// Error muestra un error
func (r *RawPresenter) Error(msg string) {
	r.log("ERROR", msg, nil)
}

// Finish finaliza la presentación con estadísticas finales
func (r *RawPresenter) Finish(stats ScanStats) {
	r.log("INFO", "scan_completed", map[string]interface{}{
		"duration": stats.TotalDuration,
		"alive":    stats.Alive,
		"probed":   stats.Probed,
		"failed":   stats.Failed,
		"canceled": stats.Canceled,
	})
}

// Close limpia recursos
func (r *RawPresenter) Close() error {
	return nil
}
