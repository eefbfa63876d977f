// internal/adapters/output/sink.go
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"netsweep/internal/core/domain"
	"netsweep/internal/core/ports"
	"netsweep/internal/platform/logx"
)

// Formats lista los formatos de archivo soportados.
var Formats = []string{"csv", "json"}

// Sink implementa ports.Sink: tabla en consola y archivo CSV/JSON.
type Sink struct {
	out     io.Writer
	format  string
	noTable bool
	logger  logx.Logger
}

// SinkOptions configura el Sink.
type SinkOptions struct {
	// Out destino de la tabla (nil = stdout)
	Out io.Writer

	// Format formato del archivo ("" = según extensión)
	Format string

	// NoTable omite la tabla en Emit
	NoTable bool

	Logger logx.Logger
}

// NewSink crea un nuevo Sink.
func NewSink(opts SinkOptions) *Sink {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &Sink{
		out:     opts.Out,
		format:  opts.Format,
		noTable: opts.NoTable,
		logger:  opts.Logger.With("component", "sink"),
	}
}

// Emit imprime la tabla de hosts que respondieron.
func (s *Sink) Emit(rs *domain.ResultSet) error {
	if s.noTable {
		return nil
	}
	return WriteTable(s.out, rs)
}

// Persist escribe el resultado en path con el exporter que corresponda.
// Cualquier fallo de I/O se envuelve con domain.ErrExportFailed.
func (s *Sink) Persist(rs *domain.ResultSet, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: %w", domain.ErrExportFailed, domain.ErrInvalidOutputPath)
	}

	exporter, err := ExporterFor(s.format, path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: failed to create output directory: %w", domain.ErrExportFailed, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: failed to create output file: %w", domain.ErrExportFailed, err)
	}

	if err := exporter.Export(f, rs); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %w", domain.ErrExportFailed, exporter.Name(), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: failed to close output file: %w", domain.ErrExportFailed, err)
	}

	s.logger.Debug("results persisted", "path", path, "format", exporter.Name(), "rows", rs.Len())
	return nil
}

// ExporterFor elige el exporter: el formato explícito manda; si no hay,
// la extensión .json elige JSON y cualquier otra CSV.
func ExporterFor(format, path string) (ports.Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return NewCSVExporter(), nil
	case "json":
		return NewJSONExporter(), nil
	case "":
		if strings.EqualFold(filepath.Ext(path), ".json") {
			return NewJSONExporter(), nil
		}
		return NewCSVExporter(), nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: %s)", domain.ErrUnsupportedFormat, format, strings.Join(Formats, ", "))
	}
}
