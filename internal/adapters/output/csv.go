// internal/adapters/output/csv.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"netsweep/internal/core/domain"
)

// CSVHeader es la cabecera del archivo de resultados.
var CSVHeader = []string{"IP Address", "Timestamp"}

// CSVExporter escribe una fila por host que respondió.
type CSVExporter struct{}

// NewCSVExporter crea un exporter CSV.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Name retorna el formato.
func (e *CSVExporter) Name() string {
	return "csv"
}

// Export implementa ports.Exporter.
func (e *CSVExporter) Export(w io.Writer, rs *domain.ResultSet) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, entry := range rs.Entries {
		if err := cw.Write([]string{entry.Address.String(), entry.FormattedTimestamp()}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
