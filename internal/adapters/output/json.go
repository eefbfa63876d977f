// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"io"
	"time"

	"netsweep/internal/core/domain"
)

// JSONExporter escribe el resultado completo con su metadata.
type JSONExporter struct {
	Pretty bool
}

// NewJSONExporter crea un exporter JSON indentado.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{Pretty: true}
}

// Name retorna el formato.
func (e *JSONExporter) Name() string {
	return "json"
}

// jsonDocument es el layout persistido.
type jsonDocument struct {
	ScanID     string          `json:"scan_id"`
	Prefix     string          `json:"prefix"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	DurationMS int64           `json:"duration_ms"`
	Probed     int             `json:"probed"`
	Failed     int             `json:"failed"`
	Strategy   string          `json:"strategy,omitempty"`
	Prober     string          `json:"prober,omitempty"`
	Responders []jsonResponder `json:"responders"`
}

type jsonResponder struct {
	Address   string    `json:"address"`
	Timestamp time.Time `json:"timestamp"`
	RTTMS     float64   `json:"rtt_ms"`
}

func newJSONDocument(rs *domain.ResultSet) jsonDocument {
	doc := jsonDocument{
		ScanID:     rs.ID,
		Prefix:     rs.Prefix.String(),
		StartedAt:  rs.Metadata.StartTime,
		FinishedAt: rs.Metadata.EndTime,
		DurationMS: rs.Metadata.Duration.Milliseconds(),
		Probed:     rs.Metadata.Probed,
		Failed:     rs.Metadata.Failed,
		Strategy:   rs.Metadata.Strategy,
		Prober:     rs.Metadata.Prober,
		Responders: make([]jsonResponder, 0, rs.Len()),
	}
	for _, e := range rs.Entries {
		doc.Responders = append(doc.Responders, jsonResponder{
			Address:   e.Address.String(),
			Timestamp: e.Timestamp,
			RTTMS:     float64(e.RTT.Microseconds()) / 1000,
		})
	}
	return doc
}

// Export implementa ports.Exporter.
func (e *JSONExporter) Export(w io.Writer, rs *domain.ResultSet) error {
	enc := json.NewEncoder(w)
	if e.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(newJSONDocument(rs))
}
