// internal/core/ports/sink.go
package ports

import (
	"io"

	"netsweep/internal/core/domain"
)

// Sink es el port de salida de resultados.
type Sink interface {
	// Emit muestra los hosts que respondieron en la consola
	Emit(rs *domain.ResultSet) error

	// Persist escribe los hosts que respondieron en un archivo
	Persist(rs *domain.ResultSet, path string) error
}

// Exporter serializa un ResultSet en un formato concreto.
type Exporter interface {
	// Name retorna el formato (ej: "csv", "json")
	Name() string

	// Export escribe el resultado en w
	Export(w io.Writer, rs *domain.ResultSet) error
}
