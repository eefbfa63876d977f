// internal/platform/registry/prober_registry.go
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"netsweep/internal/core/domain"
	"netsweep/internal/core/ports"
	"netsweep/internal/platform/errors"
	"netsweep/internal/platform/logx"
)

// AutoProber es el nombre que selecciona el primer prober utilizable.
const AutoProber = "auto"

// ProberRegistry gestiona el registro y construcción de probers.
// Implementa el patrón Registry + Factory para desacoplar la creación
// de probers del código de aplicación.
type ProberRegistry struct {
	mu        sync.RWMutex
	factories map[string]ProberFactory
	metadata  map[string]ports.ProberMetadata
	logger    logx.Logger
}

// ProberFactory es una función que crea una instancia de Prober.
// La factory hace su propio preflight y falla si el prober no es utilizable.
type ProberFactory func(cfg ports.ProberConfig, logger logx.Logger) (ports.Prober, error)

// globalRegistry es la instancia global del registry.
var globalRegistry *ProberRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *ProberRegistry {
	once.Do(func() {
		globalRegistry = NewProberRegistry(logx.New())
	})
	return globalRegistry
}

// NewProberRegistry crea un nuevo registry de probers.
func NewProberRegistry(logger logx.Logger) *ProberRegistry {
	return &ProberRegistry{
		factories: make(map[string]ProberFactory),
		metadata:  make(map[string]ports.ProberMetadata),
		logger:    logger.With("component", "prober-registry"),
	}
}

// Register registra una prober factory con su metadata.
// Típicamente llamado desde init() del paquete de probers.
func (r *ProberRegistry) Register(name string, factory ProberFactory, meta ports.ProberMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("prober name cannot be empty")
	}

	if name == AutoProber {
		return fmt.Errorf("prober name %q is reserved", AutoProber)
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil for prober %s", name)
	}

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("prober %s is already registered", name)
	}

	r.factories[name] = factory
	r.metadata[name] = meta
	r.logger.Debug("prober registered", "name", name, "priority", meta.Priority)

	return nil
}

// Build construye el prober pedido. Con "auto" prueba los probers por
// prioridad descendente y retorna el primero cuyo preflight pasa.
func (r *ProberRegistry) Build(name string, cfg ports.ProberConfig, logger logx.Logger) (ports.Prober, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == AutoProber {
		return r.buildAuto(cfg, logger)
	}

	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s (registered: %s)", domain.ErrProberNotFound, name, strings.Join(r.namesLocked(), ", "))
	}

	prober, err := factory(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrNoProberAvailable, name, err)
	}

	r.logger.Debug("prober built", "name", name)
	return prober, nil
}

func (r *ProberRegistry) buildAuto(cfg ports.ProberConfig, logger logx.Logger) (ports.Prober, error) {
	names := r.namesLocked()
	sort.SliceStable(names, func(i, j int) bool {
		return r.metadata[names[i]].Priority > r.metadata[names[j]].Priority
	})

	failures := make([]error, 0, len(names))
	for _, name := range names {
		prober, err := r.factories[name](cfg, logger)
		if err != nil {
			r.logger.Debug("prober unavailable", "name", name, "error", err.Error())
			failures = append(failures, fmt.Errorf("%s: %w", name, err))
			continue
		}
		r.logger.Debug("prober selected", "name", name, "priority", r.metadata[name].Priority)
		return prober, nil
	}

	if len(failures) == 0 {
		return nil, fmt.Errorf("%w: no probers registered", domain.ErrNoProberAvailable)
	}
	return nil, fmt.Errorf("%w: %w", domain.ErrNoProberAvailable, errors.Join(failures...))
}

// List retorna los nombres de todos los probers registrados.
func (r *ProberRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *ProberRegistry) namesLocked() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetMetadata retorna el metadata de un prober.
func (r *ProberRegistry) GetMetadata(name string) (ports.ProberMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.metadata[name]
	return meta, exists
}

// IsRegistered verifica si un prober está registrado.
func (r *ProberRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// Clear elimina todos los probers registrados (útil para testing).
func (r *ProberRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]ProberFactory)
	r.metadata = make(map[string]ports.ProberMetadata)
}
