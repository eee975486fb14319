package rack

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Factory builds one module instance bound to ports.
type Factory func(ctx Context, ports Ports) (Unit, error)

// Model pairs a module description with its factory.
type Model struct {
	Config  Config
	Factory Factory
}

// ErrUnknownModule is returned when a slug has no registered model.
var ErrUnknownModule = errors.New("unknown module")

var errDuplicateModule = errors.New("duplicate module")

// Registry maps module slugs to models. Lookups ignore case.
type Registry struct {
	models map[string]Model
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]Model)}
}

// DefaultRegistry returns a registry holding Filter and Pass.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(Model{
		Config: FilterConfig(),
		Factory: func(ctx Context, ports Ports) (Unit, error) {
			return NewFilter(ctx, ports)
		},
	})
	r.MustRegister(Model{
		Config: PassConfig(),
		Factory: func(ctx Context, ports Ports) (Unit, error) {
			return NewPass(ctx, ports)
		},
	})
	return r
}

// Register adds a model under its config slug.
func (r *Registry) Register(m Model) error {
	if m.Config.Slug == "" {
		return errors.New("empty module slug")
	}

	if m.Factory == nil {
		return errors.New("nil factory")
	}

	key := strings.ToLower(m.Config.Slug)
	if _, exists := r.models[key]; exists {
		return fmt.Errorf("%w: %s", errDuplicateModule, m.Config.Slug)
	}

	r.models[key] = m

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(m Model) {
	if err := r.Register(m); err != nil {
		panic("rack registry: " + err.Error())
	}
}

// Lookup returns the model for slug.
func (r *Registry) Lookup(slug string) (Model, bool) {
	m, ok := r.models[strings.ToLower(slug)]
	return m, ok
}

// Slugs returns the registered slugs in sorted order.
func (r *Registry) Slugs() []string {
	out := make([]string, 0, len(r.models))
	for _, m := range r.models {
		out = append(out, m.Config.Slug)
	}
	sort.Strings(out)
	return out
}

// New builds a fresh panel for slug and a module bound to it.
func (r *Registry) New(slug string, ctx Context) (Unit, *Panel, error) {
	m, ok := r.Lookup(slug)
	if !ok {
		return nil, nil, fmt.Errorf("rack: %w: %s", ErrUnknownModule, slug)
	}

	panel := NewPanel(m.Config)

	unit, err := m.Factory(ctx, panel)
	if err != nil {
		return nil, nil, err
	}

	return unit, panel, nil
}
