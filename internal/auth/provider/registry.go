package provider

import "fmt"

// Registry holds the providers that were actually configured at
// startup. A provider whose credentials are absent from the
// environment is never registered, so its routes answer "not
// available" instead of failing the process.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry registers the given providers by name. Names must be
// unique.
func NewRegistry(list ...Provider) *Registry {
	m := make(map[string]Provider)
	for _, p := range list {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

// Get returns the provider by name or an error if not registered.
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("oauth provider %s is not available", name)
	}
	return p, nil
}
