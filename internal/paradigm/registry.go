package paradigm

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/paradigm/internal/domain"
)

// Registry resolves paradigms by name, keeping registration order.
type Registry struct {
	order  []string
	byName map[string]Paradigm
}

// NewRegistry builds a registry from ps. Later entries with a duplicate name
// replace earlier ones but keep their original position.
func NewRegistry(ps ...Paradigm) *Registry {
	r := &Registry{byName: make(map[string]Paradigm, len(ps))}
	for _, p := range ps {
		if _, ok := r.byName[p.Name()]; !ok {
			r.order = append(r.order, p.Name())
		}
		r.byName[p.Name()] = p
	}
	return r
}

// Default returns the registry with the three built-in paradigms.
func Default() *Registry {
	return NewRegistry(Procedural{}, Object{}, Functional{})
}

func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) All() []Paradigm {
	out := make([]Paradigm, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.byName[n])
	}
	return out
}

func (r *Registry) Lookup(name string) (Paradigm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if p, ok := r.byName[key]; ok {
		return p, nil
	}
	return nil, &domain.OpError{
		Op:   "paradigm.lookup",
		Kind: domain.KindNotFound,
		Err: fmt.Errorf("unknown paradigm %q (expected %s): %w",
			name, strings.Join(r.order, "|"), domain.ErrNotFound),
	}
}
