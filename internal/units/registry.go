package units

import (
	"sort"
	"strings"
)

// Registry maps lowercase unit names to their units. It is read-only once built.
type Registry struct {
	units  []*Unit
	byName map[string]*Unit
}

var defaultRegistry = mustNewRegistry(catalog...)

// Default returns the registry built from the full catalog.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry indexes every singular, plural and alias name of the given units.
// A name claimed by two different units is rejected.
func NewRegistry(units ...*Unit) (*Registry, error) {
	r := &Registry{
		units:  append([]*Unit(nil), units...),
		byName: make(map[string]*Unit),
	}

	for _, u := range units {
		for _, name := range u.Names() {
			key := strings.ToLower(name)
			if existing, ok := r.byName[key]; ok && existing != u {
				return nil, &DuplicateNameError{Name: key, Existing: existing, Unit: u}
			}
			r.byName[key] = u
		}
	}

	return r, nil
}

func mustNewRegistry(units ...*Unit) *Registry {
	r, err := NewRegistry(units...)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve looks up a unit by name, ignoring case.
func (r *Registry) Resolve(name string) (*Unit, bool) {
	u, ok := r.byName[strings.ToLower(name)]
	return u, ok
}

// MustResolve is like Resolve but returns an UnknownUnitError on a miss.
func (r *Registry) MustResolve(name string) (*Unit, error) {
	u, ok := r.Resolve(name)
	if !ok {
		return nil, &UnknownUnitError{Name: name}
	}
	return u, nil
}

// Units returns the registered units in registration order.
func (r *Registry) Units() []*Unit {
	return append([]*Unit(nil), r.units...)
}

// ByFamily returns the registered units of one family in registration order.
func (r *Registry) ByFamily(f Family) []*Unit {
	var out []*Unit
	for _, u := range r.units {
		if u.Family() == f {
			out = append(out, u)
		}
	}
	return out
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return len(r.byName)
}
