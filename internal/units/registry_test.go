package units

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ResolveEveryName(t *testing.T) {
	r := Default()

	for _, u := range All() {
		for _, name := range u.Names() {
			for _, variant := range []string{name, strings.ToUpper(name), strings.ToLower(name)} {
				got, ok := r.Resolve(variant)
				require.True(t, ok, "name %q", variant)
				assert.Same(t, u, got, "name %q", variant)
			}
		}
	}
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := Default()

	km, ok := r.Resolve("KM")
	require.True(t, ok)
	kilometer, _ := r.Resolve("kilometer")
	kilometers, _ := r.Resolve("Kilometers")

	assert.Same(t, Kilometer, km)
	assert.Same(t, km, kilometer)
	assert.Same(t, km, kilometers)
}

func TestRegistry_TwoWordNames(t *testing.T) {
	r := Default()

	u, ok := r.Resolve("degrees Celsius")
	require.True(t, ok)
	assert.Same(t, Celsius, u)

	u, ok = r.Resolve("DEGREE fahrenheit")
	require.True(t, ok)
	assert.Same(t, Fahrenheit, u)
}

func TestRegistry_Miss(t *testing.T) {
	r := Default()

	_, ok := r.Resolve("parsec")
	assert.False(t, ok)

	_, err := r.MustResolve("parsec")
	var unknown *UnknownUnitError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "parsec", unknown.Name)
}

func TestRegistry_Listing(t *testing.T) {
	r := Default()

	assert.Equal(t, All(), r.Units())
	assert.Equal(t, []*Unit{Kelvin, Celsius, Fahrenheit}, r.ByFamily(Temperature))
	assert.Len(t, r.ByFamily(Weight), 5)

	names := r.Names()
	assert.Equal(t, r.Len(), len(names))
	assert.Contains(t, names, "degrees fahrenheit")
	assert.IsNonDecreasing(t, names)
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	clash := newLinearUnit("megameter", Length, 1e6, "megameter", "megameters", "mm")

	r, err := NewRegistry(Meter, Millimeter, clash)
	assert.Nil(t, r)

	var dup *DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "mm", dup.Name)
	assert.Same(t, Millimeter, dup.Existing)
	assert.Same(t, clash, dup.Unit)
}

func TestNewRegistry_CaseOnlyDuplicate(t *testing.T) {
	shouty := newLinearUnit("shouty", Length, 2, "METER", "shouties")

	_, err := NewRegistry(Meter, shouty)
	var dup *DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "meter", dup.Name)
}
