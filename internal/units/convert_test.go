package units

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Identity(t *testing.T) {
	for _, u := range All() {
		t.Run(u.Name(), func(t *testing.T) {
			quantities := []float64{0, 1, 42, 1234.5}
			if u.Family() == Temperature {
				quantities = append(quantities, -40, -500)
			}
			for _, x := range quantities {
				got, err := Convert(x, u, u)
				require.NoError(t, err)
				assert.InDelta(t, x, got, 1e-9*(1+abs(x)))
			}
		})
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	for _, a := range All() {
		for _, b := range All() {
			if a.Family() != b.Family() {
				continue
			}
			quantities := []float64{0, 0.5, 3, 987.25}
			if a.Family() == Temperature {
				quantities = append(quantities, -273.15, -40, -1000)
			}
			for _, x := range quantities {
				there, err := Convert(x, a, b)
				require.NoError(t, err)
				back, err := Convert(there, b, a)
				require.NoError(t, err)
				assert.InDelta(t, x, back, 1e-9*(1+abs(x)), "%s -> %s -> %s, x=%v", a.Name(), b.Name(), a.Name(), x)
			}
		}
	}
}

func TestConvert_IncompatibleFamilies(t *testing.T) {
	for _, a := range All() {
		for _, b := range All() {
			if a.Family() == b.Family() {
				continue
			}
			for _, x := range []float64{-5, 0, 5} {
				_, err := Convert(x, a, b)
				var inc *IncompatibleUnitsError
				require.True(t, errors.As(err, &inc), "%s -> %s", a.Name(), b.Name())
				assert.Same(t, a, inc.Source)
				assert.Same(t, b, inc.Dest)
			}
		}
	}
}

func TestConvert_NegativeQuantity(t *testing.T) {
	_, err := Convert(-1, Meter, Foot)
	var neg *NegativeQuantityError
	require.True(t, errors.As(err, &neg))
	assert.Equal(t, Length, neg.Family)

	_, err = Convert(-0.001, Pound, Gram)
	require.True(t, errors.As(err, &neg))
	assert.Equal(t, Weight, neg.Family)
}

func TestConvert_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		source   *Unit
		dest     *Unit
		expected float64
	}{
		{"km to mi", 5, Kilometer, Mile, 5000 / 1609.35},
		{"c to f boiling", 100, Celsius, Fahrenheit, 212},
		{"c to f crossing", -40, Celsius, Fahrenheit, -40},
		{"f to c freezing", 32, Fahrenheit, Celsius, 0},
		{"c to k", 0, Celsius, Kelvin, 273.15},
		{"ft to in", 1, Foot, Inch, 12},
		{"yd to ft", 1, Yard, Foot, 3},
		{"kg to lb", 1, Kilogram, Pound, 1000 / 453.592},
		{"lb to oz", 1, Pound, Ounce, 453.592 / 28.3495},
		{"mg to g", 1500, Milligram, Gram, 1.5},
		{"cm to mm", 2, Centimeter, Millimeter, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.quantity, tt.source, tt.dest)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
