package units

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestFamily_String(t *testing.T) {
	assert.Equal(t, "Length", Length.String())
	assert.Equal(t, "Weight", Weight.String())
	assert.Equal(t, "Temperature", Temperature.String())
	assert.Equal(t, "Unknown", Family(42).String())
}

func TestParseFamily(t *testing.T) {
	f, ok := ParseFamily("weight")
	require.True(t, ok)
	assert.Equal(t, Weight, f)

	f, ok = ParseFamily("TEMPERATURE")
	require.True(t, ok)
	assert.Equal(t, Temperature, f)

	_, ok = ParseFamily("volume")
	assert.False(t, ok)
}

func TestUnit_Display(t *testing.T) {
	for _, u := range All() {
		t.Run(u.Name(), func(t *testing.T) {
			assert.Equal(t, u.Singular(), u.Display(1.0))
			assert.Equal(t, u.Plural(), u.Display(2.0))
			assert.Equal(t, u.Plural(), u.Display(0.0))
			assert.Equal(t, u.Plural(), u.Display(1.5))
			assert.Equal(t, u.Plural(), u.Representative())
		})
	}
}

func TestUnit_InverseLaws(t *testing.T) {
	quantities := []float64{0, 1, 2.5, 100, 12345.678, 1e-6}

	for _, u := range All() {
		t.Run(u.Name(), func(t *testing.T) {
			for _, x := range quantities {
				assert.InDelta(t, x, u.FromBase(u.ToBase(x)), tolerance*(1+x), "x=%v", x)
			}
		})
	}
}

func TestUnit_Names(t *testing.T) {
	assert.Equal(t, []string{"kilometer", "kilometers", "km"}, Kilometer.Names())
	assert.Equal(t, []string{"degree Celsius", "degrees Celsius", "dc", "c", "celsius"}, Celsius.Names())

	aliases := Fahrenheit.Aliases()
	aliases[0] = "mutated"
	assert.Equal(t, "df", Fahrenheit.Aliases()[0])
}

func TestCatalog(t *testing.T) {
	all := All()
	require.Len(t, all, 16)

	counts := map[Family]int{}
	for _, u := range all {
		counts[u.Family()]++
	}
	assert.Equal(t, 8, counts[Length])
	assert.Equal(t, 5, counts[Weight])
	assert.Equal(t, 3, counts[Temperature])

	all[0] = nil
	assert.Same(t, Meter, All()[0])
}

func TestBaseUnits(t *testing.T) {
	assert.Equal(t, 1.0, Meter.ToBase(1))
	assert.Equal(t, 1.0, Gram.ToBase(1))
	assert.Equal(t, 1.0, Kelvin.ToBase(1))
	assert.InDelta(t, 273.15, Celsius.ToBase(0), tolerance)
	assert.InDelta(t, 255.3722222222, Fahrenheit.ToBase(0), 1e-9)
}

func TestIsDegreePrefix(t *testing.T) {
	assert.True(t, IsDegreePrefix("degree"))
	assert.True(t, IsDegreePrefix("Degrees"))
	assert.False(t, IsDegreePrefix("deg"))
	assert.False(t, IsDegreePrefix("celsius"))
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		precision int
		expected  string
	}{
		{"whole number", 5, DefaultPrecision, "5.0"},
		{"zero", 0, DefaultPrecision, "0.0"},
		{"fraction", 3.106844378165098, DefaultPrecision, "3.10684437817"},
		{"rounding noise", 211.99999999999994, DefaultPrecision, "212.0"},
		{"negative", -40, DefaultPrecision, "-40.0"},
		{"shortest", 211.99999999999994, -1, "211.99999999999994"},
		{"shortest whole", 1000, -1, "1000.0"},
		{"large", 5e6, DefaultPrecision, "5000000.0"},
		{"exponent", 1.5e-9, DefaultPrecision, "1.5e-09"},
		{"negative zero", math.Copysign(0, -1), DefaultPrecision, "0.0"},
		{"negative zero shortest", math.Copysign(0, -1), -1, "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatQuantity(tt.quantity, tt.precision))
		})
	}
}

func TestErrors_Messages(t *testing.T) {
	err := &NegativeQuantityError{Family: Weight}
	assert.Equal(t, "Weight shouldn't be negative", err.Error())

	inc := &IncompatibleUnitsError{Source: Kilometer, Dest: Kilogram}
	assert.True(t, strings.Contains(inc.Error(), "kilometers"))
	assert.True(t, strings.Contains(inc.Error(), "kilograms"))

	unk := &UnknownUnitError{Name: "parsec"}
	assert.Equal(t, `unknown unit "parsec"`, unk.Error())
}
