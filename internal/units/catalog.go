package units

import "strings"

// Length units.
var (
	Meter      = newLinearUnit("meter", Length, 1, "meter", "meters", "m")
	Kilometer  = newLinearUnit("kilometer", Length, 1000, "kilometer", "kilometers", "km")
	Centimeter = newLinearUnit("centimeter", Length, 0.01, "centimeter", "centimeters", "cm")
	Millimeter = newLinearUnit("millimeter", Length, 0.001, "millimeter", "millimeters", "mm")
	Mile       = newLinearUnit("mile", Length, 1609.35, "mile", "miles", "mi")
	Yard       = newLinearUnit("yard", Length, 0.9144, "yard", "yards", "yd")
	Foot       = newLinearUnit("foot", Length, 0.3048, "foot", "feet", "ft")
	Inch       = newLinearUnit("inch", Length, 0.0254, "inch", "inches", "in")
)

// Weight units.
var (
	Gram      = newLinearUnit("gram", Weight, 1, "gram", "grams", "g")
	Kilogram  = newLinearUnit("kilogram", Weight, 1000, "kilogram", "kilograms", "kg")
	Milligram = newLinearUnit("milligram", Weight, 0.001, "milligram", "milligrams", "mg")
	Pound     = newLinearUnit("pound", Weight, 453.592, "pound", "pounds", "lb")
	Ounce     = newLinearUnit("ounce", Weight, 28.3495, "ounce", "ounces", "oz")
)

// Temperature units. Celsius and Fahrenheit are affine in Kelvin.
var (
	Kelvin = newLinearUnit("kelvin", Temperature, 1, "Kelvin", "Kelvins", "k")

	Celsius = newUnit("celsius", Temperature,
		func(x float64) float64 { return x + 273.15 },
		func(x float64) float64 { return x - 273.15 },
		"degree Celsius", "degrees Celsius", "dc", "c", "celsius")

	Fahrenheit = newUnit("fahrenheit", Temperature,
		func(x float64) float64 { return (x + 459.67) * 5 / 9 },
		func(x float64) float64 { return x*9/5 - 459.67 },
		"degree Fahrenheit", "degrees Fahrenheit", "df", "f", "fahrenheit")
)

var catalog = []*Unit{
	Meter, Kilometer, Centimeter, Millimeter, Mile, Yard, Foot, Inch,
	Gram, Kilogram, Milligram, Pound, Ounce,
	Kelvin, Celsius, Fahrenheit,
}

// DegreePrefixes are the tokens that start a two-word unit name such as "degrees Celsius".
var DegreePrefixes = []string{"degree", "degrees"}

// All returns every supported unit in catalog order.
func All() []*Unit {
	return append([]*Unit(nil), catalog...)
}

// IsDegreePrefix reports whether token starts a two-word unit name.
func IsDegreePrefix(token string) bool {
	for _, p := range DegreePrefixes {
		if strings.EqualFold(p, token) {
			return true
		}
	}
	return false
}
