// Package units defines the supported measurement units, the name registry used to look them up
// and the conversion arithmetic between units of the same family.
package units

import "strings"

// Family groups units that are mutually convertible.
type Family int

const (
	// Length units share the meter as base unit.
	Length Family = iota
	// Weight units share the gram as base unit.
	Weight
	// Temperature units share the Kelvin as base unit.
	Temperature
)

// Families lists every family in display order.
var Families = []Family{Length, Weight, Temperature}

// String returns the family name as shown to users.
func (f Family) String() string {
	switch f {
	case Length:
		return "Length"
	case Weight:
		return "Weight"
	case Temperature:
		return "Temperature"
	default:
		return "Unknown"
	}
}

// AllowsNegative reports whether quantities of this family may be below zero.
func (f Family) AllowsNegative() bool {
	return f == Temperature
}

// ParseFamily resolves a family from its name, ignoring case.
func ParseFamily(name string) (Family, bool) {
	for _, f := range Families {
		if strings.EqualFold(f.String(), name) {
			return f, true
		}
	}
	return 0, false
}
