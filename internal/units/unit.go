package units

// Law maps a quantity between a unit and its family base unit.
type Law func(quantity float64) float64

// Unit is an immutable description of one supported unit.
type Unit struct {
	name     string
	family   Family
	toBase   Law
	fromBase Law
	singular string
	plural   string
	aliases  []string
}

// linear builds the law pair for a unit that is a plain multiple of its base unit.
func linear(factor float64) (Law, Law) {
	return func(x float64) float64 { return x * factor },
		func(x float64) float64 { return x / factor }
}

func newUnit(name string, family Family, toBase, fromBase Law, singular, plural string, aliases ...string) *Unit {
	return &Unit{
		name:     name,
		family:   family,
		toBase:   toBase,
		fromBase: fromBase,
		singular: singular,
		plural:   plural,
		aliases:  aliases,
	}
}

func newLinearUnit(name string, family Family, factor float64, singular, plural string, aliases ...string) *Unit {
	toBase, fromBase := linear(factor)
	return newUnit(name, family, toBase, fromBase, singular, plural, aliases...)
}

// Name returns the catalog identifier of the unit.
func (u *Unit) Name() string { return u.name }

// Family returns the family the unit belongs to.
func (u *Unit) Family() Family { return u.family }

// Singular returns the display form used for exactly one of the unit.
func (u *Unit) Singular() string { return u.singular }

// Plural returns the display form used for any quantity other than one.
func (u *Unit) Plural() string { return u.plural }

// Aliases returns a copy of the additional names the unit is recognized by.
func (u *Unit) Aliases() []string {
	return append([]string(nil), u.aliases...)
}

// Names returns the singular, plural and alias names of the unit, in that order.
func (u *Unit) Names() []string {
	names := make([]string, 0, len(u.aliases)+2)
	names = append(names, u.singular, u.plural)
	return append(names, u.aliases...)
}

// ToBase converts a quantity in this unit to the family base unit.
func (u *Unit) ToBase(quantity float64) float64 { return u.toBase(quantity) }

// FromBase converts a quantity in the family base unit to this unit.
func (u *Unit) FromBase(quantity float64) float64 { return u.fromBase(quantity) }

// Display returns the unit name matching the quantity: singular for exactly 1, plural otherwise.
func (u *Unit) Display(quantity float64) string {
	if quantity == 1.0 {
		return u.singular
	}
	return u.plural
}

// Representative returns the neutral display of the unit used in messages without a quantity.
func (u *Unit) Representative() string {
	return u.Display(2)
}

// String implements fmt.Stringer.
func (u *Unit) String() string {
	return u.plural
}
