package units

// Convert transforms quantity from source to dest through the family base unit.
// Units of different families cannot be converted, and Length or Weight quantities
// must not be negative.
func Convert(quantity float64, source, dest *Unit) (float64, error) {
	if source.Family() != dest.Family() {
		return 0, &IncompatibleUnitsError{Source: source, Dest: dest}
	}
	if quantity < 0 && !dest.Family().AllowsNegative() {
		return 0, &NegativeQuantityError{Family: dest.Family()}
	}
	return dest.FromBase(source.ToBase(quantity)), nil
}
