package units

import "fmt"

// UnknownUnitError is returned when a name matches no registered unit.
type UnknownUnitError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Name)
}

// IncompatibleUnitsError is returned when converting between units of different families.
type IncompatibleUnitsError struct {
	Source *Unit
	Dest   *Unit
}

// Error implements the error interface.
func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("cannot convert %s (%s) to %s (%s)",
		e.Source.Representative(), e.Source.Family(), e.Dest.Representative(), e.Dest.Family())
}

// NegativeQuantityError is returned when a Length or Weight quantity is below zero.
type NegativeQuantityError struct {
	Family Family
}

// Error implements the error interface.
func (e *NegativeQuantityError) Error() string {
	return fmt.Sprintf("%s shouldn't be negative", e.Family)
}

// DuplicateNameError is returned when two units register the same name.
type DuplicateNameError struct {
	Name     string
	Existing *Unit
	Unit     *Unit
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("name %q registered by both %s and %s", e.Name, e.Existing.Name(), e.Unit.Name())
}
