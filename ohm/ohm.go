// Package ohm derives the missing one of resistance, current and voltage
// from the other two (V = R·I).
//
// All arithmetic runs in Ω, A and V. Results are returned in the requested
// unit, or in the family default (kΩ, mA, mV) when the unit is empty.
package ohm

import (
	"sensorkit-go/errcode"
	"sensorkit-go/units"
)

// Knowns holds the inputs of Solve; exactly one field must be nil.
type Knowns struct {
	R *units.Resistance
	I *units.Current
	V *units.Voltage
}

func (k Knowns) missing() int {
	n := 0
	if k.R == nil {
		n++
	}
	if k.I == nil {
		n++
	}
	if k.V == nil {
		n++
	}
	return n
}

// Solve returns the quantity absent from k, expressed in unit (or the
// family default). The concrete type is units.Resistance, units.Current
// or units.Voltage.
func Solve(k Knowns, unit units.Unit) (units.Electrical, error) {
	const op = "ohm.Solve"
	if n := k.missing(); n != 1 {
		return nil, errcode.New(errcode.ArgumentCount, op, "need exactly two of R, I, V")
	}
	var (
		out units.Electrical
		err error
	)
	switch {
	case k.R == nil:
		out, err = resistance(op, *k.V, *k.I, unit)
	case k.I == nil:
		out, err = current(op, *k.V, *k.R, unit)
	default:
		out, err = voltage(op, *k.R, *k.I, unit)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Voltage returns R·I. The operands may come in either order; any pairing
// other than resistance with current fails with TypeMismatch.
func Voltage(a, b units.Electrical, unit units.Unit) (units.Voltage, error) {
	const op = "ohm.Voltage"
	r, i, ok := pairRI(a, b)
	if !ok {
		return units.Voltage{}, mismatch(op, a, b)
	}
	return voltage(op, r, i, unit)
}

// Current returns V/R for a voltage and a resistance in either order.
func Current(a, b units.Electrical, unit units.Unit) (units.Current, error) {
	const op = "ohm.Current"
	v, r, ok := pairVR(a, b)
	if !ok {
		return units.Current{}, mismatch(op, a, b)
	}
	return current(op, v, r, unit)
}

// Resistance returns V/I for a voltage and a current in either order.
func Resistance(a, b units.Electrical, unit units.Unit) (units.Resistance, error) {
	const op = "ohm.Resistance"
	v, i, ok := pairVI(a, b)
	if !ok {
		return units.Resistance{}, mismatch(op, a, b)
	}
	return resistance(op, v, i, unit)
}

func voltage(op string, r units.Resistance, i units.Current, unit units.Unit) (units.Voltage, error) {
	v, err := units.NewVoltage(r.SI()*i.SI(), units.Volt)
	if err != nil {
		return units.Voltage{}, err
	}
	return v.As(defaultUnit(unit, units.FamilyVoltage))
}

func current(op string, v units.Voltage, r units.Resistance, unit units.Unit) (units.Current, error) {
	if r.SI() == 0 {
		return units.Current{}, errcode.New(errcode.Domain, op, "zero resistance")
	}
	i, err := units.NewCurrent(v.SI()/r.SI(), units.Ampere)
	if err != nil {
		return units.Current{}, err
	}
	return i.As(defaultUnit(unit, units.FamilyCurrent))
}

func resistance(op string, v units.Voltage, i units.Current, unit units.Unit) (units.Resistance, error) {
	if i.SI() == 0 {
		return units.Resistance{}, errcode.New(errcode.Domain, op, "zero current")
	}
	r, err := units.NewResistance(v.SI()/i.SI(), units.Ohm)
	if err != nil {
		return units.Resistance{}, err
	}
	return r.As(defaultUnit(unit, units.FamilyResistance))
}

func defaultUnit(u units.Unit, f units.Family) units.Unit {
	if u == "" {
		return f.DefaultUnit()
	}
	return u
}

func pairRI(a, b units.Electrical) (units.Resistance, units.Current, bool) {
	if r, ok := a.(units.Resistance); ok {
		i, ok := b.(units.Current)
		return r, i, ok
	}
	if i, ok := a.(units.Current); ok {
		r, ok := b.(units.Resistance)
		return r, i, ok
	}
	return units.Resistance{}, units.Current{}, false
}

func pairVR(a, b units.Electrical) (units.Voltage, units.Resistance, bool) {
	if v, ok := a.(units.Voltage); ok {
		r, ok := b.(units.Resistance)
		return v, r, ok
	}
	if r, ok := a.(units.Resistance); ok {
		v, ok := b.(units.Voltage)
		return v, r, ok
	}
	return units.Voltage{}, units.Resistance{}, false
}

func pairVI(a, b units.Electrical) (units.Voltage, units.Current, bool) {
	if v, ok := a.(units.Voltage); ok {
		i, ok := b.(units.Current)
		return v, i, ok
	}
	if i, ok := a.(units.Current); ok {
		v, ok := b.(units.Voltage)
		return v, i, ok
	}
	return units.Voltage{}, units.Current{}, false
}

func mismatch(op string, a, b units.Electrical) error {
	return errcode.New(errcode.TypeMismatch, op, familyOf(a)+" with "+familyOf(b))
}

func familyOf(e units.Electrical) string {
	if e == nil {
		return "nil"
	}
	return e.Family().String()
}
