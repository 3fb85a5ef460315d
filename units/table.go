// Package units provides SI quantities with a fixed unit set per family
// (temperature, resistance, voltage, current) and affine conversion between
// them.
//
// Every family has a base unit with scale 1 and offset 0. Any other unit u
// maps onto the base as base = Scale(u)*value + Offset(u). Bases are K, kΩ,
// mV and mA; the milli/kilo bases keep the values met on small signal
// circuits close to unity.
package units

import (
	"sort"

	"sensorkit-go/errcode"
)

// Unit is a unit symbol such as "K", "kΩ" or "mV".
type Unit string

// Temperature units.
const (
	Kelvin     Unit = "K"
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
)

// Resistance units.
const (
	Kiloohm  Unit = "kΩ"
	Ohm      Unit = "Ω"
	Milliohm Unit = "mΩ"
)

// Voltage units.
const (
	Millivolt Unit = "mV"
	Volt      Unit = "V"
)

// Current units.
const (
	Milliampere Unit = "mA"
	Ampere      Unit = "A"
)

// Family identifies one of the supported quantity kinds.
type Family uint8

const (
	FamilyTemperature Family = iota + 1
	FamilyResistance
	FamilyVoltage
	FamilyCurrent
)

func (f Family) String() string {
	switch f {
	case FamilyTemperature:
		return "temperature"
	case FamilyResistance:
		return "resistance"
	case FamilyVoltage:
		return "voltage"
	case FamilyCurrent:
		return "current"
	}
	return "unknown"
}

// DefaultUnit is the family's base unit; it is used whenever a unit is left empty.
func (f Family) DefaultUnit() Unit {
	if t := Lookup(f); t != nil {
		return t.base
	}
	return ""
}

// Affine maps a value onto the family base unit: base = Scale*v + Offset.
type Affine struct {
	Scale  float64
	Offset float64
}

func (a Affine) toBase(v float64) float64   { return a.Scale*v + a.Offset }
func (a Affine) fromBase(b float64) float64 { return (b - a.Offset) / a.Scale }

// Table is the immutable unit table of one family.
type Table struct {
	family  Family
	base    Unit
	siUnit  Unit
	entries map[Unit]Affine
}

func newTable(f Family, si Unit, entries map[Unit]Affine) *Table {
	t := &Table{family: f, siUnit: si, entries: entries}
	for u, a := range entries {
		if a.Scale == 1 && a.Offset == 0 {
			if t.base != "" {
				panic("units: " + f.String() + " table has two base units")
			}
			t.base = u
		}
	}
	if t.base == "" {
		panic("units: " + f.String() + " table has no base unit")
	}
	if _, ok := entries[si]; !ok {
		panic("units: " + f.String() + " table lacks SI unit " + string(si))
	}
	return t
}

var (
	temperatureTable = newTable(FamilyTemperature, Kelvin, map[Unit]Affine{
		Kelvin:     {1, 0},
		Celsius:    {1, 273.15},
		Fahrenheit: {5.0 / 9.0, 273.15 - 32*5.0/9.0},
	})
	resistanceTable = newTable(FamilyResistance, Ohm, map[Unit]Affine{
		Kiloohm:  {1, 0},
		Ohm:      {1e-3, 0},
		Milliohm: {1e-6, 0},
	})
	voltageTable = newTable(FamilyVoltage, Volt, map[Unit]Affine{
		Millivolt: {1, 0},
		Volt:      {1e3, 0},
	})
	currentTable = newTable(FamilyCurrent, Ampere, map[Unit]Affine{
		Milliampere: {1, 0},
		Ampere:      {1e3, 0},
	})
)

// Lookup returns the unit table for f, or nil for an unknown family.
func Lookup(f Family) *Table {
	switch f {
	case FamilyTemperature:
		return temperatureTable
	case FamilyResistance:
		return resistanceTable
	case FamilyVoltage:
		return voltageTable
	case FamilyCurrent:
		return currentTable
	}
	return nil
}

// FamilyOf returns the family that owns u. The empty unit belongs to none.
func FamilyOf(u Unit) (Family, bool) {
	for f := FamilyTemperature; f <= FamilyCurrent; f++ {
		if Lookup(f).Has(u) {
			return f, true
		}
	}
	return 0, false
}

func (t *Table) Family() Family { return t.family }

// Base is the unit with scale 1 and offset 0.
func (t *Table) Base() Unit { return t.base }

// SIUnit is the coherent SI unit of the family (K, Ω, V, A).
func (t *Table) SIUnit() Unit { return t.siUnit }

// Has reports whether u belongs to the family.
func (t *Table) Has(u Unit) bool {
	_, ok := t.entries[u]
	return ok
}

// Validate returns an UnsupportedUnit error when u is not part of the
// family. The empty unit is valid and stands for the base.
func (t *Table) Validate(u Unit) error {
	_, _, err := t.resolve("units.Validate", u)
	return err
}

// Affine returns the transform registered for u.
func (t *Table) Affine(u Unit) (Affine, bool) {
	a, ok := t.entries[u]
	return a, ok
}

// Units returns the family's unit symbols in sorted order.
func (t *Table) Units() []Unit {
	out := make([]Unit, 0, len(t.entries))
	for u := range t.entries {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// resolve maps an empty unit to the base and rejects unknown units.
func (t *Table) resolve(op string, u Unit) (Unit, Affine, error) {
	if u == "" {
		u = t.base
	}
	a, ok := t.entries[u]
	if !ok {
		return "", Affine{}, errcode.New(errcode.UnsupportedUnit, op,
			t.family.String()+" has no unit "+quote(u))
	}
	return u, a, nil
}

// Convert re-expresses value from one unit to another.
// Both units are validated before any arithmetic; from == to returns value
// unchanged.
func (t *Table) Convert(value float64, from, to Unit) (float64, error) {
	const op = "units.Convert"
	from, af, err := t.resolve(op, from)
	if err != nil {
		return 0, err
	}
	to, at, err := t.resolve(op, to)
	if err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}
	return at.fromBase(af.toBase(value)), nil
}

// Convert re-expresses value within family f.
func Convert(f Family, value float64, from, to Unit) (float64, error) {
	t := Lookup(f)
	if t == nil {
		return 0, errcode.New(errcode.InvalidParams, "units.Convert", "unknown family")
	}
	return t.Convert(value, from, to)
}

func quote(u Unit) string { return `"` + string(u) + `"` }
