package units

import (
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// KeyPlaces is the number of decimal places (in base units) kept by Key.
// Two quantities are Equal when their keys match, which bounds the
// tolerance at 1e-6 base units.
const KeyPlaces = 6

// quantity is the value/unit pair shared by every family. The zero unit
// stands for the family base unit.
type quantity struct {
	value float64
	unit  Unit
}

func (q quantity) Value() float64 { return q.value }

func (q quantity) unitIn(t *Table) Unit {
	if q.unit == "" {
		return t.base
	}
	return q.unit
}

func (q quantity) base(t *Table) float64 {
	return t.entries[q.unitIn(t)].toBase(q.value)
}

func (q quantity) as(t *Table, u Unit) (quantity, error) {
	v, err := t.Convert(q.value, q.unitIn(t), u)
	if err != nil {
		return quantity{}, err
	}
	if u == "" {
		u = t.base
	}
	return quantity{value: v, unit: u}, nil
}

func (q quantity) si(t *Table) float64 {
	v, _ := t.Convert(q.value, q.unitIn(t), t.siUnit)
	return v
}

func (q quantity) key(t *Table) float64 {
	return scalar.Round(q.base(t), KeyPlaces)
}

func (q quantity) format(t *Table) string {
	return formatValue(q.value) + " " + string(q.unitIn(t))
}

func formatValue(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }

func newQuantity(t *Table, op string, v float64, u Unit) (quantity, error) {
	u, _, err := t.resolve(op, u)
	if err != nil {
		return quantity{}, err
	}
	return quantity{value: v, unit: u}, nil
}

// ---------------------------------------------------------------------------
// Temperature
// ---------------------------------------------------------------------------

// Temperature is a temperature in K, °C or °F.
type Temperature struct{ q quantity }

// NewTemperature returns v expressed in u. An empty unit means kelvin.
func NewTemperature(v float64, u Unit) (Temperature, error) {
	q, err := newQuantity(temperatureTable, "units.NewTemperature", v, u)
	return Temperature{q}, err
}

// MustTemperature is NewTemperature that panics on an unknown unit.
func MustTemperature(v float64, u Unit) Temperature {
	t, err := NewTemperature(v, u)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Temperature) Family() Family { return FamilyTemperature }
func (t Temperature) Value() float64 { return t.q.value }
func (t Temperature) Unit() Unit     { return t.q.unitIn(temperatureTable) }

// Base is the value in kelvin.
func (t Temperature) Base() float64 { return t.q.base(temperatureTable) }

// SI is the value in kelvin.
func (t Temperature) SI() float64 { return t.q.si(temperatureTable) }

// As returns the same temperature expressed in u.
func (t Temperature) As(u Unit) (Temperature, error) {
	q, err := t.q.as(temperatureTable, u)
	return Temperature{q}, err
}

// In returns the numeric value in u.
func (t Temperature) In(u Unit) (float64, error) {
	return temperatureTable.Convert(t.q.value, t.Unit(), u)
}

func (t Temperature) Key() float64             { return t.q.key(temperatureTable) }
func (t Temperature) Equal(o Temperature) bool { return t.Key() == o.Key() }

// String renders °C and °F with a degree mark ("25°C"); kelvin as "298.15 K".
func (t Temperature) String() string {
	u := t.Unit()
	if u == Kelvin {
		return t.q.format(temperatureTable)
	}
	return formatValue(t.q.value) + "°" + string(u)
}

// ---------------------------------------------------------------------------
// Resistance
// ---------------------------------------------------------------------------

// Resistance is a resistance in kΩ, Ω or mΩ.
type Resistance struct{ q quantity }

// NewResistance returns v expressed in u. An empty unit means kΩ.
func NewResistance(v float64, u Unit) (Resistance, error) {
	q, err := newQuantity(resistanceTable, "units.NewResistance", v, u)
	return Resistance{q}, err
}

// MustResistance is NewResistance that panics on an unknown unit.
func MustResistance(v float64, u Unit) Resistance {
	r, err := NewResistance(v, u)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Resistance) Family() Family { return FamilyResistance }
func (r Resistance) Value() float64 { return r.q.value }
func (r Resistance) Unit() Unit     { return r.q.unitIn(resistanceTable) }

// Base is the value in kΩ.
func (r Resistance) Base() float64 { return r.q.base(resistanceTable) }

// SI is the value in ohms.
func (r Resistance) SI() float64 { return r.q.si(resistanceTable) }

func (r Resistance) As(u Unit) (Resistance, error) {
	q, err := r.q.as(resistanceTable, u)
	return Resistance{q}, err
}

func (r Resistance) In(u Unit) (float64, error) {
	return resistanceTable.Convert(r.q.value, r.Unit(), u)
}

func (r Resistance) Key() float64            { return r.q.key(resistanceTable) }
func (r Resistance) Equal(o Resistance) bool { return r.Key() == o.Key() }
func (r Resistance) String() string          { return r.q.format(resistanceTable) }
func (Resistance) electrical()               {}

// ---------------------------------------------------------------------------
// Voltage
// ---------------------------------------------------------------------------

// Voltage is a voltage in mV or V.
type Voltage struct{ q quantity }

// NewVoltage returns v expressed in u. An empty unit means mV.
func NewVoltage(v float64, u Unit) (Voltage, error) {
	q, err := newQuantity(voltageTable, "units.NewVoltage", v, u)
	return Voltage{q}, err
}

// MustVoltage is NewVoltage that panics on an unknown unit.
func MustVoltage(v float64, u Unit) Voltage {
	x, err := NewVoltage(v, u)
	if err != nil {
		panic(err)
	}
	return x
}

func (v Voltage) Family() Family { return FamilyVoltage }
func (v Voltage) Value() float64 { return v.q.value }
func (v Voltage) Unit() Unit     { return v.q.unitIn(voltageTable) }

// Base is the value in mV.
func (v Voltage) Base() float64 { return v.q.base(voltageTable) }

// SI is the value in volts.
func (v Voltage) SI() float64 { return v.q.si(voltageTable) }

func (v Voltage) As(u Unit) (Voltage, error) {
	q, err := v.q.as(voltageTable, u)
	return Voltage{q}, err
}

func (v Voltage) In(u Unit) (float64, error) {
	return voltageTable.Convert(v.q.value, v.Unit(), u)
}

func (v Voltage) Key() float64         { return v.q.key(voltageTable) }
func (v Voltage) Equal(o Voltage) bool { return v.Key() == o.Key() }
func (v Voltage) String() string       { return v.q.format(voltageTable) }
func (Voltage) electrical()            {}

// ---------------------------------------------------------------------------
// Current
// ---------------------------------------------------------------------------

// Current is a current in mA or A.
type Current struct{ q quantity }

// NewCurrent returns v expressed in u. An empty unit means mA.
func NewCurrent(v float64, u Unit) (Current, error) {
	q, err := newQuantity(currentTable, "units.NewCurrent", v, u)
	return Current{q}, err
}

// MustCurrent is NewCurrent that panics on an unknown unit.
func MustCurrent(v float64, u Unit) Current {
	c, err := NewCurrent(v, u)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Current) Family() Family { return FamilyCurrent }
func (c Current) Value() float64 { return c.q.value }
func (c Current) Unit() Unit     { return c.q.unitIn(currentTable) }

// Base is the value in mA.
func (c Current) Base() float64 { return c.q.base(currentTable) }

// SI is the value in amperes.
func (c Current) SI() float64 { return c.q.si(currentTable) }

func (c Current) As(u Unit) (Current, error) {
	q, err := c.q.as(currentTable, u)
	return Current{q}, err
}

func (c Current) In(u Unit) (float64, error) {
	return currentTable.Convert(c.q.value, c.Unit(), u)
}

func (c Current) Key() float64         { return c.q.key(currentTable) }
func (c Current) Equal(o Current) bool { return c.Key() == o.Key() }
func (c Current) String() string       { return c.q.format(currentTable) }
func (Current) electrical()            {}
