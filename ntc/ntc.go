// Package ntc models NTC thermistors with the Beta equation:
//
//	1/T = ln(R/R0)/B + 1/T0
//	R   = R0 * exp(B * (1/T - 1/T0))
//
// with T in kelvin. A Model is immutable and safe for concurrent use.
package ntc

import (
	"math"
	"strconv"

	"sensorkit-go/errcode"
	"sensorkit-go/units"
)

// Reference temperatures used when Config leaves them zero.
var (
	DefaultT0 = units.MustTemperature(298.15, units.Kelvin) // 25 °C
	DefaultT1 = units.MustTemperature(323.15, units.Kelvin) // 50 °C
)

// Config describes a thermistor. Only Beta and R0 are required.
type Config struct {
	// Beta is the B(T0/T1) coefficient in kelvin.
	Beta float64
	// R0 is the nominal resistance at T0.
	R0 units.Resistance
	// T0 defaults to 25 °C.
	T0 units.Temperature
	// T1 is the upper Beta reference point; defaults to 50 °C.
	T1 units.Temperature
	// Name defaults to "NTC<beta>".
	Name string
}

// Model evaluates the Beta equation for one thermistor.
type Model struct {
	beta float64
	r0   float64 // kΩ
	t0   float64 // K
	t1   float64 // K
	name string
}

// New validates cfg, fills defaults and returns the model.
func New(cfg Config) (*Model, error) {
	const op = "ntc.New"
	if !(cfg.Beta > 0) || math.IsInf(cfg.Beta, 0) {
		return nil, errcode.New(errcode.Domain, op, "beta must be positive")
	}
	if cfg.T0 == (units.Temperature{}) {
		cfg.T0 = DefaultT0
	}
	if cfg.T1 == (units.Temperature{}) {
		cfg.T1 = DefaultT1
	}
	m := &Model{
		beta: cfg.Beta,
		r0:   cfg.R0.Base(),
		t0:   cfg.T0.Base(),
		t1:   cfg.T1.Base(),
		name: cfg.Name,
	}
	if !(m.r0 > 0) {
		return nil, errcode.New(errcode.Domain, op, "R0 must be positive")
	}
	if !(m.t0 > 0) || !(m.t1 > 0) {
		return nil, errcode.New(errcode.Domain, op, "reference temperatures must be above 0 K")
	}
	if m.name == "" {
		m.name = "NTC" + strconv.FormatFloat(m.beta, 'f', -1, 64)
	}
	return m, nil
}

func (m *Model) Name() string  { return m.name }
func (m *Model) Beta() float64 { return m.beta }

// R0 is the nominal resistance, in kΩ.
func (m *Model) R0() units.Resistance { return units.MustResistance(m.r0, units.Kiloohm) }

// T0 is the reference temperature of R0, in kelvin.
func (m *Model) T0() units.Temperature { return units.MustTemperature(m.t0, units.Kelvin) }

// T1 is the second Beta reference temperature, in kelvin.
func (m *Model) T1() units.Temperature { return units.MustTemperature(m.t1, units.Kelvin) }

// R1 is the resistance at T1, in kΩ.
func (m *Model) R1() units.Resistance {
	return units.MustResistance(m.resistanceK(m.t1), units.Kiloohm)
}

// Temperature solves the Beta equation for r and returns the result in tUnit
// (kelvin when empty).
func (m *Model) Temperature(r units.Resistance, tUnit units.Unit) (units.Temperature, error) {
	k, err := m.temperatureK("ntc.Temperature", r.Base())
	if err != nil {
		return units.Temperature{}, err
	}
	return units.MustTemperature(k, units.Kelvin).As(tUnit)
}

// Resistance evaluates the Beta equation at t and returns the result in
// rUnit (kΩ when empty).
func (m *Model) Resistance(t units.Temperature, rUnit units.Unit) (units.Resistance, error) {
	k := t.Base()
	if !(k > 0) {
		return units.Resistance{}, errcode.New(errcode.Domain, "ntc.Resistance",
			"temperature must be above 0 K, got "+t.String())
	}
	return units.MustResistance(m.resistanceK(k), units.Kiloohm).As(rUnit)
}

// TemperatureOf is Temperature over plain numbers: r in rUnit, result in tUnit.
func (m *Model) TemperatureOf(r float64, rUnit, tUnit units.Unit) (float64, error) {
	rq, err := units.NewResistance(r, rUnit)
	if err != nil {
		return 0, err
	}
	if err := units.Lookup(units.FamilyTemperature).Validate(tUnit); err != nil {
		return 0, err
	}
	t, err := m.Temperature(rq, tUnit)
	if err != nil {
		return 0, err
	}
	return t.Value(), nil
}

// ResistanceAt is Resistance over plain numbers: t in tUnit, result in rUnit.
func (m *Model) ResistanceAt(t float64, tUnit, rUnit units.Unit) (float64, error) {
	tq, err := units.NewTemperature(t, tUnit)
	if err != nil {
		return 0, err
	}
	if err := units.Lookup(units.FamilyResistance).Validate(rUnit); err != nil {
		return 0, err
	}
	r, err := m.Resistance(tq, rUnit)
	if err != nil {
		return 0, err
	}
	return r.Value(), nil
}

// Alpha is the temperature coefficient dR/dT / R = -B/T² at t, in 1/K.
func (m *Model) Alpha(t units.Temperature) (float64, error) {
	k := t.Base()
	if !(k > 0) {
		return 0, errcode.New(errcode.Domain, "ntc.Alpha", "temperature must be above 0 K")
	}
	return -m.beta / (k * k), nil
}

// String renders "<name>(<T0 in °C>)=<R0 in kΩ>", e.g. "TTC05103(25°C)=10 kΩ".
func (m *Model) String() string {
	t0, _ := m.T0().As(units.Celsius)
	return m.name + "(" + t0.String() + ")=" + m.R0().String()
}

func (m *Model) temperatureK(op string, rK float64) (float64, error) {
	if !(rK > 0) || math.IsInf(rK, 1) {
		return 0, errcode.New(errcode.Domain, op, "resistance must be positive and finite")
	}
	inv := math.Log(rK/m.r0)/m.beta + 1/m.t0
	if !(inv > 0) {
		// ln(R/R0) so negative that 1/T crosses zero: no physical temperature.
		return 0, errcode.New(errcode.Domain, op, "resistance outside the model range")
	}
	return 1 / inv, nil
}

func (m *Model) resistanceK(k float64) float64 {
	return m.r0 * math.Exp(m.beta*(1/k-1/m.t0))
}
