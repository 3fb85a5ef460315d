// Package ntcdiv reads an NTC thermistor wired as one leg of a resistor
// divider into an ADC:
//
//	HighSide:  Supply ── Fixed ──┬── NTC ── GND
//	LowSide:   Supply ── NTC  ───┬── Fixed ── GND
//	                             └── ADC
//
// The ADC reading is scaled to 16 bits (0..65535 over 0..Supply), as
// returned by machine.ADC.Get. The device implements drivers.Sensor for
// drivers.Temperature and drivers.Voltage.
package ntcdiv

import (
	"errors"

	"tinygo.org/x/drivers"

	"sensorkit-go/errcode"
	"sensorkit-go/ntc"
	"sensorkit-go/ohm"
	"sensorkit-go/units"
	"sensorkit-go/x/mathx"
)

// ADC is the subset of machine.ADC the driver needs.
type ADC interface {
	Get() uint16
}

const fullScale = 0xFFFF

// Errors wrapped (with errcode.Domain) when the divider node sits on a rail.
var (
	ErrOpen  = errors.New("ntcdiv: thermistor open")
	ErrShort = errors.New("ntcdiv: thermistor shorted")
)

// Config describes the divider. Fixed is required.
type Config struct {
	// Supply is the divider and ADC reference voltage. Default 3.3 V.
	Supply units.Voltage
	// Fixed is the series resistor.
	Fixed units.Resistance
	// HighSide places Fixed between Supply and the sense node.
	HighSide bool
	// RailMargin is how close (in counts) a reading may get to 0 or full
	// scale before it is treated as open/short. Default 64.
	RailMargin uint16
}

// Sample caches the latest readings. Raw and Node follow every Update;
// R and T follow Temperature updates only, and Valid reports whether the
// last of those succeeded.
type Sample struct {
	Raw   uint16
	Node  units.Voltage
	R     units.Resistance
	T     units.Temperature
	Valid bool
}

// Device converts ADC readings to thermistor temperature.
type Device struct {
	adc   ADC
	model *ntc.Model
	cfg   Config
	last  Sample
}

var _ drivers.Sensor = (*Device)(nil)

// New validates cfg and binds the ADC to a thermistor model.
func New(adc ADC, model *ntc.Model, cfg Config) (*Device, error) {
	const op = "ntcdiv.New"
	if adc == nil || model == nil {
		return nil, errcode.New(errcode.InvalidParams, op, "adc and model are required")
	}
	if cfg.Supply == (units.Voltage{}) {
		cfg.Supply = units.MustVoltage(3.3, units.Volt)
	}
	if !(cfg.Supply.Base() > 0) {
		return nil, errcode.New(errcode.InvalidParams, op, "supply must be positive")
	}
	if !(cfg.Fixed.Base() > 0) {
		return nil, errcode.New(errcode.InvalidParams, op, "fixed resistor must be positive")
	}
	if cfg.RailMargin == 0 {
		cfg.RailMargin = 64
	}
	return &Device{adc: adc, model: model, cfg: cfg}, nil
}

// Update samples the ADC. Voltage only needs the node reading and leaves
// R and T untouched; Temperature also solves the divider and the Beta
// equation, and fails with ErrOpen or ErrShort when the node is within
// RailMargin of a rail. A failed Temperature update clears R and T and
// marks the sample invalid.
func (d *Device) Update(which drivers.Measurement) error {
	const op = "ntcdiv.Update"
	if which&(drivers.Temperature|drivers.Voltage) == 0 {
		return nil
	}
	raw := d.adc.Get()
	supply := d.cfg.Supply.Base()
	node := units.MustVoltage(supply*float64(raw)/fullScale, units.Millivolt)
	d.last.Raw, d.last.Node = raw, node
	if which&drivers.Temperature == 0 {
		return nil
	}
	r, t, err := d.solve(op, raw, node)
	if err != nil {
		d.last.R, d.last.T, d.last.Valid = units.Resistance{}, units.Temperature{}, false
		return err
	}
	d.last.R, d.last.T, d.last.Valid = r, t, true
	return nil
}

// solve derives the thermistor resistance and temperature from one reading.
func (d *Device) solve(op string, raw uint16, node units.Voltage) (units.Resistance, units.Temperature, error) {
	if !mathx.Between(raw, d.cfg.RailMargin, fullScale-d.cfg.RailMargin) {
		low := raw < d.cfg.RailMargin
		// The NTC leg is at the bottom for HighSide, so a low node means a short.
		if low == d.cfg.HighSide {
			return units.Resistance{}, units.Temperature{}, errcode.Wrap(errcode.Domain, op, ErrShort)
		}
		return units.Resistance{}, units.Temperature{}, errcode.Wrap(errcode.Domain, op, ErrOpen)
	}

	supply := d.cfg.Supply.Base()
	vNTC, vFixed := node, units.MustVoltage(supply-node.Base(), units.Millivolt)
	if !d.cfg.HighSide {
		vNTC, vFixed = vFixed, vNTC
	}
	i, err := ohm.Current(vFixed, d.cfg.Fixed, units.Milliampere)
	if err != nil {
		return units.Resistance{}, units.Temperature{}, err
	}
	r, err := ohm.Resistance(vNTC, i, units.Ohm)
	if err != nil {
		return units.Resistance{}, units.Temperature{}, err
	}
	t, err := d.model.Temperature(r, units.Celsius)
	if err != nil {
		return units.Resistance{}, units.Temperature{}, err
	}
	return r, t, nil
}

// Last returns the most recent sample.
func (d *Device) Last() Sample { return d.last }

// Temperature returns the last temperature in milli-°C. It reads 0 when
// Last().Valid is false.
func (d *Device) Temperature() int32 {
	return mathx.Fixed[int32](d.last.T.Value(), 1000)
}

// Voltage returns the last node voltage in mV.
func (d *Device) Voltage() int32 {
	return mathx.Fixed[int32](d.last.Node.Base(), 1)
}

// Resistance returns the last thermistor resistance.
func (d *Device) Resistance() units.Resistance { return d.last.R }
