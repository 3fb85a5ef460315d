package ntc

import (
	"gonum.org/v1/gonum/floats"

	"sensorkit-go/errcode"
	"sensorkit-go/units"
)

// Point is one sample of a resistance/temperature curve.
type Point struct {
	T units.Temperature
	R units.Resistance
}

// Curve samples n evenly spaced temperatures from..to (inclusive, in the
// unit of from) and evaluates the resistance at each in rUnit.
func (m *Model) Curve(from, to units.Temperature, n int, rUnit units.Unit) ([]Point, error) {
	const op = "ntc.Curve"
	if n < 2 {
		return nil, errcode.New(errcode.InvalidParams, op, "need at least two points")
	}
	hi, err := to.In(from.Unit())
	if err != nil {
		return nil, err
	}
	if err := units.Lookup(units.FamilyResistance).Validate(rUnit); err != nil {
		return nil, err
	}

	grid := floats.Span(make([]float64, n), from.Value(), hi)
	out := make([]Point, 0, n)
	for _, v := range grid {
		t := units.MustTemperature(v, from.Unit())
		r, err := m.Resistance(t, rUnit)
		if err != nil {
			return nil, err
		}
		out = append(out, Point{T: t, R: r})
	}
	return out, nil
}
