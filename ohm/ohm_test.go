package ohm

import (
	"errors"
	"testing"

	"sensorkit-go/errcode"
	"sensorkit-go/units"
)

var (
	v15 = units.MustVoltage(15, units.Volt)
	i5  = units.MustCurrent(5, units.Milliampere)
	r3  = units.MustResistance(3, units.Kiloohm)
)

func TestSolveEachMissingQuantity(t *testing.T) {
	r, err := Solve(Knowns{V: &v15, I: &i5}, "")
	if err != nil {
		t.Fatalf("solve R: %v", err)
	}
	if got, ok := r.(units.Resistance); !ok || !got.Equal(r3) || got.Unit() != units.Kiloohm {
		t.Fatalf("solve R = %v, want 3 kΩ", r)
	}

	v, err := Solve(Knowns{R: &r3, I: &i5}, units.Volt)
	if err != nil {
		t.Fatalf("solve V: %v", err)
	}
	if got, ok := v.(units.Voltage); !ok || !got.Equal(v15) || got.Unit() != units.Volt {
		t.Fatalf("solve V = %v, want 15 V", v)
	}

	i, err := Solve(Knowns{V: &v15, R: &r3}, "")
	if err != nil {
		t.Fatalf("solve I: %v", err)
	}
	if got, ok := i.(units.Current); !ok || !got.Equal(i5) || got.Unit() != units.Milliampere {
		t.Fatalf("solve I = %v, want 5 mA", i)
	}
}

func TestSolveArgumentCount(t *testing.T) {
	for name, k := range map[string]Knowns{
		"none":  {},
		"one":   {V: &v15},
		"three": {R: &r3, I: &i5, V: &v15},
	} {
		if _, err := Solve(k, ""); !errors.Is(err, errcode.ArgumentCount) {
			t.Fatalf("%s: err = %v, want argument_count", name, err)
		}
	}
}

func TestSolveRejectsUnitOfWrongFamily(t *testing.T) {
	if _, err := Solve(Knowns{V: &v15, I: &i5}, units.Volt); !errors.Is(err, errcode.UnsupportedUnit) {
		t.Fatalf("err = %v, want unsupported_unit", err)
	}
}

func TestSolveZeroDivisor(t *testing.T) {
	zeroI := units.MustCurrent(0, units.Ampere)
	if _, err := Solve(Knowns{V: &v15, I: &zeroI}, ""); !errors.Is(err, errcode.Domain) {
		t.Fatalf("R with I=0: err = %v, want domain", err)
	}
	zeroR := units.MustResistance(0, units.Ohm)
	if _, err := Current(v15, zeroR, ""); !errors.Is(err, errcode.Domain) {
		t.Fatalf("I with R=0: err = %v, want domain", err)
	}
}

func TestWrappersAcceptEitherOrder(t *testing.T) {
	type C struct {
		name string
		got  func() (units.Electrical, error)
		want units.Electrical
	}
	wrapV := func(a, b units.Electrical) func() (units.Electrical, error) {
		return func() (units.Electrical, error) { return Voltage(a, b, "") }
	}
	wrapI := func(a, b units.Electrical) func() (units.Electrical, error) {
		return func() (units.Electrical, error) { return Current(a, b, "") }
	}
	wrapR := func(a, b units.Electrical) func() (units.Electrical, error) {
		return func() (units.Electrical, error) { return Resistance(a, b, "") }
	}
	for _, c := range []C{
		{"I.voltage(R)", wrapV(i5, r3), v15},
		{"R.voltage(I)", wrapV(r3, i5), v15},
		{"V.current(R)", wrapI(v15, r3), i5},
		{"R.current(V)", wrapI(r3, v15), i5},
		{"V.resistance(I)", wrapR(v15, i5), r3},
		{"I.resistance(V)", wrapR(i5, v15), r3},
	} {
		got, err := c.got()
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if !sameKey(got, c.want) {
			t.Fatalf("%s = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestWrapperDefaultUnits(t *testing.T) {
	v, _ := Voltage(r3, i5, "")
	i, _ := Current(v15, r3, "")
	r, _ := Resistance(v15, i5, "")
	if v.Unit() != units.Millivolt || i.Unit() != units.Milliampere || r.Unit() != units.Kiloohm {
		t.Fatalf("default units = %s, %s, %s", v.Unit(), i.Unit(), r.Unit())
	}
	r, err := Resistance(v15, i5, units.Ohm)
	if err != nil || r.Unit() != units.Ohm || !r.Equal(r3) {
		t.Fatalf("Resistance in Ω = %v, %v", r, err)
	}
}

func TestWrappersRejectBadPairings(t *testing.T) {
	type C struct {
		name string
		err  error
	}
	_, e1 := Voltage(v15, i5, "")
	_, e2 := Voltage(r3, r3, "")
	_, e3 := Current(i5, r3, "")
	_, e4 := Resistance(r3, v15, "")
	_, e5 := Resistance(nil, v15, "")
	for _, c := range []C{
		{"V.voltage(I)", e1},
		{"R.voltage(R)", e2},
		{"I.current(R)", e3},
		{"R.resistance(V)", e4},
		{"nil.resistance(V)", e5},
	} {
		if !errors.Is(c.err, errcode.TypeMismatch) {
			t.Fatalf("%s: err = %v, want type_mismatch", c.name, c.err)
		}
	}
}

func TestSolveBackReproducesInputs(t *testing.T) {
	r := units.MustResistance(4.7, units.Kiloohm)
	i := units.MustCurrent(0.37, units.Milliampere)
	v, err := Voltage(r, i, "")
	if err != nil {
		t.Fatalf("V: %v", err)
	}
	rBack, err := Resistance(v, i, "")
	if err != nil || !rBack.Equal(r) {
		t.Fatalf("R back = %v (%v), want %v", rBack, err, r)
	}
	iBack, err := Current(v, r, "")
	if err != nil || !iBack.Equal(i) {
		t.Fatalf("I back = %v (%v), want %v", iBack, err, i)
	}
}

func sameKey(a, b units.Electrical) bool {
	switch x := a.(type) {
	case units.Resistance:
		y, ok := b.(units.Resistance)
		return ok && x.Equal(y)
	case units.Voltage:
		y, ok := b.(units.Voltage)
		return ok && x.Equal(y)
	case units.Current:
		y, ok := b.(units.Current)
		return ok && x.Equal(y)
	}
	return false
}
