package units

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"sensorkit-go/errcode"
)

func TestEveryTableHasOneBaseUnit(t *testing.T) {
	type C struct {
		f    Family
		base Unit
		si   Unit
	}
	for _, c := range []C{
		{FamilyTemperature, Kelvin, Kelvin},
		{FamilyResistance, Kiloohm, Ohm},
		{FamilyVoltage, Millivolt, Volt},
		{FamilyCurrent, Milliampere, Ampere},
	} {
		tbl := Lookup(c.f)
		if tbl == nil {
			t.Fatalf("Lookup(%v) = nil", c.f)
		}
		if tbl.Base() != c.base || c.f.DefaultUnit() != c.base {
			t.Fatalf("%v base = %q, want %q", c.f, tbl.Base(), c.base)
		}
		if tbl.SIUnit() != c.si {
			t.Fatalf("%v SI unit = %q, want %q", c.f, tbl.SIUnit(), c.si)
		}
		bases := 0
		for _, u := range tbl.Units() {
			a, _ := tbl.Affine(u)
			if a.Scale == 1 && a.Offset == 0 {
				bases++
			}
		}
		if bases != 1 {
			t.Fatalf("%v has %d base units", c.f, bases)
		}
	}
	if Lookup(Family(99)) != nil {
		t.Fatalf("unknown family should have no table")
	}
}

func TestConvertKnownValues(t *testing.T) {
	type C struct {
		f        Family
		v        float64
		from, to Unit
		want     float64
	}
	for _, c := range []C{
		{FamilyTemperature, 50, Celsius, Kelvin, 323.15},
		{FamilyTemperature, 122, Fahrenheit, Celsius, 50},
		{FamilyTemperature, 32, Fahrenheit, Kelvin, 273.15},
		{FamilyTemperature, -40, Celsius, Fahrenheit, -40},
		{FamilyResistance, 10000, Ohm, Kiloohm, 10},
		{FamilyResistance, 1.5, Kiloohm, Milliohm, 1.5e6},
		{FamilyVoltage, 15, Volt, Millivolt, 15000},
		{FamilyCurrent, 5, Milliampere, Ampere, 0.005},
	} {
		got, err := Convert(c.f, c.v, c.from, c.to)
		if err != nil {
			t.Fatalf("Convert(%v %s->%s) error: %v", c.v, c.from, c.to, err)
		}
		if !scalar.EqualWithinAbs(got, c.want, 1e-9) {
			t.Fatalf("Convert(%v %s->%s) = %v, want %v", c.v, c.from, c.to, got, c.want)
		}
	}
}

func TestConvertRoundTripAllPairs(t *testing.T) {
	values := []float64{0, 1, -17.5, 298.15, 1e-3, 4.7e4}
	for _, f := range []Family{FamilyTemperature, FamilyResistance, FamilyVoltage, FamilyCurrent} {
		tbl := Lookup(f)
		for _, u1 := range tbl.Units() {
			for _, u2 := range tbl.Units() {
				for _, v := range values {
					there, err := tbl.Convert(v, u1, u2)
					if err != nil {
						t.Fatalf("%v %s->%s: %v", f, u1, u2, err)
					}
					back, err := tbl.Convert(there, u2, u1)
					if err != nil {
						t.Fatalf("%v %s->%s: %v", f, u2, u1, err)
					}
					if !scalar.EqualWithinAbs(back, v, 1e-6) {
						t.Fatalf("%v round trip %v %s->%s->%s = %v", f, v, u1, u2, u1, back)
					}
				}
			}
		}
	}
}

func TestConvertIdentityIsExact(t *testing.T) {
	v := 0.3 // C->C through the base would give 0.30000000000001137
	for _, u := range temperatureTable.Units() {
		got, err := temperatureTable.Convert(v, u, u)
		if err != nil || got != v {
			t.Fatalf("identity %s: got %v (%v), want %v", u, got, err, v)
		}
	}
}

func TestConvertRejectsUnknownUnits(t *testing.T) {
	if _, err := Convert(FamilyTemperature, 1, "X", Kelvin); !errors.Is(err, errcode.UnsupportedUnit) {
		t.Fatalf("from X: err = %v, want unsupported_unit", err)
	}
	if _, err := Convert(FamilyTemperature, 1, Kelvin, "X"); !errors.Is(err, errcode.UnsupportedUnit) {
		t.Fatalf("to X: err = %v, want unsupported_unit", err)
	}
	// Units of another family are unknown here too.
	if _, err := Convert(FamilyVoltage, 1, Ampere, Volt); !errors.Is(err, errcode.UnsupportedUnit) {
		t.Fatalf("A in voltage table: err = %v", err)
	}
	if _, err := Convert(Family(0), 1, Volt, Volt); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("unknown family: err = %v", err)
	}
}

func TestQuantityConstructionAndAs(t *testing.T) {
	if _, err := NewResistance(1, "X"); !errors.Is(err, errcode.UnsupportedUnit) {
		t.Fatalf("NewResistance(X) err = %v", err)
	}

	c := MustTemperature(25, Celsius)
	k, err := c.As(Kelvin)
	if err != nil {
		t.Fatalf("As(K): %v", err)
	}
	if c.Value() != 25 || c.Unit() != Celsius {
		t.Fatalf("As must not modify the receiver: %v", c)
	}
	if k.Unit() != Kelvin || !scalar.EqualWithinAbs(k.Value(), 298.15, 1e-9) {
		t.Fatalf("As(K) = %v", k)
	}
	if _, err := c.As(Volt); !errors.Is(err, errcode.UnsupportedUnit) {
		t.Fatalf("As(V) err = %v", err)
	}

	v := MustVoltage(15, Volt)
	if v.Base() != 15000 || v.SI() != 15 {
		t.Fatalf("Voltage base/SI = %v/%v", v.Base(), v.SI())
	}
	r := MustResistance(3, "")
	if r.Unit() != Kiloohm || r.SI() != 3000 {
		t.Fatalf("default resistance unit: %v, SI %v", r.Unit(), r.SI())
	}
	var zero Current
	if zero.Unit() != Milliampere || zero.Value() != 0 {
		t.Fatalf("zero Current = %v %v", zero.Value(), zero.Unit())
	}
}

func TestQuantityEqualityAndKey(t *testing.T) {
	k := MustTemperature(323.15, Kelvin)
	c := MustTemperature(50, Celsius)
	f := MustTemperature(122, Fahrenheit)
	if !k.Equal(c) || !c.Equal(f) || !f.Equal(k) {
		t.Fatalf("323.15K, 50C, 122F should all be equal")
	}
	seen := map[float64]string{k.Key(): k.String()}
	if _, ok := seen[f.Key()]; !ok {
		t.Fatalf("equal quantities must share a key: %v vs %v", k.Key(), f.Key())
	}
	if MustTemperature(50.001, Celsius).Equal(c) {
		t.Fatalf("50.001C should not equal 50C")
	}

	if !MustResistance(3, Kiloohm).Equal(MustResistance(3000, Ohm)) {
		t.Fatalf("3kΩ should equal 3000Ω")
	}
	if !MustCurrent(5, Milliampere).Equal(MustCurrent(0.005, Ampere)) {
		t.Fatalf("5mA should equal 0.005A")
	}
}

func TestQuantityString(t *testing.T) {
	type C struct {
		got, want string
	}
	for _, c := range []C{
		{MustTemperature(25, Celsius).String(), "25°C"},
		{MustTemperature(77, Fahrenheit).String(), "77°F"},
		{MustTemperature(298.15, Kelvin).String(), "298.15 K"},
		{MustResistance(3, Kiloohm).String(), "3 kΩ"},
		{MustResistance(4700, Ohm).String(), "4700 Ω"},
		{MustVoltage(15, Volt).String(), "15 V"},
		{MustCurrent(5, Milliampere).String(), "5 mA"},
	} {
		if c.got != c.want {
			t.Fatalf("String() = %q, want %q", c.got, c.want)
		}
	}
}

func TestParse(t *testing.T) {
	type C struct {
		in   string
		v    float64
		unit Unit
	}
	for _, c := range []C{
		{"15V", 15, Volt},
		{"3 kΩ", 3, Kiloohm},
		{"25°C", 25, Celsius},
		{"-40 F", -40, Fahrenheit},
		{"5mA", 5, Milliampere},
		{"1e3ohm", 1000, Ohm},
		{"4.7k", 4.7, Kiloohm},
		{"10 Ω", 10, Ohm},
		{".5A", 0.5, Ampere},
		{"42", 42, ""},
	} {
		v, u, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.in, err)
		}
		if v != c.v || u != c.unit {
			t.Fatalf("Parse(%q) = %v %q, want %v %q", c.in, v, u, c.v, c.unit)
		}
	}
	for _, s := range []string{"", "V", "abc", "-"} {
		if _, _, err := Parse(s); errcode.Of(err) != errcode.InvalidParams {
			t.Fatalf("Parse(%q) err = %v, want invalid_params", s, err)
		}
	}
	if _, err := ParseVoltage("5mA"); !errors.Is(err, errcode.UnsupportedUnit) {
		t.Fatalf("ParseVoltage(5mA) err = %v", err)
	}
	if r, err := ParseResistance("10kohm"); err != nil || !r.Equal(MustResistance(10000, Ohm)) {
		t.Fatalf("ParseResistance(10kohm) = %v, %v", r, err)
	}
	if tc, err := ParseTemperature("25C"); err != nil || tc.Unit() != Celsius {
		t.Fatalf("ParseTemperature(25C) = %v, %v", tc, err)
	}
	if c, err := ParseCurrent("2 A"); err != nil || c.Base() != 2000 {
		t.Fatalf("ParseCurrent(2 A) = %v, %v", c, err)
	}
}

func TestFamilyOf(t *testing.T) {
	for u, want := range map[Unit]Family{
		Fahrenheit: FamilyTemperature,
		Milliohm:   FamilyResistance,
		Volt:       FamilyVoltage,
		Ampere:     FamilyCurrent,
	} {
		if f, ok := FamilyOf(u); !ok || f != want {
			t.Fatalf("FamilyOf(%q) = %v, %v", u, f, ok)
		}
	}
	for _, u := range []Unit{"", "X", "kV"} {
		if _, ok := FamilyOf(u); ok {
			t.Fatalf("FamilyOf(%q) ok", u)
		}
	}
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{
		" °C ":   Celsius,
		"kohms":  Kiloohm,
		"\u2126": Ohm, // OHM SIGN
		"mA":     Milliampere,
		"SMD":    "SMD",
	} {
		if got := ParseUnit(in); got != want {
			t.Fatalf("ParseUnit(%q) = %q, want %q", in, got, want)
		}
	}
}
