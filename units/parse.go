package units

import (
	"strconv"
	"strings"

	"sensorkit-go/errcode"
)

// unitAliases maps ASCII spellings and look-alike symbols onto table units.
var unitAliases = map[string]Unit{
	"ohm":     Ohm,
	"ohms":    Ohm,
	"R":       Ohm,
	"kohm":    Kiloohm,
	"kohms":   Kiloohm,
	"k":       Kiloohm,
	"mohm":    Milliohm,
	"mohms":   Milliohm,
	"\u2126":  Ohm, // OHM SIGN
	"k\u2126": Kiloohm,
	"m\u2126": Milliohm,
	"degC":    Celsius,
	"degF":    Fahrenheit,
}

// Parse splits s into a number and a unit symbol, e.g. "15V", "3 kΩ",
// "25°C", "-40 F". The unit is not checked against any family; an absent
// unit is returned as "".
func Parse(s string) (float64, Unit, error) {
	const op = "units.Parse"
	s = strings.TrimSpace(s)
	n := numberPrefix(s)
	if n == 0 {
		return 0, "", errcode.New(errcode.InvalidParams, op, "no number in "+strconv.Quote(s))
	}
	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		return 0, "", errcode.Wrap(errcode.InvalidParams, op, err)
	}
	return v, ParseUnit(s[n:]), nil
}

// ParseUnit maps a unit spelling onto its symbol ("ohms" -> Ω, "°C" -> C).
// Unknown spellings are returned trimmed but otherwise unchanged.
func ParseUnit(s string) Unit {
	s = strings.TrimPrefix(strings.TrimSpace(s), "°")
	if u, ok := unitAliases[s]; ok {
		return u
	}
	return Unit(s)
}

// numberPrefix returns the length of the leading decimal float literal in s.
func numberPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	// Exponent only when followed by digits, so "5mA" and "2e" stay intact.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ParseTemperature parses s and validates the unit against the temperature table.
func ParseTemperature(s string) (Temperature, error) {
	v, u, err := Parse(s)
	if err != nil {
		return Temperature{}, err
	}
	return NewTemperature(v, u)
}

// ParseResistance parses s and validates the unit against the resistance table.
func ParseResistance(s string) (Resistance, error) {
	v, u, err := Parse(s)
	if err != nil {
		return Resistance{}, err
	}
	return NewResistance(v, u)
}

// ParseVoltage parses s and validates the unit against the voltage table.
func ParseVoltage(s string) (Voltage, error) {
	v, u, err := Parse(s)
	if err != nil {
		return Voltage{}, err
	}
	return NewVoltage(v, u)
}

// ParseCurrent parses s and validates the unit against the current table.
func ParseCurrent(s string) (Current, error) {
	v, u, err := Parse(s)
	if err != nil {
		return Current{}, err
	}
	return NewCurrent(v, u)
}
