// Package smd decodes the 3- and 4-character value markings printed on
// surface-mount resistors.
//
//	"103"  -> 10 * 10^3 Ω = 10 kΩ
//	"4702" -> 470 * 10^2 Ω = 47 kΩ
//	"1R1"  -> 1.1 Ω (R marks the decimal point)
package smd

import (
	"math"
	"strconv"
	"strings"

	"sensorkit-go/errcode"
	"sensorkit-go/units"
)

// Pseudo-units accepted by Convert in place of a resistance unit.
const (
	UnitSMD  units.Unit = "SMD"
	UnitSMD3 units.Unit = "SMD3"
	UnitSMD4 units.Unit = "SMD4"
)

// Decode returns the nominal resistance encoded by code, in ohms.
func Decode(code string) (units.Resistance, error) {
	const op = "smd.Decode"
	if len(code) != 3 && len(code) != 4 {
		return units.Resistance{}, invalid(op, code, "length must be 3 or 4")
	}

	var ohms float64
	if strings.IndexByte(code, 'R') >= 0 {
		if strings.Count(code, "R") != 1 {
			return units.Resistance{}, invalid(op, code, "more than one R")
		}
		if !allDigits(strings.Replace(code, "R", "", 1)) {
			return units.Resistance{}, invalid(op, code, "non-digit character")
		}
		v, err := strconv.ParseFloat(strings.Replace(code, "R", ".", 1), 64)
		if err != nil {
			return units.Resistance{}, errcode.Wrap(errcode.InvalidSMDCode, op, err)
		}
		ohms = v
	} else {
		if !allDigits(code) {
			return units.Resistance{}, invalid(op, code, "non-digit character")
		}
		mantissa, err := strconv.Atoi(code[:len(code)-1])
		if err != nil {
			return units.Resistance{}, errcode.Wrap(errcode.InvalidSMDCode, op, err)
		}
		exp := int(code[len(code)-1] - '0')
		ohms = float64(mantissa) * math.Pow10(exp)
	}
	return units.NewResistance(ohms, units.Ohm)
}

// Convert decodes code and returns its value in unit to, mirroring a
// conversion whose source unit is one of the SMD pseudo-units.
func Convert(code string, to units.Unit) (float64, error) {
	r, err := Decode(code)
	if err != nil {
		return 0, err
	}
	return r.In(to)
}

// IsPseudoUnit reports whether u names an SMD marking rather than a real
// resistance unit ("smd", "SMD3", "smd4", ...).
func IsPseudoUnit(u units.Unit) bool {
	switch units.Unit(strings.ToUpper(string(u))) {
	case UnitSMD, UnitSMD3, UnitSMD4:
		return true
	}
	return false
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func invalid(op, code, why string) error {
	return errcode.New(errcode.InvalidSMDCode, op, strconv.Quote(code)+": "+why)
}
