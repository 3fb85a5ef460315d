// Package ttc05 is the catalog of the TKS TTC05 NTC thermistor series.
//
// Parts are identified by the 3-digit SMD code of their nominal resistance
// at 25 °C; the catalog maps each code to its B(25/50) coefficient.
package ttc05

import (
	"sort"
	"strconv"
	"strings"

	"sensorkit-go/errcode"
	"sensorkit-go/ntc"
	"sensorkit-go/smd"
	"sensorkit-go/units"
)

const (
	Vendor = "TKS"
	Series = "TTC05"
)

// betas maps SMD code -> Beta (K). Read-only after init.
var betas = map[string]float64{
	"005": 2400, "010": 2800, "015": 2800, "020": 2800, "025": 2900, "045": 3100,
	"050": 3100, "060": 3100, "085": 3200, "090": 3200, "101": 3200, "121": 3300,
	"151": 3300, "201": 3500, "221": 3500, "251": 3500, "301": 3800, "471": 3500,
	"501": 3700, "681": 3800, "701": 3800, "102": 3800, "152": 3950, "202": 4000,
	"222": 4000, "252": 4000, "302": 4000, "332": 4000, "402": 4000, "472": 4050,
	"502": 3950, "602": 4050, "682": 4050, "802": 4050, "103": 4050, "123": 4050,
	"153": 4150, "203": 4250, "303": 4250, "473": 4300, "503": 4300, "104": 4400,
	"154": 4500, "204": 4600, "224": 4600, "474": 4750,
}

// codes is the sorted key set of betas.
var codes = func() []string {
	out := make([]string, 0, len(betas))
	for c := range betas {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}()

// Codes returns every part code in the series, sorted.
func Codes() []string {
	return append([]string(nil), codes...)
}

// Lookup returns the Beta coefficient of code.
func Lookup(code string) (float64, error) {
	b, ok := betas[Normalize(code)]
	if !ok {
		return 0, errcode.New(errcode.UnknownModel, "ttc05.Lookup", Series+" has no part "+code)
	}
	return b, nil
}

// Normalize zero-pads numeric codes shorter than three digits ("5" -> "005").
// Anything else is returned trimmed but otherwise unchanged.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if len(code) == 0 || len(code) >= 3 {
		return code
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return code
		}
	}
	return strings.Repeat("0", 3-len(code)) + code
}

// Name is the part name for code, e.g. "TTC05103".
func Name(code string) string { return Series + Normalize(code) }

// Nominal returns the resistance at 25 °C encoded by code. Codes with a
// leading zero are plain ohms in this series ("005" is 5 Ω, "090" is 90 Ω);
// the rest are standard SMD markings ("472" is 4.7 kΩ).
func Nominal(code string) (units.Resistance, error) {
	code = Normalize(code)
	if len(code) == 3 && code[0] == '0' {
		ohms, err := strconv.Atoi(code)
		if err != nil || ohms == 0 {
			return units.Resistance{}, errcode.New(errcode.InvalidSMDCode, "ttc05.Nominal", strconv.Quote(code))
		}
		return units.NewResistance(float64(ohms), units.Ohm)
	}
	return smd.Decode(code)
}

// New builds the thermistor model of one catalog part: R0 from Nominal,
// T0 = 25 °C, T1 = 50 °C.
func New(code string) (*ntc.Model, error) {
	code = Normalize(code)
	beta, err := Lookup(code)
	if err != nil {
		return nil, err
	}
	r0, err := Nominal(code)
	if err != nil {
		return nil, err
	}
	return ntc.New(ntc.Config{
		Beta: beta,
		R0:   r0,
		T0:   ntc.DefaultT0,
		T1:   ntc.DefaultT1,
		Name: Name(code),
	})
}
