package types

// ThermistorConfig is a thermistor model supplied by file (YAML or JSON)
// instead of a catalog code. Quantities are strings in the units syntax,
// e.g. "100kΩ", "0C".
type ThermistorConfig struct {
	Name string  `json:"name,omitempty"`
	Beta float64 `json:"beta"`
	R0   string  `json:"r0"`
	T0   string  `json:"t0,omitempty"` // default 25C
	T1   string  `json:"t1,omitempty"` // default 50C
}
