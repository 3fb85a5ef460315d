package types

// ------------------------
// Quantities
// ------------------------

// Quantity is a value in a named unit, e.g. {temperature, 25, "C"}.
type Quantity struct {
	Family string  `json:"family"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
}

// ------------------------
// Thermistors
// ------------------------

type ThermistorInfo struct {
	Part   string   `json:"part"`             // "TTC05103", "probe", ...
	Vendor string   `json:"vendor,omitempty"` // "TKS"
	Beta   float64  `json:"beta"`             // K
	R0     Quantity `json:"r0"`
	T0     Quantity `json:"t0"`
	R1     Quantity `json:"r1"`
	T1     Quantity `json:"t1"`
}

type CurvePoint struct {
	T Quantity `json:"t"`
	R Quantity `json:"r"`
}

type Curve struct {
	Part   string       `json:"part"`
	Points []CurvePoint `json:"points"`
}

// ------------------------
// Divider readings
// ------------------------

type DividerReading struct {
	Raw uint16 `json:"raw"` // 16-bit ADC counts
	// Node voltage in mV.
	NodeMV int32 `json:"node_mv"`
	// Thousandths of °C (e.g. 23100 => 23.1°C).
	MilliC int32    `json:"milli_c"`
	R      Quantity `json:"r"`
}
