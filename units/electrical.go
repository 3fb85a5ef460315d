package units

// Electrical is implemented by Resistance, Voltage and Current only; it is
// the capability Ohm's Law operates on.
type Electrical interface {
	Family() Family
	// SI is the value in Ω, V or A.
	SI() float64
	String() string
	electrical()
}

var (
	_ Electrical = Resistance{}
	_ Electrical = Voltage{}
	_ Electrical = Current{}
)
