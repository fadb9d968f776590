package formula

import "github.com/soyroberto/roblox/pkg/catalog"

// InputSpec names one numeric input a formula consumes and the default used
// when the caller omits it.
type InputSpec struct {
	Name    string
	Default float64
}

// Formula is the interface every capacity formula must implement. One
// formula is registered per component type; adding support for a new type
// means adding a formula package, not touching dispatch code.
type Formula interface {
	// ComponentType returns the component type this formula serves.
	ComponentType() catalog.ComponentType

	// Inputs declares the named inputs and their defaults. The calculator
	// fills defaults and validates values before calling Calculate.
	Inputs() []InputSpec

	// Calculate derives capacity metrics from a fully-populated, validated
	// input map and returns them with a human-readable explanation.
	Calculate(inputs map[string]float64) (map[string]float64, string)
}
