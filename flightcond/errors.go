package flightcond

import (
	"fmt"
)

// OutOfRangeError is returned when an altitude falls outside the layer
// model's validity range.
type OutOfRangeError struct {
	Altitude float64 // offending altitude [m]
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("flightcond: altitude %.1f m outside ISA range [%.0f, %.0f] m", e.Altitude, MinAltitude, MaxAltitude)
}

// InvalidInputCountError is returned when the number of supplied flight
// state inputs differs from two.
type InvalidInputCountError struct {
	Count int      // number of inputs supplied
	Given []string // names of the supplied inputs
}

func (e *InvalidInputCountError) Error() string {
	return fmt.Sprintf("flightcond: exactly 2 of mach/altitude/eas/cas/tas must be given, got %d %v", e.Count, e.Given)
}

// InvalidInputPairError is returned for a two-input combination the
// solver algebra does not support.
type InvalidInputPairError struct {
	A, B string // names of the supplied inputs
}

func (e *InvalidInputPairError) Error() string {
	return fmt.Sprintf("flightcond: unsupported input pair {%s, %s}", e.A, e.B)
}

// AltitudeSolveError is returned when no altitude within the ISA range
// matches the pressure implied by the inputs.
type AltitudeSolveError struct {
	Pressure float64 // target pressure [Pa]
	Err      error   // root-finder failure
}

func (e *AltitudeSolveError) Error() string {
	return fmt.Sprintf("flightcond: no altitude in [%.0f, %.0f] m matches pressure %.3f Pa: %v", MinAltitude, MaxAltitude, e.Pressure, e.Err)
}

func (e *AltitudeSolveError) Unwrap() error {
	return e.Err
}

// SupersonicCASError is returned when a calibrated airspeed conversion
// would be evaluated above Mach 1. The implemented relation is the
// subsonic one.
type SupersonicCASError struct {
	Mach float64
}

func (e *SupersonicCASError) Error() string {
	return fmt.Sprintf("flightcond: calibrated airspeed conversion is subsonic only (Mach %.3f)", e.Mach)
}
