package flightcond

import (
	"math"

	"github.com/khezen/rootfinding"
)

// Display units of a FlightCondition. They affect representation only,
// never the underlying physics.
type LengthUnit string

const (
	LengthMeters LengthUnit = "m"
	LengthFeet   LengthUnit = "ft"
)

type SpeedUnit string

const (
	SpeedMs    SpeedUnit = "m/s"
	SpeedKnots SpeedUnit = "kt"
)

type TempUnit string

const (
	TempKelvin  TempUnit = "K"
	TempCelsius TempUnit = "C"
)

type Units struct {
	Length LengthUnit
	Speed  SpeedUnit
	Temp   TempUnit
}

// SIUnits returns the meters / m/s / Kelvin display selection.
func SIUnits() Units {
	return Units{Length: LengthMeters, Speed: SpeedMs, Temp: TempKelvin}
}

// Inputs selects the known part of the flight state. Exactly two of the
// five fields must be set, and the pair must be one of the six the
// solver algebra supports: {mach, altitude}, {mach, eas}, {mach, cas},
// {altitude, eas}, {altitude, cas}, {altitude, tas}. Values are read in
// the display units passed to NewFlightCondition.
type Inputs struct {
	Mach     *float64
	Altitude *float64 // [m] or [ft]
	EAS      *float64 // [m/s] or [kt]
	CAS      *float64 // [m/s] or [kt]
	TAS      *float64 // [m/s] or [kt]
}

// Float wraps a literal for use as an optional input.
func Float(v float64) *float64 {
	return &v
}

// The six supported input pairs, dispatched on directly by the solver.
type inputPair int

const (
	pairMachAltitude inputPair = iota
	pairMachEAS
	pairMachCAS
	pairAltitudeEAS
	pairAltitudeCAS
	pairAltitudeTAS
)

func (in Inputs) pair() (inputPair, error) {
	fields := []struct {
		name string
		p    *float64
	}{
		{"mach", in.Mach},
		{"altitude", in.Altitude},
		{"eas", in.EAS},
		{"cas", in.CAS},
		{"tas", in.TAS},
	}
	var given []string
	for _, f := range fields {
		if f.p != nil {
			given = append(given, f.name)
		}
	}
	if len(given) != 2 {
		return 0, &InvalidInputCountError{Count: len(given), Given: given}
	}
	switch {
	case in.Mach != nil && in.Altitude != nil:
		return pairMachAltitude, nil
	case in.Mach != nil && in.EAS != nil:
		return pairMachEAS, nil
	case in.Mach != nil && in.CAS != nil:
		return pairMachCAS, nil
	case in.Altitude != nil && in.EAS != nil:
		return pairAltitudeEAS, nil
	case in.Altitude != nil && in.CAS != nil:
		return pairAltitudeCAS, nil
	case in.Altitude != nil && in.TAS != nil:
		return pairAltitudeTAS, nil
	}
	return 0, &InvalidInputPairError{A: given[0], B: given[1]}
}

// Copy of the inputs with altitude and speeds converted to SI.
func (in Inputs) toSI(units Units) Inputs {
	speed := func(p *float64) *float64 {
		if p == nil {
			return nil
		}
		v := *p
		if units.Speed == SpeedKnots {
			v = KtToMs(v)
		}
		return Float(v)
	}
	var out Inputs
	if in.Mach != nil {
		out.Mach = Float(*in.Mach)
	}
	if in.Altitude != nil {
		v := *in.Altitude
		if units.Length == LengthFeet {
			v = FeetToM(v)
		}
		out.Altitude = Float(v)
	}
	out.EAS = speed(in.EAS)
	out.CAS = speed(in.CAS)
	out.TAS = speed(in.TAS)
	return out
}

// FlightCondition is a fully resolved, mutually consistent flight state
// under the ISA model. It is built once by NewFlightCondition (or by a
// unit re-projection of an existing instance) and never mutated.
//
// Pressure, density, the viscosities and the dynamic pressure are always
// SI, whatever the display flags say.
type FlightCondition struct {
	Mach               float64 // Mach number
	Altitude           float64 // [m] or [ft]
	EAS                float64 // equivalent airspeed [m/s] or [kt]
	CAS                float64 // calibrated airspeed [m/s] or [kt]
	TAS                float64 // true airspeed [m/s] or [kt]
	SoundSpeed         float64 // local speed of sound [m/s] or [kt]
	Pressure           float64 // static pressure [Pa]
	Temperature        float64 // [K] or [°C]
	Density            float64 // [kg/m³]
	DynamicViscosity   float64 // [Pa·s]
	KinematicViscosity float64 // [m²/s]
	DynamicPressure    float64 // [Pa]
	ReynoldsPerLength  float64 // Reynolds number per unit length [1/m] or [1/ft]
	DeltaT             float64 // deviation from ISA temperature [K]
	Units              Units
}

// Number of exact decimal digits asked of the Brent solver when
// inverting pressure(h) = P_FL.
const altitudeSolvePrecision = 9

// NewFlightCondition resolves the complete flight state from exactly two
// of {mach, altitude, eas, cas, tas}, an ISA temperature deviation
// deltaT [K] and the display units the inputs are expressed in (outputs
// are projected to the same units).
func NewFlightCondition(in Inputs, deltaT float64, units Units) (*FlightCondition, error) {
	pair, err := in.pair()
	if err != nil {
		return nil, err
	}
	si := in.toSI(units)

	// pressure at the flight level
	var pFL float64
	switch pair {
	case pairMachAltitude, pairAltitudeEAS, pairAltitudeCAS, pairAltitudeTAS:
		pFL, err = Pressure(*si.Altitude)
		if err != nil {
			return nil, err
		}
	case pairMachEAS:
		// EAS = mach * a0 * sqrt(P_FL/P0), inverted for P_FL
		r := *si.EAS / (A0 * *si.Mach)
		pFL = r * r * P0
	case pairMachCAS:
		m := *si.Mach
		if m >= 1 {
			return nil, &SupersonicCASError{Mach: m}
		}
		cr := *si.CAS / A0
		pFL = P0 * (math.Pow(1+0.2*cr*cr, 3.5) - 1) / (math.Pow(1+0.2*m*m, 3.5) - 1)
	}

	// altitude, directly or by inverting the pressure profile
	var altM float64
	if si.Altitude != nil {
		altM = *si.Altitude
	} else {
		altM, err = altitudeForPressure(pFL)
		if err != nil {
			return nil, err
		}
	}

	// atmosphere at the flight level
	tmp, err := Temperature(altM, deltaT)
	if err != nil {
		return nil, err
	}
	rho, err := Density(altM, deltaT)
	if err != nil {
		return nil, err
	}
	mu, err := Viscosity(altM, deltaT)
	if err != nil {
		return nil, err
	}
	a, err := SoundSpeed(altM, deltaT)
	if err != nil {
		return nil, err
	}

	// Mach number
	var mach float64
	switch {
	case si.Mach != nil:
		mach = *si.Mach
	case pair == pairAltitudeTAS:
		mach = *si.TAS / a
	case pair == pairAltitudeEAS:
		mach = *si.EAS / A0 * math.Sqrt(P0/pFL)
	case pair == pairAltitudeCAS:
		mach = machFromCAS(*si.CAS, pFL)
		if mach >= 1 {
			return nil, &SupersonicCASError{Mach: mach}
		}
	}

	// back-fill the airspeeds not supplied as inputs
	tas := a * mach
	if si.TAS != nil {
		tas = *si.TAS
	}
	eas := tas * math.Sqrt(rho/Rho0)
	if si.EAS != nil {
		eas = *si.EAS
	}
	cas := casFromMach(mach, pFL)
	if si.CAS != nil {
		cas = *si.CAS
	}

	nu := mu / rho
	fc := &FlightCondition{
		Mach:               mach,
		Altitude:           altM,
		EAS:                eas,
		CAS:                cas,
		TAS:                tas,
		SoundSpeed:         a,
		Pressure:           pFL,
		Temperature:        tmp,
		Density:            rho,
		DynamicViscosity:   mu,
		KinematicViscosity: nu,
		DynamicPressure:    rho * tas * tas / 2,
		ReynoldsPerLength:  tas / nu,
		DeltaT:             deltaT,
		Units:              SIUnits(),
	}
	out := fc.ConvertUnits(units)

	// literal inputs pass through untouched, no round-trip drift
	if in.Mach != nil {
		out.Mach = *in.Mach
	}
	if in.Altitude != nil {
		out.Altitude = *in.Altitude
	}
	if in.EAS != nil {
		out.EAS = *in.EAS
	}
	if in.CAS != nil {
		out.CAS = *in.CAS
	}
	if in.TAS != nil {
		out.TAS = *in.TAS
	}
	return out, nil
}

// ConvertUnits returns a copy of the flight condition with altitude, the
// airspeeds, the sound speed and the temperature re-projected to the
// given display units. The Reynolds number per length is rescaled by the
// inverse of the length factor. Pressure, density, the viscosities and
// the dynamic pressure are left in SI.
func (fc *FlightCondition) ConvertUnits(units Units) *FlightCondition {
	out := *fc
	if units.Length != fc.Units.Length {
		if units.Length == LengthFeet {
			out.Altitude = MToFeet(fc.Altitude)
			out.ReynoldsPerLength = fc.ReynoldsPerLength * metersPerFoot // [1/m] -> [1/ft]
		} else {
			out.Altitude = FeetToM(fc.Altitude)
			out.ReynoldsPerLength = fc.ReynoldsPerLength / metersPerFoot
		}
	}
	if units.Speed != fc.Units.Speed {
		conv := KtToMs
		if units.Speed == SpeedKnots {
			conv = MsToKt
		}
		out.EAS = conv(fc.EAS)
		out.CAS = conv(fc.CAS)
		out.TAS = conv(fc.TAS)
		out.SoundSpeed = conv(fc.SoundSpeed)
	}
	if units.Temp != fc.Units.Temp {
		if units.Temp == TempCelsius {
			out.Temperature = KToCelsius(fc.Temperature)
		} else {
			out.Temperature = CelsiusToK(fc.Temperature)
		}
	}
	out.Units = units
	return &out
}

// Recover the altitude whose ISA pressure equals pFL [Pa]. The pressure
// profile decreases monotonically over the validity range, so the
// bracketed root is unique when it exists.
func altitudeForPressure(pFL float64) (float64, error) {
	f := func(h float64) float64 {
		p, err := Pressure(h)
		if err != nil {
			return math.NaN()
		}
		return p - pFL
	}
	h, err := rootfinding.Brent(f, MinAltitude, MaxAltitude, altitudeSolvePrecision)
	if err != nil {
		return 0, &AltitudeSolveError{Pressure: pFL, Err: err}
	}
	return h, nil
}

// Subsonic calibrated airspeed relation, inverted for the Mach number.
func machFromCAS(cas float64, pFL float64) float64 {
	cr := cas / A0
	return math.Sqrt(5 * (math.Pow(P0/pFL*(math.Pow(1+0.2*cr*cr, 3.5)-1)+1, 2.0/7.0) - 1))
}

// Subsonic calibrated airspeed from the Mach number and flight-level
// pressure.
func casFromMach(mach float64, pFL float64) float64 {
	return A0 * math.Sqrt(5*(math.Pow(pFL/P0*(math.Pow(1+0.2*mach*mach, 3.5)-1)+1, 2.0/7.0)-1))
}
