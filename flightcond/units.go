package flightcond

//--------------------------------------
// 単位換算 Unit conversions
//--------------------------------------

const (
	metersPerFoot = 0.3048         // [m/ft]
	msPerKnot     = 1852.0 / 3600.0 // [m/s per kt]
	zeroCelsius   = 273.15          // [K]
)

func FeetToM(ft float64) float64 {
	return ft * metersPerFoot
}

func MToFeet(m float64) float64 {
	return m / metersPerFoot
}

func KtToMs(kt float64) float64 {
	return kt * msPerKnot
}

func MsToKt(ms float64) float64 {
	return ms / msPerKnot
}

func CelsiusToK(c float64) float64 {
	return c + zeroCelsius
}

func KToCelsius(k float64) float64 {
	return k - zeroCelsius
}
