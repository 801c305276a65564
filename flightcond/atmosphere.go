package flightcond

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

//--------------------------------------
// 国際標準大気 International Standard Atmosphere (ISA)
//--------------------------------------

// Sea-level reference state and gas properties
const (
	P0    = 101325.0  // sea-level pressure [Pa]
	T0    = 288.15    // sea-level temperature [K]
	Rho0  = 1.225     // sea-level density [kg/m³]
	Mu0   = 1.7894e-5 // sea-level dynamic viscosity [Pa·s]
	Gamma = 1.4       // ratio of specific heats for air

	g0         = 9.80665 // gravitational acceleration [m/s²]
	sutherland = 110.0   // Sutherland constant for air [K]
)

// Computed values (non-constants)
var (
	Rg = P0 / (Rho0 * T0)           // specific gas constant for air [J/(kg·K)]
	A0 = math.Sqrt(Gamma * Rg * T0) // sea-level speed of sound [m/s]
)

// Validity range of the layer model
const (
	MinAltitude = -610.0  // [m]
	MaxAltitude = 84852.0 // [m]
)

// Layer boundaries and temperature lapse rates of the seven ISA layers.
// LayerBases[i] is the base altitude of layer i; the last entry is the
// top of the model.
var (
	LayerBases  = []float64{0, 11000, 20000, 32000, 47000, 51000, 71000, 84852} // [m]
	LayerLapses = []float64{-6.5e-3, 0, 1.0e-3, 2.8e-3, 0, -2.8e-3, -2.0e-3}    // [K/m]
)

// One band of the ISA with a constant lapse rate. The base values of
// layers 1..6 are not independent constants: they are the model itself
// evaluated at the layer's base altitude with the previous layer's
// closed form.
type AtmosphereLayer struct {
	BaseAltitude    float64 // [m]
	LapseRate       float64 // [K/m]
	BaseTemperature float64 // [K]
	BasePressure    float64 // [Pa]
	BaseDensity     float64 // [kg/m³]
}

// Immutable layer table, bootstrapped once in ascending order from the
// sea-level seeds before any query runs.
var isaLayers = buildLayerTable()

func buildLayerTable() [7]AtmosphereLayer {
	var layers [7]AtmosphereLayer
	layers[0] = AtmosphereLayer{
		BaseAltitude:    LayerBases[0],
		LapseRate:       LayerLapses[0],
		BaseTemperature: T0,
		BasePressure:    P0,
		BaseDensity:     Rho0,
	}
	for i := 1; i < len(layers); i++ {
		prev := layers[i-1]
		h := LayerBases[i]
		layers[i] = AtmosphereLayer{
			BaseAltitude:    h,
			LapseRate:       LayerLapses[i],
			BaseTemperature: prev.temperatureAt(h, 0),
			BasePressure:    prev.pressureAt(h),
			BaseDensity:     prev.densityAt(h),
		}
	}
	return layers
}

// Standard temperature within the layer, shifted by the ISA deviation
// deltaT [K].
func (l AtmosphereLayer) temperatureAt(altM float64, deltaT float64) float64 {
	return l.BaseTemperature + l.LapseRate*(altM-l.BaseAltitude) + deltaT
}

// Pressure within the layer. The deviation from ISA does not enter: the
// hydrostatic pressure profile is a function of altitude only.
func (l AtmosphereLayer) pressureAt(altM float64) float64 {
	if l.LapseRate == 0 {
		return l.BasePressure * math.Exp(-g0*(altM-l.BaseAltitude)/(Rg*l.BaseTemperature))
	}
	return l.BasePressure * math.Pow(l.temperatureAt(altM, 0)/l.BaseTemperature, -g0/(Rg*l.LapseRate))
}

// Standard (deltaT = 0) density within the layer.
func (l AtmosphereLayer) densityAt(altM float64) float64 {
	if l.LapseRate == 0 {
		return l.BaseDensity * math.Exp(-g0*(altM-l.BaseAltitude)/(Rg*l.BaseTemperature))
	}
	return l.BaseDensity * math.Pow(l.temperatureAt(altM, 0)/l.BaseTemperature, -g0/(Rg*l.LapseRate)-1)
}

// LayerIndex returns the index (0..6) of the layer containing the given
// altitude [m]. Altitudes at or below sea level map to the first layer.
func LayerIndex(altM float64) (int, error) {
	if altM < MinAltitude || altM > MaxAltitude {
		return 0, &OutOfRangeError{Altitude: altM}
	}
	if altM <= 0 {
		return 0, nil
	}
	// smallest boundary >= altM, then step down to the containing layer
	i := 0
	for LayerBases[i] < altM {
		i++
	}
	return i - 1, nil
}

// Temperature returns the air temperature [K] at altitude altM [m] with
// an ISA deviation deltaT [K].
func Temperature(altM float64, deltaT float64) (float64, error) {
	i, err := LayerIndex(altM)
	if err != nil {
		return 0, err
	}
	return isaLayers[i].temperatureAt(altM, deltaT), nil
}

// Pressure returns the static pressure [Pa] at altitude altM [m].
func Pressure(altM float64) (float64, error) {
	i, err := LayerIndex(altM)
	if err != nil {
		return 0, err
	}
	return isaLayers[i].pressureAt(altM), nil
}

// Density returns the air density [kg/m³] at altitude altM [m] with an
// ISA deviation deltaT [K]. With a deviation the simple layer closed
// form no longer holds and the density falls back to the ideal gas law
// with the unshifted pressure.
func Density(altM float64, deltaT float64) (float64, error) {
	i, err := LayerIndex(altM)
	if err != nil {
		return 0, err
	}
	if scalar.EqualWithinAbs(deltaT, 0, 1e-12) {
		return isaLayers[i].densityAt(altM), nil
	}
	return isaLayers[i].pressureAt(altM) / (Rg * isaLayers[i].temperatureAt(altM, deltaT)), nil
}

// Viscosity returns the dynamic viscosity [Pa·s] at altitude altM [m]
// with an ISA deviation deltaT [K], using Sutherland's law.
func Viscosity(altM float64, deltaT float64) (float64, error) {
	t, err := Temperature(altM, deltaT)
	if err != nil {
		return 0, err
	}
	return Mu0 * math.Pow(t/T0, 1.5) * (T0 + sutherland) / (t + sutherland), nil
}

// SoundSpeed returns the speed of sound [m/s] at altitude altM [m] with
// an ISA deviation deltaT [K].
func SoundSpeed(altM float64, deltaT float64) (float64, error) {
	t, err := Temperature(altM, deltaT)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(Gamma * Rg * t), nil
}
