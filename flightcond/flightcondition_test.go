package flightcond

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// {mach, altitude} から全量を解決し、相互に整合していることを確認する
func Test_NewFlightCondition_MachAltitude(t *testing.T) {
	fc, err := NewFlightCondition(Inputs{Mach: Float(0.8), Altitude: Float(11000)}, 0, SIUnits())
	assert.NoError(t, err)

	a, err := SoundSpeed(11000, 0)
	assert.NoError(t, err)
	assert.InDelta(t, 0.8, fc.TAS/a, 1e-9)
	assert.InDelta(t, a, fc.SoundSpeed, 1e-9)

	p, err := Pressure(11000)
	assert.NoError(t, err)
	assert.InDelta(t, p, fc.Pressure, 1e-6)

	assert.InDelta(t, fc.TAS*math.Sqrt(fc.Density/Rho0), fc.EAS, 1e-9)
	assert.InDelta(t, fc.Density*fc.TAS*fc.TAS/2, fc.DynamicPressure, 1e-6)
	assert.InDelta(t, fc.DynamicViscosity/fc.Density, fc.KinematicViscosity, 1e-12)
	assert.InDelta(t, fc.TAS/fc.KinematicViscosity, fc.ReynoldsPerLength, 1e-3)
}

// {altitude, eas} で解いたマッハ数から {mach, eas} で高度を再構成する
func Test_NewFlightCondition_AltitudeRecovery(t *testing.T) {
	fc1, err := NewFlightCondition(Inputs{Altitude: Float(11000), EAS: Float(150)}, 0, SIUnits())
	assert.NoError(t, err)

	fc2, err := NewFlightCondition(Inputs{Mach: Float(fc1.Mach), EAS: Float(150)}, 0, SIUnits())
	assert.NoError(t, err)
	assert.InDelta(t, 11000, fc2.Altitude, 0.01)
}

// 6種類の入力ペアすべてが同一の飛行状態を再現する
func Test_NewFlightCondition_AllPairsConsistent(t *testing.T) {
	ref, err := NewFlightCondition(Inputs{Mach: Float(0.78), Altitude: Float(10500)}, 0, SIUnits())
	assert.NoError(t, err)

	pairs := []Inputs{
		{Mach: Float(ref.Mach), EAS: Float(ref.EAS)},
		{Mach: Float(ref.Mach), CAS: Float(ref.CAS)},
		{Altitude: Float(ref.Altitude), EAS: Float(ref.EAS)},
		{Altitude: Float(ref.Altitude), CAS: Float(ref.CAS)},
		{Altitude: Float(ref.Altitude), TAS: Float(ref.TAS)},
	}
	for i, in := range pairs {
		fc, err := NewFlightCondition(in, 0, SIUnits())
		assert.NoError(t, err, "pair %d", i)
		assert.InDelta(t, ref.Mach, fc.Mach, 1e-6, "pair %d", i)
		assert.InDelta(t, ref.Altitude, fc.Altitude, 0.01, "pair %d", i)
		assert.InDelta(t, ref.TAS, fc.TAS, 1e-3, "pair %d", i)
	}
}

// ΔT は気温・密度・音速に伝播し、気圧には影響しない
func Test_NewFlightCondition_DeltaT(t *testing.T) {
	std, err := NewFlightCondition(Inputs{Mach: Float(0.5), Altitude: Float(6000)}, 0, SIUnits())
	assert.NoError(t, err)
	hot, err := NewFlightCondition(Inputs{Mach: Float(0.5), Altitude: Float(6000)}, 15, SIUnits())
	assert.NoError(t, err)

	assert.InDelta(t, std.Temperature+15, hot.Temperature, 1e-9)
	assert.Equal(t, std.Pressure, hot.Pressure)
	assert.Less(t, hot.Density, std.Density)
	assert.Greater(t, hot.SoundSpeed, std.SoundSpeed)
}

func Test_NewFlightCondition_InvalidInputCount(t *testing.T) {
	var cnt *InvalidInputCountError

	cases := []Inputs{
		{},
		{Mach: Float(0.8)},
		{Mach: Float(0.8), Altitude: Float(1000), EAS: Float(100)},
		{Mach: Float(0.8), Altitude: Float(1000), EAS: Float(100), CAS: Float(100), TAS: Float(100)},
	}
	for i, in := range cases {
		_, err := NewFlightCondition(in, 0, SIUnits())
		assert.ErrorAs(t, err, &cnt, "case %d", i)
	}
}

func Test_NewFlightCondition_InvalidInputPair(t *testing.T) {
	var pair *InvalidInputPairError

	_, err := NewFlightCondition(Inputs{EAS: Float(100), CAS: Float(120)}, 0, SIUnits())
	assert.ErrorAs(t, err, &pair)

	_, err = NewFlightCondition(Inputs{Mach: Float(0.8), TAS: Float(230)}, 0, SIUnits())
	assert.ErrorAs(t, err, &pair)
}

// EASがマッハ数に対して大きすぎると海面気圧を超え、解決できない
func Test_NewFlightCondition_AltitudeSolveFailure(t *testing.T) {
	var solve *AltitudeSolveError

	_, err := NewFlightCondition(Inputs{Mach: Float(0.3), EAS: Float(200)}, 0, SIUnits())
	assert.ErrorAs(t, err, &solve)
}

func Test_NewFlightCondition_SupersonicCAS(t *testing.T) {
	var sup *SupersonicCASError

	_, err := NewFlightCondition(Inputs{Mach: Float(1.2), CAS: Float(300)}, 0, SIUnits())
	assert.ErrorAs(t, err, &sup)
}

// 単位変換の往復で物理状態が保存される
func Test_ConvertUnits_RoundTrip(t *testing.T) {
	fc, err := NewFlightCondition(Inputs{Mach: Float(0.8), Altitude: Float(11000)}, 0, SIUnits())
	assert.NoError(t, err)

	imperial := fc.ConvertUnits(Units{Length: LengthFeet, Speed: SpeedKnots, Temp: TempCelsius})
	back := imperial.ConvertUnits(SIUnits())

	assert.InDelta(t, fc.Altitude, back.Altitude, 1e-9)
	assert.InDelta(t, fc.TAS, back.TAS, 1e-9)
	assert.InDelta(t, fc.EAS, back.EAS, 1e-9)
	assert.InDelta(t, fc.CAS, back.CAS, 1e-9)
	assert.InDelta(t, fc.SoundSpeed, back.SoundSpeed, 1e-9)
	assert.InDelta(t, fc.Temperature, back.Temperature, 1e-9)
	assert.InDelta(t, fc.ReynoldsPerLength, back.ReynoldsPerLength, 1e-3)

	// pressure, density and the viscosities stay SI across projections
	assert.Equal(t, fc.Pressure, imperial.Pressure)
	assert.Equal(t, fc.Density, imperial.Density)
	assert.Equal(t, fc.DynamicViscosity, imperial.DynamicViscosity)
	assert.Equal(t, fc.KinematicViscosity, imperial.KinematicViscosity)
	assert.Equal(t, fc.DynamicPressure, imperial.DynamicPressure)

	// Reynolds per length rescales by the inverse length factor
	assert.InDelta(t, fc.ReynoldsPerLength*0.3048, imperial.ReynoldsPerLength, 1e-3)
}

// 入力値はそのままの表示単位で出力に現れる（往復変換による誤差を入れない）
func Test_NewFlightCondition_LiteralPassthrough(t *testing.T) {
	units := Units{Length: LengthFeet, Speed: SpeedKnots, Temp: TempCelsius}
	fc, err := NewFlightCondition(Inputs{Altitude: Float(36089.2), CAS: Float(250)}, 0, units)
	assert.NoError(t, err)

	assert.Equal(t, 36089.2, fc.Altitude)
	assert.Equal(t, 250.0, fc.CAS)
	assert.Equal(t, units, fc.Units)
}

func Test_Export(t *testing.T) {
	fc, err := NewFlightCondition(Inputs{Mach: Float(0.8), Altitude: Float(11000)}, 0, SIUnits())
	assert.NoError(t, err)

	var csv bytes.Buffer
	fc.ToCSV(&csv)
	lines := strings.Split(strings.TrimRight(csv.String(), "\n"), "\n")
	assert.Equal(t, 2, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "mach,altitude,"))
	assert.Equal(t, len(strings.Split(lines[0], ",")), len(strings.Split(lines[1], ",")))

	var txt bytes.Buffer
	fc.ToText(&txt)
	assert.Contains(t, txt.String(), "Mach number")
	assert.Contains(t, txt.String(), "Reynolds per length")
}
