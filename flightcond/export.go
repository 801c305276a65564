package flightcond

import (
	"bytes"
	"fmt"
	"strconv"
)

// CSV形式
func (fc *FlightCondition) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("mach")
	buf.WriteString(",altitude")
	buf.WriteString(",eas")
	buf.WriteString(",cas")
	buf.WriteString(",tas")
	buf.WriteString(",sound_speed")
	buf.WriteString(",pressure")
	buf.WriteString(",temperature")
	buf.WriteString(",density")
	buf.WriteString(",dynamic_viscosity")
	buf.WriteString(",kinematic_viscosity")
	buf.WriteString(",dynamic_pressure")
	buf.WriteString(",reynolds_per_length")
	buf.WriteString(",delta_t")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		buf.WriteString(",")
	}
	writeFloat(fc.Mach)
	writeFloat(fc.Altitude)
	writeFloat(fc.EAS)
	writeFloat(fc.CAS)
	writeFloat(fc.TAS)
	writeFloat(fc.SoundSpeed)
	writeFloat(fc.Pressure)
	writeFloat(fc.Temperature)
	writeFloat(fc.Density)
	writeFloat(fc.DynamicViscosity)
	writeFloat(fc.KinematicViscosity)
	writeFloat(fc.DynamicPressure)
	writeFloat(fc.ReynoldsPerLength)
	buf.WriteString(strconv.FormatFloat(fc.DeltaT, 'f', -1, 64))
	buf.WriteString("\n")
}

// テキスト形式
func (fc *FlightCondition) ToText(buf *bytes.Buffer) {
	lengthLabel := string(fc.Units.Length)
	speedLabel := string(fc.Units.Speed)
	tempLabel := string(fc.Units.Temp)
	if fc.Units.Temp == TempCelsius {
		tempLabel = "°C"
	}

	buf.WriteString(fmt.Sprintf("%-22s %.6g\n", "Mach number", fc.Mach))
	buf.WriteString(fmt.Sprintf("%-22s %.6g %s\n", "Altitude", fc.Altitude, lengthLabel))
	buf.WriteString(fmt.Sprintf("%-22s %.6g %s\n", "EAS", fc.EAS, speedLabel))
	buf.WriteString(fmt.Sprintf("%-22s %.6g %s\n", "CAS", fc.CAS, speedLabel))
	buf.WriteString(fmt.Sprintf("%-22s %.6g %s\n", "TAS", fc.TAS, speedLabel))
	buf.WriteString(fmt.Sprintf("%-22s %.6g %s\n", "Speed of sound", fc.SoundSpeed, speedLabel))
	buf.WriteString(fmt.Sprintf("%-22s %.6g Pa\n", "Pressure", fc.Pressure))
	buf.WriteString(fmt.Sprintf("%-22s %.6g %s\n", "Temperature", fc.Temperature, tempLabel))
	buf.WriteString(fmt.Sprintf("%-22s %.6g kg/m³\n", "Density", fc.Density))
	buf.WriteString(fmt.Sprintf("%-22s %.6g Pa·s\n", "Dynamic viscosity", fc.DynamicViscosity))
	buf.WriteString(fmt.Sprintf("%-22s %.6g m²/s\n", "Kinematic viscosity", fc.KinematicViscosity))
	buf.WriteString(fmt.Sprintf("%-22s %.6g Pa\n", "Dynamic pressure", fc.DynamicPressure))
	buf.WriteString(fmt.Sprintf("%-22s %.6g 1/%s\n", "Reynolds per length", fc.ReynoldsPerLength, lengthLabel))
	buf.WriteString(fmt.Sprintf("%-22s %.6g K\n", "ISA deviation", fc.DeltaT))
}
