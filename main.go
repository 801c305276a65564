// FlightCond
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/akamensky/argparse"
	"github.com/flightbench/flightcond-go/flightcond"
	"github.com/hhkbp2/go-logging"
)

func main() {
	// コマンドライン引数の処理
	parser := argparse.NewParser("FlightCond", "Computes a consistent ISA flight condition from two of mach/altitude/EAS/CAS/TAS")

	mach := parser.String("m", "mach", &argparse.Options{
		Default: "",
		Help:    "Mach number"})

	altitude := parser.String("a", "altitude", &argparse.Options{
		Default: "",
		Help:    "Altitude [m or ft]"})

	eas := parser.String("", "eas", &argparse.Options{
		Default: "",
		Help:    "Equivalent airspeed [m/s or kt]"})

	cas := parser.String("", "cas", &argparse.Options{
		Default: "",
		Help:    "Calibrated airspeed [m/s or kt]"})

	tas := parser.String("", "tas", &argparse.Options{
		Default: "",
		Help:    "True airspeed [m/s or kt]"})

	dt := parser.String("", "dt", &argparse.Options{
		Default: "0",
		Help:    "Temperature deviation from ISA [K]"})

	lengthUnit := parser.Selector("", "length", []string{"m", "ft"}, &argparse.Options{
		Default: "m",
		Help:    "Length display unit"})

	speedUnit := parser.Selector("", "speed", []string{"m/s", "kt"}, &argparse.Options{
		Default: "m/s",
		Help:    "Speed display unit"})

	tempUnit := parser.Selector("", "temp", []string{"K", "C"}, &argparse.Options{
		Default: "K",
		Help:    "Temperature display unit"})

	format := parser.Selector("f", "format", []string{"text", "csv"}, &argparse.Options{
		Default: "text",
		Help:    "Output format"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	// ログレベル設定
	logger := logging.GetLogger("flightcond")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	in := flightcond.Inputs{
		Mach:     parseOptional("mach", *mach),
		Altitude: parseOptional("altitude", *altitude),
		EAS:      parseOptional("eas", *eas),
		CAS:      parseOptional("cas", *cas),
		TAS:      parseOptional("tas", *tas),
	}
	units := flightcond.Units{
		Length: flightcond.LengthUnit(*lengthUnit),
		Speed:  flightcond.SpeedUnit(*speedUnit),
		Temp:   flightcond.TempUnit(*tempUnit),
	}
	deltaT, errDT := strconv.ParseFloat(*dt, 64)
	if errDT != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid dt %q\n", *dt)
		os.Exit(1)
	}

	// 飛行状態の解決
	fc, err := flightcond.NewFlightCondition(in, deltaT, units)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	logger.Debugf("resolved state: mach=%.4f altitude=%.1f %s pressure=%.1f Pa",
		fc.Mach, fc.Altitude, fc.Units.Length, fc.Pressure)

	// 保存
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	if *format == "csv" {
		fc.ToCSV(buf)
	} else {
		fc.ToText(buf)
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			panic(err)
		}
	}
}

func parseOptional(name string, s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid %s %q\n", name, s)
		os.Exit(1)
	}
	return &v
}
