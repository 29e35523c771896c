//go:build tinygo

// Command tilt is the firmware for the RP2040 round-display board: a
// GC9A01 240x240 panel on SPI1 and a QMI8658 IMU on I2C1.
package main

import (
	"context"
	"machine"
	"strconv"
	"time"

	"tinygo.org/x/drivers/gc9a01"

	"github.com/tomz197/spacetilt"
	"github.com/tomz197/spacetilt/internal/config"
	"github.com/tomz197/spacetilt/internal/display"
	"github.com/tomz197/spacetilt/internal/loop"
	"github.com/tomz197/spacetilt/internal/sensor"
)

const (
	lcdSCK       = machine.GP10
	lcdSDO       = machine.GP11
	lcdReset     = machine.GP12
	lcdDC        = machine.GP8
	lcdCS        = machine.GP9
	lcdBacklight = machine.GP25
	imuSDA       = machine.GP6
	imuSCL       = machine.GP7
)

func main() {
	// Give a serial console time to attach before the first diagnostic.
	time.Sleep(time.Second)

	screen, err := initDisplay()
	if err != nil {
		halt("display", err)
	}

	imu, err := initSensor()
	if err != nil {
		halt("sensor", err)
	}
	println("qmi8658 revision", imu.Revision())

	game := loop.New(screen, imu, loop.Options{
		Logger: printLogger{},
	})
	halt("game", game.Run(context.Background()))
}

func initDisplay() (*display.Pixel, error) {
	err := machine.SPI1.Configure(machine.SPIConfig{
		Frequency: 20000000,
		SCK:       lcdSCK,
		SDO:       lcdSDO,
		Mode:      0,
	})
	if err != nil {
		return nil, &display.InitError{Bus: "spi1", Err: err}
	}

	lcd := gc9a01.New(machine.SPI1, lcdReset, lcdDC, lcdCS, lcdBacklight)
	lcd.Configure(gc9a01.Config{
		Orientation: gc9a01.HORIZONTAL,
		Width:       config.ScreenWidth,
		Height:      config.ScreenHeight,
	})
	return display.NewPixel(&lcd, spacetilt.Assets), nil
}

func initSensor() (*sensor.QMI8658, error) {
	err := machine.I2C1.Configure(machine.I2CConfig{
		Frequency: 100 * machine.KHz,
		SDA:       imuSDA,
		SCL:       imuSCL,
	})
	if err != nil {
		return nil, &sensor.InitError{Addr: sensor.DefaultAddress, Err: err}
	}

	imu := sensor.NewQMI8658(machine.I2C1, sensor.DefaultAddress)
	if err := imu.Configure(); err != nil {
		return nil, err
	}
	return imu, nil
}

// halt prints the fatal error and parks the core; only a reset recovers.
func halt(stage string, err error) {
	msg := "stopped"
	if err != nil {
		msg = err.Error()
	}
	for {
		println("fatal:", stage, msg)
		time.Sleep(5 * time.Second)
	}
}

// printLogger writes log lines to the serial console.
type printLogger struct{}

func (printLogger) Debug(interface{}, ...interface{}) {}

func (printLogger) Info(msg interface{}, keyvals ...interface{}) {
	printLine("INFO", msg, keyvals)
}

func (printLogger) Warn(msg interface{}, keyvals ...interface{}) {
	printLine("WARN", msg, keyvals)
}

func (printLogger) Error(msg interface{}, keyvals ...interface{}) {
	printLine("ERRO", msg, keyvals)
}

func printLine(level string, msg interface{}, keyvals []interface{}) {
	print(level, " ", toString(msg))
	for i := 0; i+1 < len(keyvals); i += 2 {
		print(" ", toString(keyvals[i]), "=", toString(keyvals[i+1]))
	}
	println()
}

func toString(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case int:
		return strconv.Itoa(v)
	default:
		return "?"
	}
}
