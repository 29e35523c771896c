package sensor

import (
	"encoding/binary"

	"tinygo.org/x/drivers"
)

// QMI8658 registers.
const (
	DefaultAddress uint16 = 0x6B

	regWhoAmI   = 0x00
	regRevision = 0x01
	regCtrl1    = 0x02
	regAccelX   = 0x35

	whoAmI = 0x05

	// ±8 g full scale: 4096 LSB per g.
	accelLSBPerG = 1 << 12
)

// ctrlDefaults are written to CTRL1..CTRL7: address auto-increment (the
// endian bit only affects SPI; I2C data stays little-endian), ±8 g accelerometer at 1 kHz, ±512 dps gyroscope, low
// pass filters on, both sensors enabled.
var ctrlDefaults = [...]byte{0x60, 0x23, 0x53, 0x00, 0x11, 0x00, 0x03}

// QMI8658 is the 6-axis IMU on the round-display board.
type QMI8658 struct {
	bus      drivers.I2C
	addr     uint16
	revision byte
	buf      [6]byte
}

var _ Accelerometer = (*QMI8658)(nil)

// NewQMI8658 returns a device on bus at addr. Call Configure before reading.
func NewQMI8658(bus drivers.I2C, addr uint16) *QMI8658 {
	if addr == 0 {
		addr = DefaultAddress
	}
	return &QMI8658{bus: bus, addr: addr}
}

// Configure verifies the chip identity and applies the sensor configuration.
// Any other device at the address is rejected.
func (d *QMI8658) Configure() error {
	id, err := d.readByte(regWhoAmI)
	if err != nil {
		return &InitError{Addr: d.addr, Want: whoAmI, Err: err}
	}
	if id != whoAmI {
		return &InitError{Addr: d.addr, ID: id, Want: whoAmI}
	}

	if d.revision, err = d.readByte(regRevision); err != nil {
		return &InitError{Addr: d.addr, Want: whoAmI, Err: err}
	}

	for i, v := range ctrlDefaults {
		if err := d.bus.Tx(d.addr, []byte{regCtrl1 + byte(i), v}, nil); err != nil {
			return &InitError{Addr: d.addr, Want: whoAmI, Err: err}
		}
	}
	return nil
}

// Revision returns the chip revision read by Configure.
func (d *QMI8658) Revision() byte {
	return d.revision
}

// ReadAccelXYZ returns the acceleration in g.
func (d *QMI8658) ReadAccelXYZ() (x, y, z float64, err error) {
	if err := d.bus.Tx(d.addr, []byte{regAccelX}, d.buf[:]); err != nil {
		return 0, 0, 0, unavailable(err, "read acceleration")
	}
	x = float64(int16(binary.LittleEndian.Uint16(d.buf[0:2]))) / accelLSBPerG
	y = float64(int16(binary.LittleEndian.Uint16(d.buf[2:4]))) / accelLSBPerG
	z = float64(int16(binary.LittleEndian.Uint16(d.buf[4:6]))) / accelLSBPerG
	return x, y, z, nil
}

func (d *QMI8658) readByte(reg byte) (byte, error) {
	var b [1]byte
	if err := d.bus.Tx(d.addr, []byte{reg}, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}
