//go:build tinygo

package hal

import "tinygo.org/x/drivers"

// MPU-6050 register map, the handful this backend touches.
const (
	mpu6050Addr uint16 = 0x68

	mpu6050RegConfig    = 0x1A
	mpu6050RegPwrMgmt1  = 0x6B
	mpu6050RegWhoAmI    = 0x75
	mpu6050RegAccelXOut = 0x3B
	mpu6050RegTempOut   = 0x41
)

// mpuAccel talks to the orientation sensor directly over I2C. The sensor is
// externally mounted and can be unplugged; absence is detected at init and
// every read degrades to ErrNotPresent.
type mpuAccel struct {
	bus     drivers.I2C
	present bool
}

func initMPU6050(bus drivers.I2C, logger Logger) *mpuAccel {
	a := &mpuAccel{bus: bus}

	var id [1]byte
	if err := bus.Tx(mpu6050Addr, []byte{mpu6050RegWhoAmI}, id[:]); err != nil {
		logger.WriteLineString("hal: mpu6050 not detected")
		return a
	}
	if (id[0]>>1)&0x3F != 0x34 {
		logger.WriteLineString("hal: mpu6050 bad WHO_AM_I")
		return a
	}

	// Wake from power-down, then clamp the accelerometer bandwidth to the
	// minimum (5 Hz) to smooth measurement noise.
	bus.Tx(mpu6050Addr, []byte{mpu6050RegPwrMgmt1, 0x00}, nil)
	bus.Tx(mpu6050Addr, []byte{mpu6050RegConfig, 0x06}, nil)

	a.present = true
	return a
}

func (a *mpuAccel) Connected() bool { return a.present }

// Acceleration returns the three raw axis readings scaled to µg
// (±2g full scale, 16384 LSB/g).
func (a *mpuAccel) Acceleration() (x, y, z int32, err error) {
	if !a.present {
		return 0, 0, 0, ErrNotPresent
	}

	var buf [6]byte
	if err := a.bus.Tx(mpu6050Addr, []byte{mpu6050RegAccelXOut}, buf[:]); err != nil {
		return 0, 0, 0, err
	}
	x = int32(int16(uint16(buf[0])<<8|uint16(buf[1]))) * 1000000 / 16384
	y = int32(int16(uint16(buf[2])<<8|uint16(buf[3]))) * 1000000 / 16384
	z = int32(int16(uint16(buf[4])<<8|uint16(buf[5]))) * 1000000 / 16384
	return x, y, z, nil
}

// Temperature returns the die temperature in milli-degrees Celsius.
func (a *mpuAccel) Temperature() (int32, error) {
	if !a.present {
		return 0, ErrNotPresent
	}

	var buf [2]byte
	if err := a.bus.Tx(mpu6050Addr, []byte{mpu6050RegTempOut}, buf[:]); err != nil {
		return 0, err
	}
	raw := int32(int16(uint16(buf[0])<<8 | uint16(buf[1])))
	return raw*1000/340 + 36530, nil
}
