//go:build tinygo && !oled

package hal

import "machine"

// New returns the LCD-shield HAL: a 1602 panel behind an I2C backpack plus
// the resistor-ladder keypad on ADC0.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// I2C: I2C0 on GP4 (SDA) / GP5 (SCL).
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400_000,
	})

	var disp Display = NullDisplay{}
	if lcd, err := initHD44780(machine.I2C0); err == nil {
		disp = lcd
	} else {
		logger.WriteLineString("hal: " + err.Error())
	}

	machine.InitADC()

	return &tinyGoHAL{
		logger:   logger,
		lcd:      disp,
		keys:     newShieldKeypad(machine.GP26),
		accel:    initMPU6050(machine.I2C0, logger),
		settings: newDeviceSettings(),
	}
}

// shieldKeypad reads the classic 1602-shield resistor ladder: all buttons
// share one ADC pin and each press pulls it to a distinct voltage.
type shieldKeypad struct {
	adc machine.ADC
}

func newShieldKeypad(pin machine.Pin) *shieldKeypad {
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	return &shieldKeypad{adc: adc}
}

func (k *shieldKeypad) Sample() (Key, int16) {
	// The ladder thresholds are calibrated against a 10-bit scale, so fold
	// the 16-bit ADC reading down before comparing.
	raw := int16(k.adc.Get() >> 6)

	key := KeyNone
	switch {
	case raw > 1000:
		key = KeyNone
	case raw < 50:
		key = KeyRight
	case raw < 240:
		key = KeyUp
	case raw < 400:
		key = KeyDown
	case raw < 600:
		key = KeyLeft
	case raw < 920:
		key = KeySelect
	}
	return key, raw
}
