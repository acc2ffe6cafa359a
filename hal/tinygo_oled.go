//go:build tinygo && oled

package hal

import "machine"

// New returns the OLED HAL: a 128x32 SSD1306 used as a 16x2 character
// surface, with a two-axis analog joystick for input.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// I2C: I2C0 on GP4 (SDA) / GP5 (SCL).
// Joystick: X on GP26, Y on GP27, push on GP22 (active low).
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
	if oled, err := initSSD1306(machine.I2C0); err == nil {
		disp = oled
	} else {
		logger.WriteLineString("hal: " + err.Error())
	}

	machine.InitADC()

	return &tinyGoHAL{
		logger:   logger,
		lcd:      disp,
		keys:     newJoystickKeypad(machine.GP26, machine.GP27, machine.GP22),
		accel:    initMPU6050(machine.I2C0, logger),
		settings: newDeviceSettings(),
	}
}

// joystickKeypad folds a two-axis stick plus push button into one key.
// Later assignments win, so the priority order is fixed: right, left, up,
// down, and the push button overrides all of them.
type joystickKeypad struct {
	x    machine.ADC
	y    machine.ADC
	push machine.Pin
}

func newJoystickKeypad(xPin, yPin, pushPin machine.Pin) *joystickKeypad {
	x := machine.ADC{Pin: xPin}
	x.Configure(machine.ADCConfig{})
	y := machine.ADC{Pin: yPin}
	y.Configure(machine.ADCConfig{})
	pushPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &joystickKeypad{x: x, y: y, push: pushPin}
}

func (k *joystickKeypad) Sample() (Key, int16) {
	const (
		midscale = 0x8000
		deadband = 0x2000
	)

	x := int(k.x.Get())
	y := int(k.y.Get())
	push := !k.push.Get() // active low

	key := KeyNone
	if x > midscale+deadband {
		key = KeyRight
	}
	if x < midscale-deadband {
		key = KeyLeft
	}
	if y > midscale+deadband {
		key = KeyUp
	}
	if y < midscale-deadband {
		key = KeyDown
	}
	if push {
		key = KeySelect
	}
	return key, int16(x >> 6)
}
