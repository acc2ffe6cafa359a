//go:build tinygo

package hal

import "machine"

type tinyGoHAL struct {
	logger   *uartLogger
	lcd      Display
	keys     Keypad
	accel    Accelerometer
	settings Settings
}

func (h *tinyGoHAL) Logger() Logger               { return h.logger }
func (h *tinyGoHAL) Display() Display             { return h.lcd }
func (h *tinyGoHAL) Keypad() Keypad               { return h.keys }
func (h *tinyGoHAL) Accelerometer() Accelerometer { return h.accel }
func (h *tinyGoHAL) Settings() Settings           { return h.settings }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	l.WriteLineBytes([]byte(s))
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.uart.Write(b)
	l.uart.Write([]byte("\r\n"))
}
