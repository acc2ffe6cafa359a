// Package orient derives mount tilt angles and ambient temperature from an
// accelerometer. Entirely independent of the input and rendering paths.
package orient

import (
	"math"
	"time"

	"polaris/hal"
)

// Angles is a pitch/roll pair in degrees.
type Angles struct {
	Pitch float64
	Roll  float64
}

const (
	defaultWindow = 16
	sampleSpacing = 10 * time.Millisecond
)

// Monitor averages accelerometer readings into tilt angles. An absent
// sensor degrades to zero angles and Present() == false.
type Monitor struct {
	accel    hal.Accelerometer
	window   int
	swapAxes bool
	sleep    func(time.Duration)
}

// New returns a monitor over accel. A nil accel degrades to the null
// backend. swapAxes follows the mounting orientation of the sensor board.
func New(accel hal.Accelerometer, swapAxes bool) *Monitor {
	return newWithSleep(accel, swapAxes, defaultWindow, time.Sleep)
}

func newWithSleep(accel hal.Accelerometer, swapAxes bool, window int, sleep func(time.Duration)) *Monitor {
	if accel == nil {
		accel = hal.NullAccelerometer{}
	}
	if window < 1 {
		window = 1
	}
	return &Monitor{accel: accel, window: window, swapAxes: swapAxes, sleep: sleep}
}

// Present reports whether the sensor answered its last probe.
func (m *Monitor) Present() bool {
	return m.accel.Connected()
}

// Angles returns the current pitch and roll in degrees, averaged over the
// sample window with a short pause between samples to decorrelate noise.
// {0, 0} when the sensor is unavailable.
func (m *Monitor) Angles() Angles {
	var out Angles
	if !m.accel.Connected() {
		return out
	}

	for i := 0; i < m.window; i++ {
		x, y, z, err := m.accel.Acceleration()
		if err != nil {
			return Angles{}
		}
		fx, fy, fz := float64(x), float64(y), float64(z)
		out.Pitch += math.Atan2(-fx, math.Sqrt(fy*fy+fz*fz)) * 180 / math.Pi
		out.Roll += math.Atan2(-fy, math.Sqrt(fx*fx+fz*fz)) * 180 / math.Pi

		if i < m.window-1 {
			m.sleep(sampleSpacing)
		}
	}
	out.Pitch /= float64(m.window)
	out.Roll /= float64(m.window)

	if m.swapAxes {
		out.Pitch, out.Roll = out.Roll, out.Pitch
	}
	return out
}

// Temperature returns the sensor die temperature in degrees Celsius, or 0
// when the sensor is unavailable.
func (m *Monitor) Temperature() float64 {
	mc, err := m.accel.Temperature()
	if err != nil {
		return 0
	}
	return float64(mc) / 1000
}
