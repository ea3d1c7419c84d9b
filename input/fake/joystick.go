// Package fake provides a scriptable joystick for tests and samples.
package fake

import "sync"

// Joystick is an in-memory joystick whose axes, buttons, and hat can be set
// directly. It is safe for concurrent use so a test can drive it while the
// code under test polls it.
type Joystick struct {
	mu      sync.Mutex
	name    string
	axes    map[int]float64
	buttons map[int]bool
	pov     int
	rumble  float64
}

// NewJoystick returns a joystick with every control at rest.
func NewJoystick(name string) *Joystick {
	return &Joystick{
		name:    name,
		axes:    map[int]float64{},
		buttons: map[int]bool{},
		pov:     -1,
	}
}

// Name returns the device name.
func (j *Joystick) Name() string {
	return j.name
}

// RawAxis returns the scripted axis position, 0 if never set.
func (j *Joystick) RawAxis(axis int) float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.axes[axis]
}

// RawButton returns the scripted button state, false if never set.
func (j *Joystick) RawButton(button int) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.buttons[button]
}

// POV returns the scripted hat direction, -1 if at rest.
func (j *Joystick) POV() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.pov
}

// SetRumble records the most recent rumble intensity.
func (j *Joystick) SetRumble(intensity float64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.rumble = intensity
}

// SetAxis scripts an axis position.
func (j *Joystick) SetAxis(axis int, value float64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.axes[axis] = value
}

// SetButton scripts a button state.
func (j *Joystick) SetButton(button int, pressed bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.buttons[button] = pressed
}

// SetPOV scripts the hat direction in degrees clockwise from up, -1 for at
// rest.
func (j *Joystick) SetPOV(direction int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.pov = direction
}

// Rumble returns the most recent rumble intensity set on the device.
func (j *Joystick) Rumble() float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.rumble
}
