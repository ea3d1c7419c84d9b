package input

// POVReleased is reported by Joystick.POV when the hat switch is at rest.
const POVReleased = -1

// Joystick is the raw device boundary: numbered axes and buttons plus a POV
// hat, exactly as a driver station or OS driver reports them. Hardware
// backends live outside this module; the fake package provides a scriptable
// implementation for tests.
type Joystick interface {
	// Name identifies the underlying device.
	Name() string

	// RawAxis returns the position of the numbered axis in [-1, 1].
	// Unknown axes read 0.
	RawAxis(axis int) float64

	// RawButton returns whether the numbered button is held. Unknown
	// buttons read false.
	RawButton(button int) bool

	// POV returns the hat switch direction in degrees clockwise from up,
	// or POVReleased when it is at rest.
	POV() int

	// SetRumble sets the rumble intensity in [0, 1] on devices that
	// support it.
	SetRumble(intensity float64)
}
