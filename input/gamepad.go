// Package input maps raw joystick devices onto a uniform gamepad interface,
// so robot code reads sticks and buttons by role instead of by vendor
// specific index.
package input

import "github.com/prog694/stuylib/mathx"

// Gamepad is the uniform capability set over any controller. Mappings are
// flat types built from a Joystick; controls a device does not have stay at
// their rest value rather than triggering.
//
// Stick axes follow driver conventions: right is +X, up is +Y. Triggers
// report in [0, 1].
type Gamepad interface {
	// Name identifies the mapping in use.
	Name() string

	// Left stick.
	LeftX() float64
	LeftY() float64

	// Right stick.
	RightX() float64
	RightY() float64

	// D-pad.
	DPadUp() bool
	DPadDown() bool
	DPadLeft() bool
	DPadRight() bool

	// Bumpers.
	LeftBumper() bool
	RightBumper() bool

	// Triggers.
	LeftTrigger() float64
	RightTrigger() float64

	// Face buttons by position.
	TopButton() bool
	BottomButton() bool
	LeftButton() bool
	RightButton() bool

	// Start / select.
	SelectButton() bool
	StartButton() bool

	// Stick click buttons.
	LeftStickButton() bool
	RightStickButton() bool

	// Rumble sets the rumble intensity in [0, 1] where supported.
	Rumble(intensity float64)
}

// NopGamepad implements Gamepad with every control at rest. Concrete
// mappings embed it so a device missing a control never triggers it.
type NopGamepad struct{}

// Name returns an empty name.
func (NopGamepad) Name() string { return "" }

// LeftX reads 0.
func (NopGamepad) LeftX() float64 { return 0 }

// LeftY reads 0.
func (NopGamepad) LeftY() float64 { return 0 }

// RightX reads 0.
func (NopGamepad) RightX() float64 { return 0 }

// RightY reads 0.
func (NopGamepad) RightY() float64 { return 0 }

// DPadUp reads false.
func (NopGamepad) DPadUp() bool { return false }

// DPadDown reads false.
func (NopGamepad) DPadDown() bool { return false }

// DPadLeft reads false.
func (NopGamepad) DPadLeft() bool { return false }

// DPadRight reads false.
func (NopGamepad) DPadRight() bool { return false }

// LeftBumper reads false.
func (NopGamepad) LeftBumper() bool { return false }

// RightBumper reads false.
func (NopGamepad) RightBumper() bool { return false }

// LeftTrigger reads 0.
func (NopGamepad) LeftTrigger() float64 { return 0 }

// RightTrigger reads 0.
func (NopGamepad) RightTrigger() float64 { return 0 }

// TopButton reads false.
func (NopGamepad) TopButton() bool { return false }

// BottomButton reads false.
func (NopGamepad) BottomButton() bool { return false }

// LeftButton reads false.
func (NopGamepad) LeftButton() bool { return false }

// RightButton reads false.
func (NopGamepad) RightButton() bool { return false }

// SelectButton reads false.
func (NopGamepad) SelectButton() bool { return false }

// StartButton reads false.
func (NopGamepad) StartButton() bool { return false }

// LeftStickButton reads false.
func (NopGamepad) LeftStickButton() bool { return false }

// RightStickButton reads false.
func (NopGamepad) RightStickButton() bool { return false }

// Rumble does nothing.
func (NopGamepad) Rumble(intensity float64) {}

// TriggerPressedThreshold is how far a trigger must travel before the
// pressed helpers treat it as a button.
const TriggerPressedThreshold = 0.25

// LeftStick returns the left stick position as a vector.
func LeftStick(g Gamepad) mathx.Vector2D {
	return mathx.Vector2D{X: g.LeftX(), Y: g.LeftY()}
}

// RightStick returns the right stick position as a vector.
func RightStick(g Gamepad) mathx.Vector2D {
	return mathx.Vector2D{X: g.RightX(), Y: g.RightY()}
}

// DPadX treats the d-pad as a stick axis: right minus left.
func DPadX(g Gamepad) float64 {
	x := 0.0
	if g.DPadRight() {
		x++
	}
	if g.DPadLeft() {
		x--
	}
	return x
}

// DPadY treats the d-pad as a stick axis: up minus down.
func DPadY(g Gamepad) float64 {
	y := 0.0
	if g.DPadUp() {
		y++
	}
	if g.DPadDown() {
		y--
	}
	return y
}

// DPad returns the d-pad as if it were a stick.
func DPad(g Gamepad) mathx.Vector2D {
	return mathx.Vector2D{X: DPadX(g), Y: DPadY(g)}
}

// LeftTriggerPressed reports whether the left trigger is past the pressed
// threshold.
func LeftTriggerPressed(g Gamepad) bool {
	return g.LeftTrigger() > TriggerPressedThreshold
}

// RightTriggerPressed reports whether the right trigger is past the pressed
// threshold.
func RightTriggerPressed(g Gamepad) bool {
	return g.RightTrigger() > TriggerPressedThreshold
}

// A Condition reports the live state of a button or derived control, letting
// command schedulers poll gamepad state without knowing the gamepad type.
// Any method value on a Gamepad with a bool result converts directly, e.g.
// Condition(pad.DPadUp).
type Condition func() bool
