package input

import "github.com/pkg/errors"

// LogitechMode selects which of the two layouts the physical switch on the
// back of a Logitech gamepad has engaged. The two modes renumber axes and
// buttons, so the mapping dispatches on the mode explicitly.
type LogitechMode uint8

const (
	// ModeD is the switch in the D position: digital triggers reported as
	// buttons.
	ModeD LogitechMode = iota
	// ModeX is the switch in the X position: analog triggers reported as
	// axes.
	ModeX
)

// Logitech maps a Logitech gamepad in either switch mode onto the Gamepad
// interface.
type Logitech struct {
	NopGamepad
	joy  Joystick
	mode LogitechMode
}

// NewLogitech returns the Logitech mapping over the given joystick for the
// given switch mode.
func NewLogitech(joy Joystick, mode LogitechMode) (*Logitech, error) {
	if mode != ModeD && mode != ModeX {
		return nil, errors.Errorf("unknown logitech mode %d", mode)
	}
	return &Logitech{joy: joy, mode: mode}, nil
}

// Name identifies the mapping and mode.
func (g *Logitech) Name() string {
	if g.mode == ModeD {
		return "Logitech D-Mode"
	}
	return "Logitech X-Mode"
}

// LeftX returns the left stick X position.
func (g *Logitech) LeftX() float64 { return g.joy.RawAxis(0) }

// LeftY returns the left stick Y position, inverted so up is positive.
func (g *Logitech) LeftY() float64 { return -g.joy.RawAxis(1) }

// RightX returns the right stick X position.
func (g *Logitech) RightX() float64 {
	if g.mode == ModeD {
		return g.joy.RawAxis(2)
	}
	return g.joy.RawAxis(4)
}

// RightY returns the right stick Y position, inverted so up is positive.
func (g *Logitech) RightY() float64 {
	if g.mode == ModeD {
		return -g.joy.RawAxis(3)
	}
	return -g.joy.RawAxis(5)
}

// DPadUp reads the hat switch.
func (g *Logitech) DPadUp() bool { return g.joy.POV() == 0 }

// DPadDown reads the hat switch.
func (g *Logitech) DPadDown() bool { return g.joy.POV() == 180 }

// DPadLeft reads the hat switch.
func (g *Logitech) DPadLeft() bool { return g.joy.POV() == 270 }

// DPadRight reads the hat switch.
func (g *Logitech) DPadRight() bool { return g.joy.POV() == 90 }

// LeftBumper returns whether the left bumper is held.
func (g *Logitech) LeftBumper() bool { return g.joy.RawButton(5) }

// RightBumper returns whether the right bumper is held.
func (g *Logitech) RightBumper() bool { return g.joy.RawButton(6) }

// LeftTrigger returns left trigger travel. D mode has digital triggers, so
// it reports 0 or 1.
func (g *Logitech) LeftTrigger() float64 {
	if g.mode == ModeD {
		if g.joy.RawButton(7) {
			return 1
		}
		return 0
	}
	return g.joy.RawAxis(2)
}

// RightTrigger returns right trigger travel, digital in D mode like
// LeftTrigger.
func (g *Logitech) RightTrigger() float64 {
	if g.mode == ModeD {
		if g.joy.RawButton(8) {
			return 1
		}
		return 0
	}
	return g.joy.RawAxis(3)
}

// LeftButton returns whether the left face button (X) is held.
func (g *Logitech) LeftButton() bool {
	if g.mode == ModeD {
		return g.joy.RawButton(1)
	}
	return g.joy.RawButton(3)
}

// BottomButton returns whether the bottom face button (A) is held.
func (g *Logitech) BottomButton() bool {
	if g.mode == ModeD {
		return g.joy.RawButton(2)
	}
	return g.joy.RawButton(1)
}

// RightButton returns whether the right face button (B) is held.
func (g *Logitech) RightButton() bool {
	if g.mode == ModeD {
		return g.joy.RawButton(3)
	}
	return g.joy.RawButton(2)
}

// TopButton returns whether the top face button (Y) is held.
func (g *Logitech) TopButton() bool { return g.joy.RawButton(4) }

// SelectButton returns whether back is held.
func (g *Logitech) SelectButton() bool {
	if g.mode == ModeD {
		return g.joy.RawButton(9)
	}
	return g.joy.RawButton(7)
}

// StartButton returns whether start is held.
func (g *Logitech) StartButton() bool {
	if g.mode == ModeD {
		return g.joy.RawButton(10)
	}
	return g.joy.RawButton(8)
}

// LeftStickButton returns whether the left stick is clicked.
func (g *Logitech) LeftStickButton() bool {
	if g.mode == ModeD {
		return g.joy.RawButton(11)
	}
	return g.joy.RawButton(9)
}

// RightStickButton returns whether the right stick is clicked.
func (g *Logitech) RightStickButton() bool {
	if g.mode == ModeD {
		return g.joy.RawButton(12)
	}
	return g.joy.RawButton(10)
}

// Rumble forwards to the device.
func (g *Logitech) Rumble(intensity float64) { g.joy.SetRumble(intensity) }
