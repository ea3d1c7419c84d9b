package input

// PS4 maps a DualShock 4 reported through the driver station onto the
// Gamepad interface.
type PS4 struct {
	NopGamepad
	joy Joystick
}

// NewPS4 returns the PS4 mapping over the given joystick.
func NewPS4(joy Joystick) *PS4 {
	return &PS4{joy: joy}
}

// Name identifies the mapping.
func (g *PS4) Name() string { return "PS4" }

// LeftX returns the left stick X position.
func (g *PS4) LeftX() float64 { return g.joy.RawAxis(0) }

// LeftY returns the left stick Y position. The raw axis reports down as
// positive, so it is inverted.
func (g *PS4) LeftY() float64 { return -g.joy.RawAxis(1) }

// RightX returns the right stick X position.
func (g *PS4) RightX() float64 { return g.joy.RawAxis(2) }

// RightY returns the right stick Y position, inverted like LeftY.
func (g *PS4) RightY() float64 { return -g.joy.RawAxis(5) }

// DPadUp reads the hat switch.
func (g *PS4) DPadUp() bool { return g.joy.POV() == 0 }

// DPadDown reads the hat switch.
func (g *PS4) DPadDown() bool { return g.joy.POV() == 180 }

// DPadLeft reads the hat switch.
func (g *PS4) DPadLeft() bool { return g.joy.POV() == 270 }

// DPadRight reads the hat switch.
func (g *PS4) DPadRight() bool { return g.joy.POV() == 90 }

// LeftBumper returns whether L1 is held.
func (g *PS4) LeftBumper() bool { return g.joy.RawButton(5) }

// RightBumper returns whether R1 is held.
func (g *PS4) RightBumper() bool { return g.joy.RawButton(6) }

// LeftTrigger returns L2 travel. The raw axis rests at -1, so it is
// rescaled from [-1, 1] to [0, 1].
func (g *PS4) LeftTrigger() float64 { return (g.joy.RawAxis(3) + 1) / 2 }

// RightTrigger returns R2 travel, rescaled like LeftTrigger.
func (g *PS4) RightTrigger() float64 { return (g.joy.RawAxis(4) + 1) / 2 }

// LeftButton returns whether square is held.
func (g *PS4) LeftButton() bool { return g.joy.RawButton(1) }

// BottomButton returns whether cross is held.
func (g *PS4) BottomButton() bool { return g.joy.RawButton(2) }

// RightButton returns whether circle is held.
func (g *PS4) RightButton() bool { return g.joy.RawButton(3) }

// TopButton returns whether triangle is held.
func (g *PS4) TopButton() bool { return g.joy.RawButton(4) }

// SelectButton returns whether share is held.
func (g *PS4) SelectButton() bool { return g.joy.RawButton(9) }

// StartButton returns whether options is held.
func (g *PS4) StartButton() bool { return g.joy.RawButton(10) }

// LeftStickButton returns whether L3 is held.
func (g *PS4) LeftStickButton() bool { return g.joy.RawButton(11) }

// RightStickButton returns whether R3 is held.
func (g *PS4) RightStickButton() bool { return g.joy.RawButton(12) }

// Rumble forwards to the device.
func (g *PS4) Rumble(intensity float64) { g.joy.SetRumble(intensity) }
