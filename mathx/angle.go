// Package mathx provides small planar math helpers shared by the input and
// streams packages: normalized angles and 2D vectors.
package mathx

import "math"

// NormalizeRadians normalizes an angle in radians to within pi of the given
// center.
func NormalizeRadians(radians, center float64) float64 {
	return radians - 2*math.Pi*math.Floor((radians+math.Pi-center)/(2*math.Pi))
}

// NormalizeDegrees normalizes an angle in degrees to within 180 of the given
// center.
func NormalizeDegrees(degrees, center float64) float64 {
	return degrees - 360*math.Floor((degrees+180-center)/360)
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Angle is a planar angle stored normalized to [-pi, pi). Using a dedicated
// type instead of a bare float64 removes unit ambiguity at call sites.
type Angle struct {
	radians float64
}

// Radians returns the angle for a value in radians.
func Radians(radians float64) Angle {
	return Angle{radians: NormalizeRadians(radians, 0)}
}

// Degrees returns the angle for a value in degrees.
func Degrees(degrees float64) Angle {
	return Radians(DegToRad(degrees))
}

// Radians returns the angle in radians centered around zero.
func (a Angle) Radians() float64 {
	return a.radians
}

// RadiansAround returns the angle in radians normalized around the given
// center.
func (a Angle) RadiansAround(center float64) float64 {
	return NormalizeRadians(a.radians, center)
}

// Degrees returns the angle in degrees centered around zero.
func (a Angle) Degrees() float64 {
	return RadToDeg(a.radians)
}

// DegreesAround returns the angle in degrees normalized around the given
// center.
func (a Angle) DegreesAround(center float64) float64 {
	return NormalizeDegrees(RadToDeg(a.radians), center)
}

// Add returns the sum of the two angles.
func (a Angle) Add(other Angle) Angle {
	return Radians(a.radians + other.radians)
}

// Sub returns this angle minus the other.
func (a Angle) Sub(other Angle) Angle {
	return Radians(a.radians - other.radians)
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(a.radians)
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(a.radians)
}

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 {
	return math.Tan(a.radians)
}

// Point returns the angle's point on the unit circle, with zero pointing
// along +Y and angles growing clockwise. This matches how scanning devices
// and driver-station sticks report headings.
func (a Angle) Point() Vector2D {
	return Vector2D{X: a.Sin(), Y: a.Cos()}
}
