package mathx

import (
	"math"

	"github.com/golang/geo/r2"
)

// Vector2D is a planar vector. The zero value is the origin.
type Vector2D struct {
	X float64
	Y float64
}

// FromR2 converts an r2 point into a Vector2D.
func FromR2(p r2.Point) Vector2D {
	return Vector2D{X: p.X, Y: p.Y}
}

// R2 converts the vector into an r2 point for use with the geo libraries.
func (v Vector2D) R2() r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

// Add returns the sum of the two vectors.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns this vector minus the other.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by s.
func (v Vector2D) Mul(s float64) Vector2D {
	return Vector2D{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of the two vectors.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Magnitude returns the length of the vector.
func (v Vector2D) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the vector scaled to unit length. The zero vector is
// returned unchanged.
func (v Vector2D) Normalized() Vector2D {
	mag := v.Magnitude()
	if mag == 0 {
		return v
	}
	return v.Mul(1 / mag)
}

// Angle returns the heading of the vector, with zero pointing along +Y and
// angles growing clockwise, mirroring Angle.Point.
func (v Vector2D) Angle() Angle {
	return Radians(math.Atan2(v.X, v.Y))
}
