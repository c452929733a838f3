package sim

import "math"

// Vec2 is a point or direction in world space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// FromAngle returns the unit vector for angle a (radians).
func FromAngle(a float64) Vec2 { return Vec2{math.Cos(a), math.Sin(a)} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }
func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).LenSq() }
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns v scaled to unit length, or zero for a zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampLen shortens v to at most limit length.
func (v Vec2) ClampLen(limit float64) Vec2 {
	l := v.Len()
	if l <= limit || l == 0 {
		return v
	}
	return v.Scale(limit / l)
}
