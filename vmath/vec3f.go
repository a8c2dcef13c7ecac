package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for planar physics
// Z is carried for render transforms and stays 0 in simulation
type Vec3F struct {
	X, Y, Z float64
}

// V2F builds a planar vector with Z = 0
func V2F(x, y float64) Vec3F {
	return Vec3F{X: x, Y: y}
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// Dist2D returns the planar Euclidean distance between a and b, ignoring Z
func Dist2D(a, b Vec3F) float64 {
	d := V3FSub(b, a)
	d.Z = 0
	return V3FMag(d)
}

// CirclesOverlap reports strict overlap of two circles (touching is not overlap)
func CirclesOverlap(a Vec3F, ra float64, b Vec3F, rb float64) bool {
	return Dist2D(a, b) < ra+rb
}
