package vmath

import "math"

func DegToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func RadToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

// HeadingDeg returns the angle in degrees of the ray from (fromX, fromY) to (toX, toY)
// A zero-length ray or non-finite input yields 0 instead of NaN
func HeadingDeg(fromX, fromY, toX, toY float64) float64 {
	dx := toX - fromX
	dy := toY - fromY
	if dx == 0 && dy == 0 {
		return 0
	}
	deg := RadToDeg(math.Atan2(dy, dx))
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	return deg
}

// Polar returns the planar vector of length mag at angle deg
func Polar(mag, deg float64) Vec3F {
	rad := DegToRad(deg)
	return Vec3F{X: mag * math.Cos(rad), Y: mag * math.Sin(rad)}
}
