package render

import "github.com/lixenwraith/ballista/constant"

// Segment is one stroke of a seven-segment digit, in world units relative to the digit's top-left corner
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Horizontal reports whether the stroke runs along x
func (s Segment) Horizontal() bool {
	return s.Y0 == s.Y1
}

const segLen = constant.SegmentLength

// segments are numbered 1..7: top, upper right, upper left, middle, lower left, lower right, bottom
var segments = [8]Segment{
	1: {0, 0.05, segLen, 0.05},
	2: {segLen, 0, segLen, -segLen},
	3: {0, 0, 0, -segLen},
	4: {0, -segLen, segLen, -segLen},
	5: {0, -segLen, 0, -2 * segLen},
	6: {segLen, -segLen, segLen, -2 * segLen},
	7: {0, -2*segLen - 0.05, segLen, -2*segLen - 0.05},
}

var digitSegments = [10][]int{
	0: {1, 2, 3, 5, 6, 7},
	1: {2, 6},
	2: {1, 2, 4, 5, 7},
	3: {1, 2, 4, 6, 7},
	4: {2, 3, 4, 6},
	5: {1, 3, 4, 6, 7},
	6: {1, 3, 4, 5, 6, 7},
	7: {1, 2, 6},
	8: {1, 2, 3, 4, 5, 6, 7},
	9: {1, 2, 3, 4, 6, 7},
}

// DigitSegments returns the lit strokes of a decimal digit
func DigitSegments(d int) []Segment {
	if d < 0 || d > 9 {
		return nil
	}
	ids := digitSegments[d]
	out := make([]Segment, len(ids))
	for i, id := range ids {
		out[i] = segments[id]
	}
	return out
}

// DigitPlacement is one digit of the score with its world origin
type DigitPlacement struct {
	Digit int
	X, Y  float64
}

// ScoreLayout places the digits of score right to left from the score origin
// Zero still shows one digit; negative scores are drawn as their magnitude
func ScoreLayout(score int) []DigitPlacement {
	if score < 0 {
		score = -score
	}
	var out []DigitPlacement
	for i := 0; ; i++ {
		out = append(out, DigitPlacement{
			Digit: score % 10,
			X:     constant.ScoreOriginX - float64(i)*constant.ScoreDigitStep,
			Y:     constant.ScoreOriginY,
		})
		score /= 10
		if score == 0 {
			break
		}
	}
	return out
}
