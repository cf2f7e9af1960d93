package svg

import (
	"math"
	"strconv"

	mt "github.com/rustyoz/Mtransform"
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

// SnapEpsilon is the magnitude below which a coordinate is emitted as 0.
// Anything smaller is floating noise from the trigonometry, e.g.
// 6.123233995736766e-15 for cos(pi/2)*100.
const SnapEpsilon = 0.02

// CoordPrecision is the number of decimal places kept on coordinates.
const CoordPrecision = 2

// X returns the first component.
func (t Tuple) X() float64 { return t[0] }

// Y returns the second component.
func (t Tuple) Y() float64 { return t[1] }

// Scale multiplies both components by f without rounding.
func (t Tuple) Scale(f float64) Tuple {
	return Tuple{t[0] * f, t[1] * f}
}

// Round rounds v half away from zero to the given number of decimal places.
// The scaled value is first cut to 15 significant digits so that sums such
// as 1.563+1.5625 round up to 3.126 the way they read in decimal.
func Round(v float64, places int) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	p := math.Pow(10, float64(places))
	return math.Round(preRound(v*p)) / p
}

func preRound(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 15, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Snap forces values with a magnitude below SnapEpsilon to exactly zero.
func Snap(v float64) float64 {
	if math.Abs(v) < SnapEpsilon {
		return 0
	}
	return v
}

func coord(v float64) float64 {
	return Snap(Round(v, CoordPrecision))
}

// PolarPoint samples the circle of the given radius at angle radians. Each
// component is rounded and snapped independently.
func PolarPoint(radians, radius float64) Tuple {
	return Tuple{
		coord(math.Cos(radians) * radius),
		coord(math.Sin(radians) * radius),
	}
}

// Rotate turns p about the origin by radians, counter-clockwise in a y-up
// frame, and rounds and snaps the result.
func Rotate(p Tuple, radians float64) Tuple {
	t := rotation(radians)
	x, y := t.Apply(p[0], p[1])
	return Tuple{coord(x), coord(y)}
}

// rotation returns the row-major matrix
//
//	| cos -sin 0 |
//	| sin  cos 0 |
//	|  0    0  1 |
func rotation(radians float64) mt.Transform {
	cos, sin := math.Cos(radians), math.Sin(radians)
	t := mt.Identity()
	t[0][0], t[0][1] = cos, -sin
	t[1][0], t[1][1] = sin, cos
	return t
}
