package svg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 33.333, Round(100.0/3, 3))
	assert.Equal(t, 0.67, Round(0.666, 2))
	assert.Equal(t, -1.24, Round(-1.235001, 2))
	assert.Equal(t, 100.0, Round(99.999999, 2))
	assert.Equal(t, 3.126, Round(1.563+1.5625, 3))
	assert.Equal(t, 1.01, Round(1.005, 2))
	assert.Equal(t, -1.01, Round(-1.005, 2))
}

func TestSnap(t *testing.T) {
	assert.Equal(t, 0.0, Snap(0.019))
	assert.Equal(t, 0.0, Snap(-0.01))
	assert.Equal(t, 0.02, Snap(0.02))
	assert.Equal(t, -0.5, Snap(-0.5))
	assert.False(t, math.Signbit(Snap(-0.001)))
}

func TestPolarPoint(t *testing.T) {
	tests := []struct {
		angle float64
		want  Tuple
	}{
		{0, Tuple{100, 0}},
		{math.Pi / 2, Tuple{0, 100}},
		{math.Pi, Tuple{-100, 0}},
		{2 * math.Pi, Tuple{100, 0}},
		{math.Pi / 4, Tuple{70.71, 70.71}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, PolarPoint(test.angle, 100), "angle %v", test.angle)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		description string
		p           Tuple
		radians     float64
		want        Tuple
	}{
		{"quarter turn of start", Tuple{100, 0}, math.Pi / 2, Tuple{0, 100}},
		{"quarter turn of left", Tuple{-100, 0}, math.Pi / 2, Tuple{0, -100}},
		{"back a quarter", Tuple{0, -50}, -math.Pi / 2, Tuple{-50, 0}},
		{"back a quarter from below", Tuple{0, 50}, -math.Pi / 2, Tuple{50, 0}},
		{"half turn", Tuple{10, 20}, math.Pi, Tuple{-10, -20}},
		{"identity", Tuple{1.234, -5.678}, 0, Tuple{1.23, -5.68}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Rotate(test.p, test.radians), test.description)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		100:                  "100",
		-100:                 "-100",
		-0.01:                "-0.01",
		70.71:                "70.71",
		67.164:               "67.164",
		33.333 + 40:          "73.333",
		math.Copysign(0, -1): "0",
		1e-7:                 "0.0000001",
		1e20:                 "100000000000000000000",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatNumber(in), "format %v", in)
	}
	assert.Equal(t, "0,-100", FormatTuple(Tuple{0, -100}))
}
