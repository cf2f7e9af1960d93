package svg

import (
	"strconv"
	"strings"
)

// FormatNumber renders v the way attribute values are written: at most 14
// significant digits, no trailing zeros, and no negative zero.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'g', 14, 64)
	if strings.ContainsAny(s, "eE") {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return s
}

// FormatTuple renders p as "x,y".
func FormatTuple(p Tuple) string {
	return FormatNumber(p[0]) + "," + FormatNumber(p[1])
}
