package units

import (
	"strconv"
	"strings"
)

// DefaultPrecision is the number of significant digits used when rendering quantities.
const DefaultPrecision = 12

// FormatQuantity renders q with the given number of significant digits, or the shortest
// exact representation when precision is negative. Whole numbers keep a trailing ".0"
// and negative zero renders as zero.
func FormatQuantity(q float64, precision int) string {
	if q == 0 {
		q = 0
	}

	var s string
	if precision < 0 {
		s = strconv.FormatFloat(q, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(q, 'g', precision, 64)
	}
	if strings.ContainsAny(s, ".eEIN") {
		return s
	}
	return s + ".0"
}
