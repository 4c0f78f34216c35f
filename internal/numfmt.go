package internal

import (
	"fmt"
	"strconv"
)

// FormatInt renders i in canonical decimal form.
func FormatInt(i int) string {
	return strconv.Itoa(i)
}

// FormatFloat renders f with at most six significant digits, trailing
// zeros removed, switching to a lowercase two-digit exponent form
// outside roughly [1e-4, 1e6). Whole floats render without a decimal
// point and are indistinguishable from integers on the wire.
func FormatFloat(f float64) string {
	return fmt.Sprintf("%.6g", f)
}
