package strnum

import (
	"strconv"
	"strings"

	su "github.com/avdva/strnum/internal/strutil"
)

// formatScientific renders n in `d[.ddd]e±k` form. The mantissa head is
// the first significant digit found scanning outward from the decimal
// point: in the integer part if it is nonzero, otherwise past the leading
// zeros of the fractional part. The exponent is the head's signed digit
// distance from the point. The tail keeps the remaining digits with
// trailing zeros stripped, or "0" if nothing remains.
func formatScientific(n Number) string {
	var head byte
	var tail string
	var exp int
	if i := su.FirstNonZero(n.integ); i >= 0 {
		head, tail = n.integ[i], n.integ[i+1:]+n.frac
		exp = len(n.integ) - i - 1
	} else if i := su.FirstNonZero(n.frac); i >= 0 {
		head, tail = n.frac[i], n.frac[i+1:]
		exp = -(i + 1)
	} else {
		return "0"
	}
	tail = strings.TrimRight(tail, "0")
	if len(tail) == 0 {
		tail = "0"
	}
	var b strings.Builder
	if n.neg {
		b.WriteByte('-')
	}
	b.WriteByte(head)
	b.WriteByte(delim)
	b.WriteString(tail)
	b.WriteByte('e')
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}
