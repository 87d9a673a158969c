package value

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexPattern     = regexp.MustCompile(`(?i)^0x[0-9a-f]+$`)
	decimalPattern = regexp.MustCompile(`^[-+]?(?:\d+(?:\.\d*)?|\.\d+)(e[-+]?\d+)?$`)
)

// IsNumber reports whether s looks like a number: a hexadecimal literal
// (0x1f) or a decimal with optional sign, fraction and lowercase exponent.
func IsNumber(s string) bool {
	return hexPattern.MatchString(s) || decimalPattern.MatchString(s)
}

// ParseNumber converts a string accepted by IsNumber into a float64.
// Decimals too large for float64 become infinities rather than failing.
func ParseNumber(s string) (float64, bool) {
	if hexPattern.MatchString(s) {
		var n float64
		for _, c := range strings.ToLower(s[2:]) {
			d := strings.IndexRune("0123456789abcdef", c)
			n = n*16 + float64(d)
		}

		return n, true
	}

	if !decimalPattern.MatchString(s) {
		return 0, false
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return n, true
}

// Coerce turns a raw token into a Number when it looks numeric, unless
// forceString is set.
func Coerce(s string, forceString bool) Value {
	if !forceString {
		if n, ok := ParseNumber(s); ok {
			return Number(n)
		}
	}

	return String(s)
}

// FormatNumber renders n the way command-line users wrote it: integers
// without a fraction, very large or very small magnitudes in exponent form.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}

	abs := math.Abs(n)
	if abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")

		return mant + "e" + sign + digits
	}

	return strconv.FormatFloat(n, 'f', -1, 64)
}
