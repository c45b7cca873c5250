package argv

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// decimalChars are the only characters allowed in a decimal literal.
// strconv.ParseFloat accepts more (inf, nan, hex floats, underscores).
const decimalChars = "0123456789+-.eE"

// parseNumber accepts decimal literals with optional sign and exponent,
// unsigned 0x/0o/0b integers of any width and the words Infinity, +Infinity
// and -Infinity. Surrounding whitespace is ignored and text made only of
// whitespace is 0.
func parseNumber(raw string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	s := strings.TrimFunc(raw, isNumberSpace)
	if s == "" {
		return 0, nil
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}

	if base, digits, ok := radixLiteral(s); ok {
		return parseRadix(raw, digits, base)
	}

	for _, r := range s {
		if !strings.ContainsRune(decimalChars, r) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return f, nil
}

// isNumberSpace reports the characters trimmed around a numeric literal:
// Unicode space separators, line terminators and the byte order mark.
func isNumberSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// parseRadix converts unsigned digits in base. Values wider than 64 bits
// round to the nearest float64.
func parseRadix(raw, digits string, base int) (float64, error) {
	if digits == "" || digits[0] == '+' || digits[0] == '-' || strings.Contains(digits, "_") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f, nil
}

// radixLiteral recognizes the 0x, 0o and 0b prefixes. Signed radix
// literals are not numbers.
func radixLiteral(s string) (int, string, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, "", false
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:], true
	case 'o', 'O':
		return 8, s[2:], true
	case 'b', 'B':
		return 2, s[2:], true
	}
	return 0, "", false
}

// formatNumber prints plain decimals for ordinary magnitudes and switches to
// exponent notation for very large or very small ones.
func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	if abs := math.Abs(n); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
