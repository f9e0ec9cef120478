package common

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	TRXDecimals  = 6 // TRX has 6 decimals (sun)
	USDTDecimals = 6 // TRC20 USDT has 6 decimals
)

// ErrInvalidAmount is returned for amounts that are empty, malformed, or not strictly positive
var ErrInvalidAmount = errors.New("invalid amount")

// SunToTRX converts sun to TRX string without float precision loss
func SunToTRX(sun int64) string {
	return FormatWithDecimals(sun, TRXDecimals)
}

// TRXToSun converts a positive TRX decimal string to sun
func TRXToSun(trx string) (int64, error) {
	return ToBaseUnits(trx, TRXDecimals)
}

// MicroToUSDT converts token base units to USDT string
func MicroToUSDT(micro int64) string {
	return FormatWithDecimals(micro, USDTDecimals)
}

// USDTToMicro converts a positive USDT decimal string to token base units
func USDTToMicro(usdt string) (int64, error) {
	return ToBaseUnits(usdt, USDTDecimals)
}

// FormatWithDecimals converts integer to decimal string by inserting decimal point
// Example: FormatWithDecimals(24981836, 6) = "24.981836"
func FormatWithDecimals(value int64, decimals int) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	s := strconv.FormatInt(value, 10)

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return sign + s[:pos] + "." + s[pos:]
}

// ToBaseUnits converts a decimal string to round(amount * 10^decimals).
// Rounding is half-up on the first dropped digit. The result must be > 0.
func ToBaseUnits(s string, decimals int) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: must be positive", ErrInvalidAmount)
	}
	s = strings.TrimPrefix(s, "+")

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid decimal format", ErrInvalidAmount)
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || !isDigits(frac) {
		return 0, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, s)
	}

	// Pad or cut fractional part to exact decimals, remembering the first dropped digit
	roundUp := false
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		roundUp = frac[decimals] >= '5'
		frac = frac[:decimals]
	}

	n, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: out of range", ErrInvalidAmount)
	}
	if roundUp {
		if n == math.MaxInt64 {
			return 0, fmt.Errorf("%w: out of range", ErrInvalidAmount)
		}
		n++
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}
	return n, nil
}

// CompareAmounts compares two decimal string amounts at the given precision.
// Returns: -1 if a < b, 0 if a == b, 1 if a > b, and error if parsing fails
func CompareAmounts(a, b string, decimals int) (int, error) {
	aVal, err := ToBaseUnits(a, decimals)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", a, err)
	}

	bVal, err := ToBaseUnits(b, decimals)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", b, err)
	}

	switch {
	case aVal < bVal:
		return -1, nil
	case aVal > bVal:
		return 1, nil
	}
	return 0, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
