package text

import (
	"fmt"
	"strings"
)

// phoneDigits is the fixed length of a formatted number.
const phoneDigits = 10

// CreatePhoneNumber formats ten digits as "(123) 456-7890".
//
// Errors: ErrPhoneLength unless len(digits) == 10, ErrNotDigit (wrapped with
// the offending position) for values above 9.
func CreatePhoneNumber(digits []uint8) (string, error) {
	if len(digits) != phoneDigits {
		return "", ErrPhoneLength
	}

	var sb strings.Builder
	sb.Grow(len("(123) 456-7890"))
	sb.WriteByte('(')
	for i, d := range digits {
		if d > 9 {
			return "", fmt.Errorf("digit %d: %w", i, ErrNotDigit)
		}
		sb.WriteByte('0' + d)
		switch i {
		case 2:
			sb.WriteString(") ")
		case 5:
			sb.WriteByte('-')
		}
	}

	return sb.String(), nil
}
