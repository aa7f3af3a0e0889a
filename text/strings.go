package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Disemvowel removes every a, e, i, o and u in either case.
func Disemvowel(s string) string {
	return strings.Map(func(r rune) rune {
		switch unicode.ToLower(r) {
		case 'a', 'e', 'i', 'o', 'u':
			return -1
		}

		return r
	}, s)
}

// CamelCase upper-cases the first letter of every space-separated word and
// joins the words, e.g. "camel case method" → "CamelCaseMethod".
// Leading, trailing and repeated spaces are dropped.
func CamelCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, word := range strings.Split(s, " ") {
		if word == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(word)
		sb.WriteRune(unicode.ToUpper(first))
		sb.WriteString(word[size:])
	}

	return sb.String()
}

// RevRot cuts s into chunks of size characters, drops a trailing partial
// chunk, then reverses each chunk whose sum of cubed digits is even and
// rotates the others left by one.
//
// It returns "" when size ≤ 0, s is empty, or size exceeds len(s).
func RevRot(s string, size int) string {
	if size <= 0 || s == "" || size > len(s) {
		return ""
	}

	out := make([]byte, 0, len(s))
	for start := 0; start+size <= len(s); start += size {
		chunk := s[start : start+size]
		if cubedDigitSum(chunk)%2 == 0 {
			for i := len(chunk) - 1; i >= 0; i-- {
				out = append(out, chunk[i])
			}
			continue
		}
		out = append(out, chunk[1:]...)
		out = append(out, chunk[0])
	}

	return string(out)
}

// cubedDigitSum sums d³ over the decimal digits of chunk; other bytes are ignored.
func cubedDigitSum(chunk string) int {
	sum := 0
	for i := 0; i < len(chunk); i++ {
		if c := chunk[i]; c >= '0' && c <= '9' {
			d := int(c - '0')
			sum += d * d * d
		}
	}

	return sum
}

// FindMissingLetter returns the first letter absent from an otherwise
// consecutive run of ASCII letters of one case, e.g. [a b c d f] → e.
//
// Errors: ErrNotLetter for non-letters or mixed case, ErrNoMissingLetter when
// the run has no gap.
func FindMissingLetter(chars []rune) (rune, error) {
	if len(chars) == 0 {
		return 0, ErrNoMissingLetter
	}
	upper := isASCIIUpper(chars[0])
	for _, c := range chars {
		if !(isASCIIUpper(c) || isASCIILower(c)) || isASCIIUpper(c) != upper {
			return 0, ErrNotLetter
		}
	}

	for i := 1; i < len(chars); i++ {
		if want := chars[i-1] + 1; chars[i] != want {
			return want, nil
		}
	}

	return 0, ErrNoMissingLetter
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
