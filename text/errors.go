package text

import "errors"

var (
	// ErrPhoneLength is returned when a phone number does not have exactly 10 digits.
	ErrPhoneLength = errors.New("text: phone number needs exactly 10 digits")

	// ErrNotDigit is returned when a phone number element is not in 0..9.
	ErrNotDigit = errors.New("text: value is not a decimal digit")

	// ErrNotLetter is returned when FindMissingLetter gets a non-ASCII letter
	// or letters of mixed case.
	ErrNotLetter = errors.New("text: expected ASCII letters of one case")

	// ErrNoMissingLetter is returned when the run of letters has no gap.
	ErrNoMissingLetter = errors.New("text: no missing letter")

	// ErrBadArmy is returned when an army description has a non-numeric count
	// or more races than the side has.
	ErrBadArmy = errors.New("text: malformed army description")
)
