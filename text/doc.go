// Package text holds small string transformations: phone number formatting,
// vowel removal, camel casing, chunked reverse/rotate, missing-letter search
// and the Good vs Evil battle tally.
//
// Functions that can receive malformed input return a sentinel error from
// errors.go instead of panicking.
package text
