// Package deadfish interprets the four-command Deadfish language.
//
// A program is a string of commands acting on a single accumulator that
// starts at zero:
//
//	i  increment
//	d  decrement
//	s  square
//	o  append the accumulator to the output
//
// Any other rune is ignored. Parse runs a whole program; Machine exposes the
// same interpreter one command at a time.
package deadfish
