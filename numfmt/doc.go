// Package numfmt implements the pure text model of a numeric input field.
//
// It normalizes typed text into a raw numeric string, renders raw values with
// locale grouping and a fixed number of fraction digits, and decides where the
// caret lands after the text is reformatted.
//
// Positions are 0-based rune offsets into the formatted text.
package numfmt
