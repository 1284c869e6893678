// Package buffer implements the single-line text model behind a field.
//
// Offsets are 0-based rune offsets. Selections are half-open: [Start, End).
package buffer
