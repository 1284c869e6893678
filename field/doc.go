// Package field provides a Bubble Tea numeric input component backed by the
// numfmt and numinput packages.
//
// The field keeps a grouped, optionally signed, optionally fixed-fraction
// number on screen while the user edits it, restores the caret after every
// reformat, flags the value as dirty when it differs from its baseline, and
// sizes itself to fit its value and placeholder.
package field
