// Package numinput drives a numfmt model from host text-field events.
//
// Every edit runs in two phases. Input (or ToggleSign) validates the new
// text and writes the formatted value to the Surface right away, then returns
// a Ticket. The host calls Settle with that ticket once it has finished its
// own value update; only then is the caret written. A newer ticket supersedes
// any older one that has not settled yet.
package numinput
