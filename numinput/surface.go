package numinput

// Surface is the host text field.
//
// Offsets are rune offsets. SetValue may move the host's own cursor; the
// controller restores it in Settle.
type Surface interface {
	Value() string
	SetValue(s string)

	Selection() (start, end int)
	SetSelection(start, end int)
}
