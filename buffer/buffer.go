package buffer

// Buffer is the pure field state: text, cursor, and selection.
//
// The cursor is the active end of the selection; anchor is the fixed end.
// With no selection, anchor == cursor.
type Buffer struct {
	text    []rune
	version uint64

	cursor int
	anchor int
}

func New(text string) *Buffer {
	rs := []rune(text)
	return &Buffer{
		text:   rs,
		cursor: len(rs),
		anchor: len(rs),
	}
}

func (b *Buffer) Text() string { return string(b.text) }

func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the cursor and clears the selection.
func (b *Buffer) SetCursor(off int) {
	next := clampInt(off, 0, len(b.text))
	if next == b.cursor && b.anchor == b.cursor {
		return
	}
	b.cursor = next
	b.anchor = next
	b.version++
}

// Selection returns the normalized selection, if any.
func (b *Buffer) Selection() (Range, bool) {
	r := NormalizeRange(Range{Start: b.anchor, End: b.cursor})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SetSelection selects [start, end) with the cursor at end.
func (b *Buffer) SetSelection(start, end int) {
	start = clampInt(start, 0, len(b.text))
	end = clampInt(end, 0, len(b.text))
	if start == b.anchor && end == b.cursor {
		return
	}
	b.anchor = start
	b.cursor = end
	b.version++
}

func (b *Buffer) SelectAll() {
	b.SetSelection(0, len(b.text))
}

func (b *Buffer) ClearSelection() {
	b.SetCursor(b.cursor)
}

// SelectedText returns the text covered by the selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return string(b.text[r.Start:r.End])
}

// SetValue replaces the whole text and parks the cursor at the end, the way a
// host input does after a programmatic value change.
func (b *Buffer) SetValue(s string) {
	rs := []rune(s)
	if string(rs) == string(b.text) && b.cursor == len(rs) && b.anchor == len(rs) {
		return
	}
	b.text = rs
	b.cursor = len(rs)
	b.anchor = len(rs)
	b.version++
}

// Bounds returns the selection as (start, end), or (cursor, cursor).
func (b *Buffer) Bounds() (start, end int) {
	r := NormalizeRange(Range{Start: b.anchor, End: b.cursor})
	return r.Start, r.End
}
