package buffer

// InsertText inserts s at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.replaceRange(r, []rune(s))
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == 0 {
		return
	}
	b.replaceRange(Range{Start: b.cursor - 1, End: b.cursor}, nil)
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == len(b.text) {
		return
	}
	b.replaceRange(Range{Start: b.cursor, End: b.cursor + 1}, nil)
}

// DeleteSelection removes the selected text. It is a no-op without a
// selection.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.replaceRange(r, nil)
}

func (b *Buffer) replaceRange(r Range, text []rune) {
	r = NormalizeRange(r)
	r.Start = clampInt(r.Start, 0, len(b.text))
	r.End = clampInt(r.End, r.Start, len(b.text))

	next := make([]rune, 0, len(b.text)-r.Len()+len(text))
	next = append(next, b.text[:r.Start]...)
	next = append(next, text...)
	next = append(next, b.text[r.End:]...)

	b.text = next
	b.cursor = r.Start + len(text)
	b.anchor = b.cursor
	b.version++
}
