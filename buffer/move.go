package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome
	DirEnd
)

type Move struct {
	Dir    MoveDir
	Extend bool // if true, extends the selection; if false clears it
}

func (b *Buffer) Move(m Move) {
	prevCursor, prevAnchor := b.cursor, b.anchor

	next := b.moveCursor(m)
	anchor := next
	if m.Extend {
		anchor = prevAnchor
	}

	if next == prevCursor && anchor == prevAnchor {
		return
	}
	b.cursor = next
	b.anchor = anchor
	b.version++
}

func (b *Buffer) moveCursor(m Move) int {
	sel, hasSel := b.Selection()
	switch m.Dir {
	case DirLeft:
		// Collapsing a selection lands on its near edge.
		if hasSel && !m.Extend {
			return sel.Start
		}
		return clampInt(b.cursor-1, 0, len(b.text))
	case DirRight:
		if hasSel && !m.Extend {
			return sel.End
		}
		return clampInt(b.cursor+1, 0, len(b.text))
	case DirHome:
		return 0
	case DirEnd:
		return len(b.text)
	default:
		return b.cursor
	}
}
