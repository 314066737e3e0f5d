package logic

// Navigator handles cursor movement and the visible window over a list of rows.
// Only rows inside the window are ever rendered.
type Navigator struct {
	cursor         int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// Cursor returns the index of the focused row
func (n *Navigator) Cursor() int {
	return n.cursor
}

// ViewportOffset returns the index of the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// ViewportHeight returns the number of rows that fit on screen
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// Total returns the number of rows being navigated
func (n *Navigator) Total() int {
	return n.total
}

// SetTotal updates the row count, clamping the cursor
func (n *Navigator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	n.total = total
	n.SetCursor(n.cursor)
}

// SetViewportHeight updates the window size, keeping the cursor visible
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureCursorVisible()
}

// SetCursor moves the cursor to index, clamped to the list
func (n *Navigator) SetCursor(index int) {
	if index >= n.total {
		index = n.total - 1
	}
	if index < 0 {
		index = 0
	}
	n.cursor = index
	n.ensureCursorVisible()
}

func (n *Navigator) Up()       { n.SetCursor(n.cursor - 1) }
func (n *Navigator) Down()     { n.SetCursor(n.cursor + 1) }
func (n *Navigator) PageUp()   { n.SetCursor(n.cursor - n.viewportHeight) }
func (n *Navigator) PageDown() { n.SetCursor(n.cursor + n.viewportHeight) }
func (n *Navigator) Home()     { n.SetCursor(0) }
func (n *Navigator) End()      { n.SetCursor(n.total - 1) }

// VisibleRange returns the half-open index range [start, end) of rows on screen
func (n *Navigator) VisibleRange() (int, int) {
	end := n.viewportOffset + n.viewportHeight
	if end > n.total {
		end = n.total
	}
	return n.viewportOffset, end
}

func (n *Navigator) ensureCursorVisible() {
	if n.cursor < n.viewportOffset {
		n.viewportOffset = n.cursor
	}
	if n.cursor >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.cursor - n.viewportHeight + 1
	}

	// Don't leave empty space below the last row
	maxOffset := n.total - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
