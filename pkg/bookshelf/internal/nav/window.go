package nav

// ListWindow tracks the selected row of a scrolling list and the slice of
// rows currently on screen.
type ListWindow struct {
	Selected     int
	VisibleStart int
	MaxVisible   int
	length       int
}

// NewListWindow creates a window over length rows showing maxVisible at a
// time, with the first row selected.
func NewListWindow(length, maxVisible int) ListWindow {
	w := ListWindow{length: length}
	w.SetMaxVisible(maxVisible)
	return w
}

// Len returns the number of rows.
func (w *ListWindow) Len() int {
	return w.length
}

// SetMaxVisible changes how many rows fit on screen, keeping the selection
// in view.
func (w *ListWindow) SetMaxVisible(n int) {
	if n < 1 {
		n = 1
	}
	w.MaxVisible = n
	w.clamp()
}

// SetLen replaces the row count after the underlying list changed, for
// example after a new search. The selection is clamped into range.
func (w *ListWindow) SetLen(length int) {
	w.length = length
	w.clamp()
}

// Restore applies a saved selection and scroll position, clamped into range.
func (w *ListWindow) Restore(selected, visibleStart int) {
	w.Selected = selected
	w.VisibleStart = visibleStart
	w.clamp()
}

// Move shifts the selection by delta rows, wrapping at both ends. Wrapping
// to the top resets the scroll; wrapping to the bottom shows the last page.
func (w *ListWindow) Move(delta int) {
	if w.length == 0 || delta == 0 {
		return
	}

	next := w.Selected + delta
	switch {
	case next >= w.length:
		w.Selected = 0
		w.VisibleStart = 0
		return
	case next < 0:
		w.Selected = w.length - 1
		w.VisibleStart = w.maxStart()
		return
	}

	w.Selected = next
	w.ScrollTo(next)
}

// ScrollTo adjusts the visible range so index sits a quarter page from the
// top when possible.
func (w *ListWindow) ScrollTo(index int) {
	if index < 0 || index >= w.length {
		return
	}

	if index >= w.VisibleStart && index < w.VisibleStart+w.MaxVisible {
		return
	}

	context := w.MaxVisible / 4
	if context < 1 && w.MaxVisible > 1 {
		context = 1
	}

	start := index - context
	if start < 0 {
		start = 0
	}
	if start > w.maxStart() {
		start = w.maxStart()
	}
	w.VisibleStart = start
}

// VisibleRange returns the half-open range of rows on screen.
func (w *ListWindow) VisibleRange() (int, int) {
	end := w.VisibleStart + w.MaxVisible
	if end > w.length {
		end = w.length
	}
	return w.VisibleStart, end
}

func (w *ListWindow) maxStart() int {
	m := w.length - w.MaxVisible
	if m < 0 {
		return 0
	}
	return m
}

func (w *ListWindow) clamp() {
	if w.length == 0 {
		w.Selected = 0
		w.VisibleStart = 0
		return
	}
	if w.Selected >= w.length {
		w.Selected = w.length - 1
	}
	if w.Selected < 0 {
		w.Selected = 0
	}
	if w.VisibleStart > w.maxStart() {
		w.VisibleStart = w.maxStart()
	}
	if w.VisibleStart < 0 {
		w.VisibleStart = 0
	}
	if w.Selected < w.VisibleStart || w.Selected >= w.VisibleStart+w.MaxVisible {
		w.ScrollTo(w.Selected)
	}
}
