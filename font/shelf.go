package font

// shelfAllocator implements shelf-based rectangle packing.
//
// Rectangles are placed left-to-right in horizontal shelves. Each shelf
// is as tall as the tallest item placed on it; when no shelf has room a
// new one is started below the last. Glyphs of one character size have
// similar heights, which keeps waste low.
type shelfAllocator struct {
	width   int
	height  int
	shelves []shelf
}

// shelf represents a horizontal strip in the atlas.
type shelf struct {
	y      int // Y position of shelf top
	height int // Height of the shelf (tallest item so far)
	x      int // Current X position (next free slot)
}

func newShelfAllocator(width, height int) *shelfAllocator {
	return &shelfAllocator{
		width:   width,
		height:  height,
		shelves: make([]shelf, 0, 16),
	}
}

// allocate finds space for a w x h rectangle.
// Returns -1, -1, false if it does not fit.
func (a *shelfAllocator) allocate(w, h int) (x, y int, ok bool) {
	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+w > a.width {
			continue
		}

		if h > s.height {
			// Only the last shelf can grow taller.
			if i != len(a.shelves)-1 || s.y+h > a.height {
				continue
			}
			s.height = h
		}

		x, y = s.x, s.y
		s.x += w
		return x, y, true
	}

	newY := 0
	if n := len(a.shelves); n > 0 {
		newY = a.shelves[n-1].y + a.shelves[n-1].height
	}
	if w > a.width || newY+h > a.height {
		return -1, -1, false
	}

	a.shelves = append(a.shelves, shelf{y: newY, height: h, x: w})
	return 0, newY, true
}

// resize changes the packing area. Existing placements are kept, so
// the area must not shrink.
func (a *shelfAllocator) resize(width, height int) {
	a.width = width
	a.height = height
}

// shelfCount returns the number of shelves currently in use.
func (a *shelfAllocator) shelfCount() int {
	return len(a.shelves)
}
