package cave

// CaveMap is the live element grid, addressed through wrap-around
// coordinates (spec.md §4.3). It also carries the "objects_order"
// attribution map (editor bookkeeping the engine writes via store_rc
// but otherwise never reads for gameplay) and a parallel countdown
// grid used by hammered-wall reappearance.
type CaveMap struct {
	W, H      int
	LineShift bool

	cells       []Element
	objectOrder []int32 // index into a CaveObject arena, -1 = none
	hammered    []int32 // ticks until a hammered brick reappears, 0 = not pending
}

// NewCaveMap allocates a w×h grid filled with Space.
func NewCaveMap(w, h int, lineShift bool) *CaveMap {
	n := w * h
	m := &CaveMap{
		W: w, H: h, LineShift: lineShift,
		cells:       make([]Element, n),
		objectOrder: make([]int32, n),
		hammered:    make([]int32, n),
	}
	for i := range m.objectOrder {
		m.objectOrder[i] = -1
	}
	return m
}

// wrap normalizes (x,y) through the cave's addressing rule: torus wrap
// when LineShift is false, or line-shift wrap (column overflow rolls
// into the next row) when true, matching original C64 hardware
// addressing (spec.md §4.3).
func (m *CaveMap) wrap(x, y int) (int, int) {
	if m.LineShift {
		total := m.W * m.H
		idx := y*m.W + x
		idx %= total
		if idx < 0 {
			idx += total
		}
		return idx % m.W, idx / m.W
	}
	x %= m.W
	if x < 0 {
		x += m.W
	}
	y %= m.H
	if y < 0 {
		y += m.H
	}
	return x, y
}

func (m *CaveMap) index(x, y int) int {
	x, y = m.wrap(x, y)
	return y*m.W + x
}

// At returns the element stored at (x,y), after wrap-around addressing.
func (m *CaveMap) At(x, y int) Element {
	return m.cells[m.index(x, y)]
}

// AtDir returns the element one step from (x,y) in direction d.
func (m *CaveMap) AtDir(x, y int, d Direction) Element {
	ddx, ddy := d.Delta()
	return m.At(x+ddx, y+ddy)
}

// rawSet writes e at (x,y) with no scanned-twin conversion and no lava
// absorption — used only by cave rendering (object drawing) and by the
// store/move wrappers below after they've applied those rules.
func (m *CaveMap) rawSet(x, y int, e Element) {
	m.cells[m.index(x, y)] = e
}

// Store writes element e into (x,y), converting it to its scanned twin
// first (spec.md §4.1) unless raw is requested. A write into a cell that
// currently holds Lava is absorbed silently: Lava is both a sink and,
// for motion queries, acts as space (spec.md §4.1).
func (m *CaveMap) Store(x, y int, e Element, raw bool) {
	idx := m.index(x, y)
	if m.cells[idx].Unscanned() == Lava {
		return
	}
	if !raw {
		e = e.Scanned()
	}
	m.cells[idx] = e
}

// Move writes e into the cell one step from (x,y) in direction d (the
// destination), going through the same Store rules.
func (m *CaveMap) Move(x, y int, d Direction, e Element) {
	ddx, ddy := d.Delta()
	m.Store(x+ddx, y+ddy, e, false)
}

// IsSpace reports whether (x,y) is walkable space for motion purposes:
// true Space, or a cell currently absorbing into Lava.
func (m *CaveMap) IsSpace(x, y int) bool {
	e := m.At(x, y).Unscanned()
	return e == Space || e == Lava
}

// Unscan clears the scanned bit at (x,y) if set, reporting whether it
// had been set (used by both the in-scan "already processed, skip"
// check and the post-scan cleanup pass, spec.md §4.5 phase B/C).
func (m *CaveMap) Unscan(x, y int) bool {
	idx := m.index(x, y)
	if m.cells[idx].IsScanned() {
		m.cells[idx] = m.cells[idx].Unscanned()
		return true
	}
	return false
}

// ObjectOrder returns the CaveObject arena index that drew (x,y), or -1.
func (m *CaveMap) ObjectOrder(x, y int) int32 { return m.objectOrder[m.index(x, y)] }

// StoreRC sets the element and its drawing-object attribution together
// (the only writer of objects_order per spec.md invariant 8).
func (m *CaveMap) StoreRC(x, y int, e Element, objIdx int32) {
	idx := m.index(x, y)
	m.cells[idx] = e
	m.objectOrder[idx] = objIdx
}

// ClearObjectOrder drops the attribution at (x,y); game rules that move
// an element without explicitly copying attribution leave the
// destination's objects_order cleared by default (spec.md invariant 8).
func (m *CaveMap) ClearObjectOrder(x, y int) {
	m.objectOrder[m.index(x, y)] = -1
}

// Hammered returns the reappearance countdown at (x,y).
func (m *CaveMap) Hammered(x, y int) int32 { return m.hammered[m.index(x, y)] }

// SetHammered sets the reappearance countdown at (x,y).
func (m *CaveMap) SetHammered(x, y int, ticks int32) { m.hammered[m.index(x, y)] = ticks }

// TickHammered decrements every pending hammered-wall countdown by one
// and calls onReappear(x,y) for each that just reached zero (spec.md
// §4.5 phase A.7).
func (m *CaveMap) TickHammered(onReappear func(x, y int)) {
	for i, v := range m.hammered {
		if v <= 0 {
			continue
		}
		v--
		m.hammered[i] = v
		if v == 0 {
			onReappear(i%m.W, i/m.W)
		}
	}
}

// Each calls f for every (x,y) in row-major order from (0, ymin) to
// (w-1, ymax), the scan order spec.md §5 mandates. When
// borderScanFirstAndLast is false, y=0 and y=h-1 are skipped, leaving a
// steel-wall frame untouched (spec.md §4.3).
func (m *CaveMap) Each(borderScanFirstAndLast bool, f func(x, y int)) {
	y0, y1 := 0, m.H-1
	if !borderScanFirstAndLast {
		y0, y1 = 1, m.H-2
	}
	for y := y0; y <= y1; y++ {
		for x := 0; x < m.W; x++ {
			f(x, y)
		}
	}
}

// AnyScanned reports whether any cell still carries the scanned bit —
// the property spec.md §8 invariant 3 checks after every iterate().
func (m *CaveMap) AnyScanned() bool {
	for _, e := range m.cells {
		if e.IsScanned() {
			return true
		}
	}
	return false
}
