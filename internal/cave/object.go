package cave

// CaveObject is one drawing instruction recorded against a CaveStored
// template (spec.md §6's "drawing objects" — point, line, rectangle,
// filled rectangle, raster, join, floodfill, maze, copy-paste, random
// fill). CaveStored keeps these in an arena and CaveMap's objects_order
// grid holds arena indices rather than raw pointers, the
// "cyclic object graphs... model in an arena, store indices" guidance
// of spec.md §9's DESIGN NOTES. drawAll writes cells without recording
// an index, so a freshly rendered map's objects_order is -1 everywhere.
type CaveObjectKind int

const (
	ObjPoint CaveObjectKind = iota
	ObjLine
	ObjRectangle
	ObjFilledRectangle
	ObjRaster
	ObjJoin
	ObjFloodFill
	ObjMaze
	ObjCopyPaste
	ObjRandomFill
)

type CaveObject struct {
	Kind CaveObjectKind
	X1, Y1, X2, Y2 int
	DistX, DistY   int // raster/join step
	Element        Element
	SeedElement    Element // secondary element (join's "from", randomfill's "under")
	RandomFill     [4]Element
	RandomProb     [4]int // 1,000,000-scale, checked in order
	Initial        Element
}

// CaveStored is the immutable authored template a cave level is built
// from (spec.md §6's `CaveStored`): a Policy, size/timing parameters,
// and a sequence of drawing objects (or a literal map — render()
// accepts either, spec.md §6).
type CaveStored struct {
	Name   string
	Engine EngineTag
	Policy Policy

	W, H                   int
	VisibleX1, VisibleY1   int
	VisibleX2, VisibleY2   int

	Intermission bool

	InitialTime     int // seconds
	DiamondsNeeded  int
	DiamondValue    int
	ExtraDiamondValue int
	HatchingDelay   int // ticks the inbox waits before it opens

	MagicWallMillis int
	AmoebaSlowMillis  int
	AmoebaFastMillis  int

	ColorBorder, ColorBackground, ColorDirt  int
	ColorDirt2, ColorSteel, ColorStone       int

	// LiteralMap, when non-nil, is used verbatim instead of replaying
	// Objects (spec.md §6: "Fills map from stored map or draws stored
	// objects").
	LiteralMap [][]Element

	Objects []CaveObject
}

// NewCaveStored returns an empty w×h template using the given engine's
// default Policy.
func NewCaveStored(name string, engine EngineTag, w, h int) *CaveStored {
	return &CaveStored{
		Name:   name,
		Engine: engine,
		Policy: DefaultPolicy(engine),
		W:      w, H: h,
		VisibleX1: 0, VisibleY1: 0, VisibleX2: w - 1, VisibleY2: h - 1,
		InitialTime:    150,
		DiamondsNeeded: 10,
		DiamondValue:   10,
		HatchingDelay:  8,
		MagicWallMillis: 30000,
		AmoebaSlowMillis: 5000,
		AmoebaFastMillis: 2000,
	}
}

func (cs *CaveStored) AddObject(o CaveObject) { cs.Objects = append(cs.Objects, o) }

// drawAll replays cs.Objects (or the literal map) onto m, wrapping
// coordinates through m's own addressing — "drawing object cannot plot
// outside the cave — silently wraps through modular addressing; this
// is intentional" (spec.md §7 Capacity).
func (cs *CaveStored) drawAll(m *CaveMap, r *Rand) {
	if cs.LiteralMap != nil {
		for y, row := range cs.LiteralMap {
			for x, e := range row {
				m.rawSet(x, y, e)
			}
		}
		return
	}
	for i := range cs.Objects {
		drawObject(m, &cs.Objects[i], r)
	}
}

func drawObject(m *CaveMap, o *CaveObject, r *Rand) {
	switch o.Kind {
	case ObjPoint:
		m.rawSet(o.X1, o.Y1, o.Element)

	case ObjLine:
		drawLine(m, o.X1, o.Y1, o.X2, o.Y2, o.Element)

	case ObjRectangle:
		drawLine(m, o.X1, o.Y1, o.X2, o.Y1, o.Element)
		drawLine(m, o.X1, o.Y2, o.X2, o.Y2, o.Element)
		drawLine(m, o.X1, o.Y1, o.X1, o.Y2, o.Element)
		drawLine(m, o.X2, o.Y1, o.X2, o.Y2, o.Element)

	case ObjFilledRectangle:
		for y := o.Y1; y <= o.Y2; y++ {
			for x := o.X1; x <= o.X2; x++ {
				m.rawSet(x, y, o.Element)
			}
		}

	case ObjRaster:
		stepX, stepY := o.DistX, o.DistY
		if stepX <= 0 {
			stepX = 1
		}
		if stepY <= 0 {
			stepY = 1
		}
		for y := o.Y1; y <= o.Y2; y += stepY {
			for x := o.X1; x <= o.X2; x += stepX {
				m.rawSet(x, y, o.Element)
			}
		}

	case ObjJoin:
		// Replace every occurrence of SeedElement with Element, offset by (DistX,DistY).
		for y := 0; y < m.H; y++ {
			for x := 0; x < m.W; x++ {
				if m.At(x, y) == o.SeedElement {
					m.rawSet(x+o.DistX, y+o.DistY, o.Element)
				}
			}
		}

	case ObjFloodFill:
		floodFill(m, o.X1, o.Y1, o.SeedElement, o.Element)

	case ObjMaze:
		drawMaze(m, o, r)

	case ObjCopyPaste:
		copyPaste(m, o)

	case ObjRandomFill:
		randomFill(m, o, r)
	}
}

func drawLine(m *CaveMap, x1, y1, x2, y2 int, e Element) {
	dx := x2 - x1
	dy := y2 - y1
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		m.rawSet(x1, y1, e)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x1 + dx*i/steps
		y := y1 + dy*i/steps
		m.rawSet(x, y, e)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func floodFill(m *CaveMap, x, y int, from, to Element) {
	if from == to {
		return
	}
	if m.At(x, y) != from {
		return
	}
	stack := [][2]int{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		px, py := p[0], p[1]
		if m.At(px, py) != from {
			continue
		}
		m.rawSet(px, py, to)
		stack = append(stack, [2]int{px + 1, py}, [2]int{px - 1, py}, [2]int{px, py + 1}, [2]int{px, py - 1})
	}
}

// drawMaze carves a randomized perfect maze of `Element` walls with
// `SeedElement` passages inside the object's bounding box, using
// randomized depth-first carving — the shape original BD maze objects
// take (a wall lattice on odd cells, passages on even cells).
func drawMaze(m *CaveMap, o *CaveObject, r *Rand) {
	x0, y0, x1, y1 := o.X1, o.Y1, o.X2, o.Y2
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			m.rawSet(x, y, o.Element)
		}
	}
	w := (x1 - x0) / 2
	h := (y1 - y0) / 2
	if w <= 0 || h <= 0 {
		return
	}
	visited := make([][]bool, h+1)
	for i := range visited {
		visited[i] = make([]bool, w+1)
	}
	type cell struct{ cx, cy int }
	carve := func(cx, cy int) { m.rawSet(x0+cx*2, y0+cy*2, o.SeedElement) }
	var stack []cell
	stack = append(stack, cell{0, 0})
	visited[0][0] = true
	carve(0, 0)
	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		order := r.Intn(24) // cheap shuffle seed for the 4! permutations below
		perm := [4]int{0, 1, 2, 3}
		for i := 3; i > 0; i-- {
			j := (order + i) % (i + 1)
			perm[i], perm[j] = perm[j], perm[i]
		}
		advanced := false
		for _, k := range perm {
			nx, ny := cur.cx+dirs[k][0], cur.cy+dirs[k][1]
			if nx < 0 || ny < 0 || nx > w || ny > h || visited[ny][nx] {
				continue
			}
			visited[ny][nx] = true
			wx, wy := x0+cur.cx*2+dirs[k][0], y0+cur.cy*2+dirs[k][1]
			m.rawSet(wx, wy, o.SeedElement)
			carve(nx, ny)
			stack = append(stack, cell{nx, ny})
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
}

func copyPaste(m *CaveMap, o *CaveObject) {
	w := o.X2 - o.X1
	h := o.Y2 - o.Y1
	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			m.rawSet(o.DistX+x, o.DistY+y, m.At(o.X1+x, o.Y1+y))
		}
	}
}

// randomFill paints each cell in the object's box with the first of up
// to four candidate elements whose 1,000,000-scale probability fires,
// falling back to Initial when none do, and only where the cell
// currently holds SeedElement (the "random fills" spec.md §6 lists).
func randomFill(m *CaveMap, o *CaveObject, r *Rand) {
	for y := o.Y1; y <= o.Y2; y++ {
		for x := o.X1; x <= o.X2; x++ {
			if m.At(x, y) != o.SeedElement {
				continue
			}
			roll := r.Intn(1_000_000)
			placed := o.Initial
			for i := 0; i < 4; i++ {
				if o.RandomProb[i] <= 0 {
					continue
				}
				if roll < o.RandomProb[i] {
					placed = o.RandomFill[i]
					break
				}
				roll -= o.RandomProb[i]
			}
			m.rawSet(x, y, placed)
		}
	}
}
