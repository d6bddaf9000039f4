package cave

import "testing"

func TestCaveMapWrapTorus(t *testing.T) {
	m := NewCaveMap(4, 3, false)
	m.Store(0, 0, Dirt, true)
	if got := m.At(4, 0); got != Dirt {
		t.Fatalf("At(4,0) = %v, want Dirt (wraps to 0,0)", got)
	}
	if got := m.At(-1, 0); got != Dirt {
		t.Fatalf("At(-1,0) = %v, want Dirt (wraps to 3,0 then back)", got)
	}
}

func TestCaveMapStoreSetsScannedUnlessRaw(t *testing.T) {
	m := NewCaveMap(4, 4, false)
	m.Store(1, 1, Stone, false)
	if !m.At(1, 1).IsScanned() {
		t.Fatalf("Store without raw should set the scanned bit")
	}
	m.Store(2, 2, Stone, true)
	if m.At(2, 2).IsScanned() {
		t.Fatalf("Store with raw=true must not set the scanned bit")
	}
}

func TestCaveMapStoreAbsorbsIntoLava(t *testing.T) {
	m := NewCaveMap(4, 4, false)
	m.rawSet(1, 1, Lava)
	m.Store(1, 1, Stone, false)
	if got := m.At(1, 1).Unscanned(); got != Lava {
		t.Fatalf("write into Lava should be absorbed, got %v", got)
	}
}

func TestCaveMapUnscan(t *testing.T) {
	m := NewCaveMap(3, 3, false)
	m.Store(0, 0, Diamond, false)
	if !m.Unscan(0, 0) {
		t.Fatalf("Unscan should report true the first time")
	}
	if m.Unscan(0, 0) {
		t.Fatalf("Unscan should report false once already cleared")
	}
	if m.At(0, 0).IsScanned() {
		t.Fatalf("cell should no longer carry the scanned bit")
	}
}

func TestCaveMapEachSkipsBorderWhenNotAllowed(t *testing.T) {
	m := NewCaveMap(5, 4, false)
	visited := map[[2]int]bool{}
	m.Each(false, func(x, y int) { visited[[2]int{x, y}] = true })
	for x := 0; x < m.W; x++ {
		if visited[[2]int{x, 0}] || visited[[2]int{x, m.H - 1}] {
			t.Fatalf("border row visited despite borderScanFirstAndLast=false")
		}
	}
	if !visited[[2]int{2, 1}] {
		t.Fatalf("interior cell should have been visited")
	}
}

func TestCaveMapEachVisitsBorderWhenAllowed(t *testing.T) {
	m := NewCaveMap(5, 4, false)
	visited := map[[2]int]bool{}
	m.Each(true, func(x, y int) { visited[[2]int{x, y}] = true })
	if !visited[[2]int{0, 0}] || !visited[[2]int{4, 3}] {
		t.Fatalf("border cells should have been visited when allowed")
	}
}

func TestCaveMapTickHammeredFiresOnceAtZero(t *testing.T) {
	m := NewCaveMap(3, 3, false)
	m.SetHammered(1, 1, 2)
	var fired []int
	m.TickHammered(func(x, y int) { fired = append(fired, x+y*3) })
	if len(fired) != 0 {
		t.Fatalf("should not fire before the countdown reaches zero")
	}
	m.TickHammered(func(x, y int) { fired = append(fired, x+y*3) })
	if len(fired) != 1 {
		t.Fatalf("should fire exactly once when the countdown reaches zero, got %d", len(fired))
	}
}

func TestCaveMapAnyScanned(t *testing.T) {
	m := NewCaveMap(3, 3, false)
	if m.AnyScanned() {
		t.Fatalf("a fresh map should have no scanned cells")
	}
	m.Store(0, 0, Stone, false)
	if !m.AnyScanned() {
		t.Fatalf("expected a scanned cell after a non-raw Store")
	}
}
