package cave

import "testing"

func TestDirectionRotationRoundTrip(t *testing.T) {
	for d := Up; d < directionCount; d++ {
		if got := d.CW90().CCW90(); got != d {
			t.Errorf("CW90 then CCW90 of %v = %v, want %v", d, got, d)
		}
		if got := d.CW45().CW45().CW45().CW45().CW45().CW45().CW45().CW45(); got != d {
			t.Errorf("eight CW45 steps from %v = %v, want identity", d, got)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("Opposite twice from %v = %v, want %v", d, got, d)
		}
	}
}

func TestDirectionStillRotationIsIdentity(t *testing.T) {
	if Still.CW45() != Still || Still.CW90() != Still || Still.Opposite() != Still {
		t.Fatalf("Still must rotate to itself in every direction")
	}
}

func TestDirectionHorizontalComponent(t *testing.T) {
	cases := map[Direction]Direction{
		UpRight: Right, DownRight: Right,
		UpLeft: Left, DownLeft: Left,
		Up: Up, Down: Down, Still: Still,
	}
	for d, want := range cases {
		if got := d.HorizontalComponent(); got != want {
			t.Errorf("HorizontalComponent(%v) = %v, want %v", d, got, want)
		}
	}
}

func TestDirectionIsDiagonal(t *testing.T) {
	diag := []Direction{UpRight, DownRight, DownLeft, UpLeft}
	for _, d := range diag {
		if !d.IsDiagonal() {
			t.Errorf("%v should be diagonal", d)
		}
	}
	straight := []Direction{Still, Up, Down, Left, Right}
	for _, d := range straight {
		if d.IsDiagonal() {
			t.Errorf("%v should not be diagonal", d)
		}
	}
}

func TestDirectionTablesMatchMethods(t *testing.T) {
	for d := Direction(0); d < directionCount; d++ {
		if cw90[d] != d.CW90() || ccw90[d] != d.CCW90() {
			t.Errorf("package-level 90-degree tables disagree with methods for %v", d)
		}
		if opposite[d] != d.Opposite() {
			t.Errorf("package-level opposite table disagrees with method for %v", d)
		}
	}
}
