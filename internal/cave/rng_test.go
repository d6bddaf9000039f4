package cave

import "testing"

// TestC64RandDeterministic verifies spec.md §8 invariant 2: the same
// seed always produces the same output stream, independent of
// wall-clock time or call order from outside the generator itself.
func TestC64RandDeterministic(t *testing.T) {
	for _, seed := range []int{0, 1, 42, 1000, 65535} {
		a := NewC64Rand(seed)
		b := NewC64Rand(seed)
		for i := 0; i < 256; i++ {
			av, bv := a.Next(), b.Next()
			if av != bv {
				t.Fatalf("seed %d: step %d diverged: %d != %d", seed, i, av, bv)
			}
		}
	}
}

// TestC64RandSeedWraps checks the documented seed range (0..65535);
// seed+65536 must reproduce the same stream since NewC64Rand folds the
// seed through mod-65536 before splitting it into (rand1,rand2).
func TestC64RandSeedWraps(t *testing.T) {
	a := NewC64Rand(123)
	b := NewC64Rand(123 + 65536)
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("seed and seed+65536 should produce identical streams")
		}
	}
}

// TestC64RandDistinctSeedsDiverge guards against the state collapsing
// to a single fixed point regardless of seed — the bug that shipped
// when NewC64Rand iterated step() starting from the all-zero state:
// (0,0) is a fixed point of step() (every term in its arithmetic is 0
// when rand1=rand2=0), so iterating it any number of times from (0,0)
// can never leave (0,0), and every seed produced the same all-zero
// stream. Seeding directly from the seed's own bytes must make
// distinct seeds start, and stay, distinct.
func TestC64RandDistinctSeedsDiverge(t *testing.T) {
	seeds := []int{1, 2, 3, 42, 12345, 65535}
	streams := make(map[int][5]uint8, len(seeds))
	for _, seed := range seeds {
		r := NewC64Rand(seed)
		var out [5]uint8
		for i := range out {
			out[i] = r.Next()
		}
		streams[seed] = out
	}
	for i, a := range seeds {
		for _, b := range seeds[i+1:] {
			if streams[a] == streams[b] {
				t.Fatalf("seeds %d and %d produced identical streams %v", a, b, streams[a])
			}
		}
	}
}

// TestC64RandVectors pins documented output vectors (spec.md §8:
// "documented test vectors for k ∈ {1, 10, 256}") derived directly
// from spec.md §4.4's own arithmetic, since the retrieved pack's
// original_source/ carries the C64RandomGenerator's declaration and
// call sites (caverendered.hpp, caverenderedengine.cpp) but not its
// step-function implementation to cross-check against — spec.md's
// formula is the ground truth these vectors transcribe, computed
// independently of this package's own step() implementation.
func TestC64RandVectors(t *testing.T) {
	r := NewC64Rand(42)
	var got []uint8
	for i := 0; i < 256; i++ {
		got = append(got, r.Next())
	}
	if got[0] != 42 {
		t.Fatalf("seed 42, k=1: got %d, want 42", got[0])
	}
	if got[9] != 107 {
		t.Fatalf("seed 42, k=10: got %d, want 107", got[9])
	}
	if got[255] != 200 {
		t.Fatalf("seed 42, k=256: got %d, want 200", got[255])
	}
	wantFirst10 := []uint8{42, 52, 126, 203, 234, 28, 151, 158, 3, 107}
	for i, want := range wantFirst10 {
		if got[i] != want {
			t.Fatalf("seed 42, step %d: got %d, want %d", i, got[i], want)
		}
	}
}

// TestC64RandStepArithmetic pins the exact arithmetic spec.md §4.4
// documents against a hand-computed first step from the all-zero state,
// so a future "simplification" of the step function gets caught.
func TestC64RandStepArithmetic(t *testing.T) {
	r := &C64Rand{rand1: 0, rand2: 0}
	got := r.step()
	// From (0,0): tempRand1=0, tempRand2=0, resultRand2=0, sum1=0,
	// resultRand1=0, carry=0 -> next state (0,0), output 0.
	if got != 0 {
		t.Fatalf("step from zero state = %d, want 0", got)
	}
	r2 := &C64Rand{rand1: 1, rand2: 0}
	got2 := r2.step()
	// rand1=1,rand2=0: tempRand1=(1&1)*0x80=0x80, tempRand2=(0>>1)&0x7F=0
	// resultRand2 = (0&1)*0x80 + (1>>1) + 0x80 = 0+0+0x80 = 0x80
	// sum1 = 1+0 = 1, resultRand1=1, carry=0, resultRand2 stays 0x80
	if got2 != 1 {
		t.Fatalf("step from (1,0) = %d, want 1", got2)
	}
	r1, r2v := r2.State()
	if r1 != 1 || r2v != 0x80 {
		t.Fatalf("state after step from (1,0) = (%d,%d), want (1,128)", r1, r2v)
	}
}

func TestC64RandSetStateRoundTrip(t *testing.T) {
	r := NewC64Rand(777)
	for i := 0; i < 5; i++ {
		r.Next()
	}
	s1, s2 := r.State()
	clone := &C64Rand{}
	clone.SetState(s1, s2)
	for i := 0; i < 50; i++ {
		if r.Next() != clone.Next() {
			t.Fatalf("clone restored via SetState diverged from original")
		}
	}
}

func TestRandUnpredictableDeterministicGivenSeed(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("same seed should produce identical unpredictable streams")
		}
	}
}

func TestRandOneIn1MBounds(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 100; i++ {
		if r.OneIn1M(0) {
			t.Fatalf("probability 0 must never fire")
		}
	}
	for i := 0; i < 100; i++ {
		if !r.OneIn1M(1_000_000) {
			t.Fatalf("probability 1,000,000 must always fire")
		}
	}
}

func TestRandIntnNonPositive(t *testing.T) {
	r := NewRand(1)
	if r.Intn(0) != 0 || r.Intn(-5) != 0 {
		t.Fatalf("Intn with n<=0 should return 0")
	}
}

func TestRandRangeDegenerate(t *testing.T) {
	r := NewRand(1)
	if got := r.Range(5, 5); got != 5 {
		t.Fatalf("Range(5,5) = %d, want 5", got)
	}
	if got := r.Range(5, 3); got != 5 {
		t.Fatalf("Range(5,3) (max<=min) = %d, want 5", got)
	}
}
