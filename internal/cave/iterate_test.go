package cave

import (
	"errors"
	"testing"
)

// newLiteralCave builds a CaveStored whose map is exactly rows (no
// drawing objects), using the default engine policy, the same minimal
// shape spec.md §8's concrete scenarios describe.
func newLiteralCave(name string, rows [][]Element) *CaveStored {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	cs := NewCaveStored(name, "", w, h)
	cs.LiteralMap = rows
	return cs
}

// TestScenarioBasicPickup is spec.md §8 scenario A: a 5x3 cave with one
// diamond and a single-diamond requirement; RIGHT, RIGHT should collect
// the diamond, open the gate, and walk the player out the exit.
func TestScenarioBasicPickup(t *testing.T) {
	S := Steel
	cs := newLiteralCave("pickup", [][]Element{
		{S, S, S, S, S},
		{S, Space, Player, Diamond, Outbox},
		{S, S, S, S, S},
	})
	cs.DiamondsNeeded = 1

	cr := Render(cs, 1, 42)

	if err := cr.Iterate(Right, false, false); err != nil {
		t.Fatalf("tick1: %v", err)
	}
	if cr.DiamondsCollected != 1 {
		t.Fatalf("after tick1: DiamondsCollected = %d, want 1", cr.DiamondsCollected)
	}
	if !cr.GateOpen {
		t.Fatalf("after tick1: GateOpen = false, want true")
	}
	if cr.PlayerStateV != Living {
		t.Fatalf("after tick1: PlayerStateV = %v, want Living", cr.PlayerStateV)
	}

	if err := cr.Iterate(Right, false, false); err != nil {
		t.Fatalf("tick2: %v", err)
	}
	if cr.PlayerStateV != Exited {
		t.Fatalf("after tick2: PlayerStateV = %v, want Exited", cr.PlayerStateV)
	}
}

// TestScenarioStonePush is spec.md §8 scenario B: with pushing_stone_prob
// maxed out, a single RIGHT push moves the stone one cell and the
// player follows it in.
func TestScenarioStonePush(t *testing.T) {
	S := Steel
	cs := newLiteralCave("push", [][]Element{
		{S, S, S, S, S, S},
		{S, Player, Stone, Space, Space, S},
		{S, S, S, S, S, S},
	})
	cs.Policy.PushingStoneProb = 1_000_000

	cr := Render(cs, 1, 7)
	if err := cr.Iterate(Right, false, false); err != nil {
		t.Fatalf("iterate: %v", err)
	}

	if got := cr.Map.At(3, 1).Unscanned(); got != Stone {
		t.Fatalf("stone should now be at column 3 (0-indexed), got %v at (3,1)", got)
	}
	if cr.PlayerX != 2 || cr.PlayerY != 1 {
		t.Fatalf("player should have followed the stone to (2,1), got (%d,%d)", cr.PlayerX, cr.PlayerY)
	}
	if got := cr.Map.At(2, 1).Unscanned(); !IsPlayer(got) {
		t.Fatalf("expected a player element at (2,1), got %v", got)
	}
}

// TestScenarioStonePushBlockedByProbability checks the mirror case:
// with pushing_stone_prob = 0 the stone never budges and the player
// stays put.
func TestScenarioStonePushBlockedByProbability(t *testing.T) {
	S := Steel
	cs := newLiteralCave("no-push", [][]Element{
		{S, S, S, S, S, S},
		{S, Player, Stone, Space, Space, S},
		{S, S, S, S, S, S},
	})
	cs.Policy.PushingStoneProb = 0

	cr := Render(cs, 1, 7)
	if err := cr.Iterate(Right, false, false); err != nil {
		t.Fatalf("iterate: %v", err)
	}
	if cr.PlayerX != 1 || cr.PlayerY != 1 {
		t.Fatalf("player should not have moved, got (%d,%d)", cr.PlayerX, cr.PlayerY)
	}
	if got := cr.Map.At(2, 1).Unscanned(); got != Stone {
		t.Fatalf("stone should not have moved, got %v at (2,1)", got)
	}
}

// TestScenarioFallingStoneCrushesFirefly is spec.md §8 scenario C: a
// stone falls two cells onto a firefly and explodes it.
func TestScenarioFallingStoneCrushesFirefly(t *testing.T) {
	S := Steel
	cs := newLiteralCave("crush", [][]Element{
		{S, S, S},
		{S, Stone, S},
		{S, Space, S},
		{S, Firefly1, S},
		{S, S, S},
	})

	cr := Render(cs, 1, 3)

	// Tick 1: the stone starts falling.
	if err := cr.Iterate(Still, false, false); err != nil {
		t.Fatalf("tick1: %v", err)
	}
	if got := cr.Map.At(1, 2).Unscanned(); got != StoneF {
		t.Fatalf("after tick1 stone should be falling at (1,2), got %v", got)
	}

	// Tick 2: the falling stone reaches the firefly and crushes it.
	if err := cr.Iterate(Still, false, false); err != nil {
		t.Fatalf("tick2: %v", err)
	}
	if got := cr.Map.At(1, 3).Unscanned(); got != Explode1 {
		t.Fatalf("firefly cell should now hold Explode1, got %v", got)
	}
	// The falling stone's own former cell is also inside the blast
	// radius and should carry the explosion too, not revert to Space.
	if got := cr.Map.At(1, 2).Unscanned(); got != Explode1 {
		t.Fatalf("stone's former cell should also carry the blast, got %v", got)
	}

	// Subsequent ticks advance the explosion to its terminal effect
	// (Space, by default policy).
	for i := 0; i < 5; i++ {
		if err := cr.Iterate(Still, false, false); err != nil {
			t.Fatalf("tick %d: %v", i+3, err)
		}
	}
	if got := cr.Map.At(1, 3).Unscanned(); got != Space {
		t.Fatalf("explosion should have resolved to Space, got %v", got)
	}
}

// TestScenarioMagicWall is spec.md §8 scenario D: a stone falls through
// an active magic wall and emerges as a diamond one cell below it.
func TestScenarioMagicWall(t *testing.T) {
	S := Steel
	cs := newLiteralCave("magicwall", [][]Element{
		{S, S, S},
		{S, Stone, S},
		{S, Space, S},
		{S, MagicWall, S},
		{S, Space, S},
		{S, Space, S},
		{S, S, S},
	})
	cs.MagicWallMillis = 30000
	cs.Policy.MagicStoneTo = Diamond

	cr := Render(cs, 1, 11)

	// Tick 1: the standing stone starts falling into the space below it.
	if err := cr.Iterate(Still, false, false); err != nil {
		t.Fatalf("tick1: %v", err)
	}
	if got := cr.Map.At(1, 2).Unscanned(); got != StoneF {
		t.Fatalf("after tick1 stone should be falling at (1,2), got %v", got)
	}
	// Tick 2: the falling stone reaches the wall, activating it and
	// emerging as a diamond one cell below.
	if err := cr.Iterate(Still, false, false); err != nil {
		t.Fatalf("tick2: %v", err)
	}
	if cr.MagicWallStateV != Active {
		t.Fatalf("magic wall should be Active after first contact, got %v", cr.MagicWallStateV)
	}
	if got := cr.Map.At(1, 4).Unscanned(); got != Diamond {
		t.Fatalf("diamond should have emerged one cell below the wall, got %v at (1,4)", got)
	}
	if got := cr.Map.At(1, 2).Unscanned(); got != Space {
		t.Fatalf("falling stone's cell should be cleared once it enters the wall, got %v", got)
	}

	// Exhaust the wall's remaining lifetime; it must become Expired and
	// never revert (spec.md §8 invariant 5).
	for cr.MagicWallStateV == Active {
		if err := cr.Iterate(Still, false, false); err != nil {
			t.Fatalf("drain tick: %v", err)
		}
	}
	if cr.MagicWallStateV != Expired {
		t.Fatalf("magic wall should end Expired, got %v", cr.MagicWallStateV)
	}
	prevState := cr.MagicWallStateV
	for i := 0; i < 5; i++ {
		if err := cr.Iterate(Still, false, false); err != nil {
			t.Fatalf("post-expiry tick: %v", err)
		}
		if cr.MagicWallStateV != prevState {
			t.Fatalf("Expired must be terminal; state changed to %v", cr.MagicWallStateV)
		}
	}
}

// TestScenarioTimeout is spec.md §8 scenario E: time running out while
// the player is alive transitions to Timeout, not Died, and queues the
// timeout sound.
func TestScenarioTimeout(t *testing.T) {
	S := Steel
	cs := newLiteralCave("timeout", [][]Element{
		{S, S, S},
		{S, Player, S},
		{S, S, S},
	})
	cs.InitialTime = 0 // TimeMs will be driven to 0 on the very first tick

	cr := Render(cs, 1, 5)
	cr.TimeMs = 1 // force the clock to cross zero this tick

	if err := cr.Iterate(Still, false, false); err != nil {
		t.Fatalf("iterate: %v", err)
	}
	if cr.PlayerStateV != Timeout {
		t.Fatalf("PlayerStateV = %v, want Timeout", cr.PlayerStateV)
	}
	if cr.TimeMs != 0 {
		t.Fatalf("TimeMs = %d, want 0 (clamped)", cr.TimeMs)
	}
	if cr.Sound1.Kind != SoundTimeout && cr.Sound2.Kind != SoundTimeout && cr.Sound3.Kind != SoundTimeout {
		t.Fatalf("expected a SoundTimeout request queued on some channel")
	}
}

// TestScenarioReplayRevalidation is spec.md §8 scenario F: two renders
// of the same (seed, level, moves) must reach the exact same terminal
// score, diamonds, player state and checksum.
func TestScenarioReplayRevalidation(t *testing.T) {
	S := Steel
	rows := [][]Element{
		{S, S, S, S, S, S, S},
		{S, Player, Space, Stone, Space, Diamond, S},
		{S, Space, Space, Space, Space, Space, S},
		{S, S, S, S, S, S, S},
	}
	moves := []ReplayMove{
		{Move: Right}, {Move: Right}, {Move: Up}, {Move: Right}, {Move: Right}, {Move: Still},
	}

	build := func() *CaveStored {
		cs := newLiteralCave("replay", rows)
		cs.Policy.PushingStoneProb = 1_000_000
		return cs
	}

	cr1 := Render(build(), 1, 42)
	for _, m := range moves {
		if err := cr1.Iterate(m.Move, m.Fire, m.Suicide); err != nil {
			t.Fatalf("first run: %v", err)
		}
	}
	rec := ReplayRecord{
		Seed:              42,
		Level:             1,
		Moves:             moves,
		PlayerState:       cr1.PlayerStateV,
		DiamondsCollected: cr1.DiamondsCollected,
		Score:             cr1.Score,
		Checksum:          cr1.Checksum(),
	}

	result := ValidateReplay(build(), rec)
	if !result.OK {
		t.Fatalf("replay diverged: %v (err=%v)", result.Mismatches, result.Err)
	}
}

// TestInvariantScannedTwinCleanliness is spec.md §8 invariant 3: no map
// cell may carry the SCANNED marker once Iterate returns.
func TestInvariantScannedTwinCleanliness(t *testing.T) {
	S := Steel
	cs := newLiteralCave("clean", [][]Element{
		{S, S, S, S, S},
		{S, Player, Stone, Dirt, S},
		{S, S, S, S, S},
	})
	cr := Render(cs, 1, 123)
	for i := 0; i < 10; i++ {
		if err := cr.Iterate(Right, false, false); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if cr.Map.AnyScanned() {
			t.Fatalf("tick %d left a scanned cell behind", i)
		}
	}
}

// TestInvariantGateMonotonicity is spec.md §8 invariant 4: once open,
// the gate never closes again for the life of this CaveRendered.
func TestInvariantGateMonotonicity(t *testing.T) {
	S := Steel
	cs := newLiteralCave("gate", [][]Element{
		{S, S, S, S},
		{S, Player, Diamond, S},
		{S, S, S, S},
	})
	cs.DiamondsNeeded = 1
	cr := Render(cs, 1, 1)
	if err := cr.Iterate(Right, false, false); err != nil {
		t.Fatalf("iterate: %v", err)
	}
	if !cr.GateOpen {
		t.Fatalf("gate should have opened")
	}
	for i := 0; i < 5; i++ {
		if err := cr.Iterate(Still, false, false); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if !cr.GateOpen {
			t.Fatalf("tick %d: gate closed after opening, violates monotonicity", i)
		}
	}
}

// TestInvariantDiagonalRectification is spec.md §8 invariant 9: with
// diagonal movement disabled, iterate(UP_LEFT) rectifies to LEFT and
// moves the player only horizontally.
func TestInvariantDiagonalRectification(t *testing.T) {
	S := Steel
	cs := newLiteralCave("diag", [][]Element{
		{S, S, S, S},
		{S, Space, Player, S},
		{S, S, S, S},
	})
	cs.Policy.DiagonalMovements = false

	cr := Render(cs, 1, 1)
	if err := cr.Iterate(UpLeft, false, false); err != nil {
		t.Fatalf("iterate: %v", err)
	}
	if cr.LastDirection != Left {
		t.Fatalf("LastDirection = %v, want Left (rectified)", cr.LastDirection)
	}
	if cr.PlayerY != 1 {
		t.Fatalf("player moved vertically despite diagonal rectification: y=%d", cr.PlayerY)
	}
	if cr.PlayerX != 1 {
		t.Fatalf("player should have moved left to x=1, got x=%d", cr.PlayerX)
	}
}

// TestInvariantAmoebaConservation is spec.md §8 invariant 6: with zero
// growth probability the amoeba never grows into its free neighbors, so
// its cell count never changes.
func TestInvariantAmoebaConservation(t *testing.T) {
	S := Steel
	cs := newLiteralCave("amoeba", [][]Element{
		{S, S, S, S, S},
		{S, Space, Amoeba, Space, S},
		{S, S, S, S, S},
	})
	cs.Policy.AmoebaGrowthProbSlow = 0
	cs.Policy.AmoebaGrowthProbFast = 0
	cs.Policy.AmoebaThreshold = 1000
	cs.Policy.Amoeba2Threshold = 1000

	cr := Render(cs, 1, 9)
	countAmoeba := func() int {
		n := 0
		for y := 0; y < cr.Map.H; y++ {
			for x := 0; x < cr.Map.W; x++ {
				if cr.Map.At(x, y).Unscanned() == Amoeba {
					n++
				}
			}
		}
		return n
	}
	before := countAmoeba()
	for i := 0; i < 10; i++ {
		if err := cr.Iterate(Still, false, false); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	after := countAmoeba()
	if before != after {
		t.Fatalf("amoeba count changed from %d to %d with zero growth probability", before, after)
	}
}

// TestDispatchCellRejectsOutOfRangeElement is spec.md §7's "Assertion
// failures" kind: an element value outside the legitimate range must
// surface as a fatal *EngineError through Iterate, not panic or be
// silently treated as a no-op.
func TestDispatchCellRejectsOutOfRangeElement(t *testing.T) {
	S := Steel
	cs := newLiteralCave("bad-element", [][]Element{
		{S, S, S},
		{S, Space, S},
		{S, S, S},
	})
	cr := Render(cs, 1, 1)
	cr.Map.rawSet(1, 1, elementCount+50)

	err := cr.Iterate(Still, false, false)
	if err == nil {
		t.Fatalf("expected an error for an out-of-range element")
	}
	var engErr *EngineError
	if !errors.As(err, &engErr) {
		t.Fatalf("expected *EngineError, got %T: %v", err, err)
	}
}
