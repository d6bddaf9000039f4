package cave

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// ReplayMove is one recorded tick's input (spec.md §4.8): a direction,
// whether fire was held, and whether the player was forced to suicide.
type ReplayMove struct {
	Move    Direction
	Fire    bool
	Suicide bool
}

// ReplayRecord is everything a replay needs to reproduce a run: the
// seed and level render() was called with, the full move sequence, and
// the outcome the original run reached (spec.md §6 "[replay]" section:
// seed, level, checksum, and a movement string).
type ReplayRecord struct {
	Seed  int64
	Level int
	Moves []ReplayMove

	PlayerState       PlayerState
	DiamondsCollected int
	Score             int
	Checksum          uint64
}

// ReplayResult reports whether a re-run reproduced the recorded
// outcome, and if not, which field first diverged. Err carries a fatal
// engine error hit partway through replay (spec.md §7); in that case OK
// is false and Mismatches is empty, since no comparison was made.
type ReplayResult struct {
	OK         bool
	Mismatches []string
	Err        error
}

// ValidateReplay re-renders the cave rec describes, replays every move
// through Iterate, and compares the terminal player_state,
// diamonds_collected, score and checksum against the recorded outcome
// (spec.md §4.8). No guessing: any divergence is reported, not
// repaired, and the caller decides whether to mark the replay
// problematic. A fatal engine error during replay aborts the remaining
// moves and is reported rather than compared against.
func ValidateReplay(stored *CaveStored, rec ReplayRecord) ReplayResult {
	cr := Render(stored, rec.Level, rec.Seed)
	for _, m := range rec.Moves {
		if err := cr.Iterate(m.Move, m.Fire, m.Suicide); err != nil {
			return ReplayResult{OK: false, Err: err}
		}
	}

	var mismatches []string
	if cr.PlayerStateV != rec.PlayerState {
		mismatches = append(mismatches, "player_state")
	}
	if cr.DiamondsCollected != rec.DiamondsCollected {
		mismatches = append(mismatches, "diamonds_collected")
	}
	if cr.Score != rec.Score {
		mismatches = append(mismatches, "score")
	}
	if cr.Checksum() != rec.Checksum {
		mismatches = append(mismatches, "checksum")
	}

	return ReplayResult{OK: len(mismatches) == 0, Mismatches: mismatches}
}

// Checksum hashes the cave's terminal, observable state: the element
// grid (unscanned — the scanned-twin marker never survives past a
// tick) plus the handful of scalar fields a replay outcome depends on.
// xxh3 gives a fast, well-distributed 64-bit digest over the resulting
// byte buffer, the same role it plays hashing cache keys in
// bottledcode-cloxcache's cache package.
func (cr *CaveRendered) Checksum() uint64 {
	buf := make([]byte, 0, len(cr.Map.cells)*2+64)
	for _, e := range cr.Map.cells {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(e.Unscanned()))
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(cr.DiamondsCollected))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(cr.Score))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(cr.SkeletonsCollected))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(cr.PlayerStateV))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(cr.PlayerX))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(cr.PlayerY))
	return xxh3.Hash(buf)
}
