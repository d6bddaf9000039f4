// Command cavedemo renders a small built-in cave and drives it for a
// fixed number of ticks, the headless analogue of the teacher's
// RunDesktop entry point: same seed-from-env-or-clock convention, same
// one-line startup diagnostics via the standard log package, but no
// window, no GL, no audio — there's nothing here to render to.
package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"cavengine/internal/cave"
)

func main() {
	seed := time.Now().UnixNano()
	if s := os.Getenv("CAVE_SEED"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = v
		}
	}

	ticks := 200
	if s := os.Getenv("CAVE_TICKS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			ticks = v
		}
	}

	log.Printf("cavedemo: seed=%d ticks=%d", seed, ticks)

	stored := demoCave()
	cr := cave.Render(stored, 1, seed)

	for i := 0; i < ticks; i++ {
		if err := cr.Iterate(cave.Still, false, false); err != nil {
			log.Fatalf("tick %d: %v", i, err)
		}
		if cr.PlayerStateV == cave.Exited || cr.PlayerStateV == cave.Died {
			log.Printf("tick %d: player state %v, stopping early", i, cr.PlayerStateV)
			break
		}
	}

	log.Printf("final: score=%d diamonds=%d/%d player_state=%v",
		cr.Score, cr.DiamondsCollected, stored.DiamondsNeeded, cr.PlayerStateV)
}

// demoCave builds a small literal-map cave: a walled-off room, a
// hatching inbox, a scatter of dirt and diamonds, and a single falling
// stone to exercise gravity on the very first tick.
func demoCave() *cave.CaveStored {
	const w, h = 12, 8
	stored := cave.NewCaveStored("cavedemo", cave.EngineBD1, w, h)
	stored.DiamondsNeeded = 3

	grid := make([][]cave.Element, h)
	for y := range grid {
		row := make([]cave.Element, w)
		for x := range row {
			switch {
			case x == 0 || y == 0 || x == w-1 || y == h-1:
				row[x] = cave.Steel
			default:
				row[x] = cave.Dirt
			}
		}
		grid[y] = row
	}

	grid[1][1] = cave.Inbox
	grid[3][4] = cave.Diamond
	grid[3][6] = cave.Diamond
	grid[5][3] = cave.Diamond
	grid[2][8] = cave.Stone
	grid[3][8] = cave.Space
	grid[1][h-2] = cave.Outbox

	stored.LiteralMap = grid
	return stored
}
