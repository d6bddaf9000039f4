package cave

// Render fills a live CaveMap from a CaveStored template, draws its
// objects (or literal map), and seeds both RNGs, producing the
// CaveRendered a game loop then drives tick by tick with Iterate
// (spec.md §6's render(stored, level, seed)). seed == -1 asks for an
// unpredictable seed drawn from wall-clock entropy.
func Render(stored *CaveStored, level int, seed int64) *CaveRendered {
	m := NewCaveMap(stored.W, stored.H, stored.Policy.LineShift)

	drawRNG := NewRand(seed)
	stored.drawAll(m, drawRNG)

	cr := &CaveRendered{
		Stored: stored,
		Level:  level,
		Seed:   seed,
		Map:    m,
		Rng:    NewRand(seed),
		C64Rng: NewC64Rand(c64Seed(seed, level)),

		TimeMs:        stored.InitialTime * 1000,
		MagicWallTime: stored.MagicWallMillis,
		AmoebaTime:    stored.AmoebaSlowMillis,
		Amoeba2Time:   stored.AmoebaSlowMillis,

		HatchingDelayFrame: stored.HatchingDelay,

		Gravity:       Down,
		LastDirection: Still,
		PlayerStateV:  NotYet,
		AmoebaStateV:  Sleeping,
		Amoeba2StateV: Sleeping,
	}

	px, py, found := findFirstPlayerOrInbox(m)
	if found {
		cr.PlayerX, cr.PlayerY = px, py
		for i := 0; i < playerHistoryLen; i++ {
			cr.pushPlayerHistory(px, py)
		}
	}

	return cr
}

// c64Seed derives the deterministic generator's 16-bit seed from the
// caller's seed and cave level, so two different levels of the same
// replay never share a C64 stream by accident. seed == -1 (the
// unpredictable request) still needs *a* C64 seed: it draws one from
// a fresh clock-seeded unpredictable generator.
func c64Seed(seed int64, level int) int {
	if seed == -1 {
		return NewRand(-1).Intn(65536)
	}
	s := (seed + int64(level)) % 65536
	if s < 0 {
		s += 65536
	}
	return int(s)
}

func findFirstPlayerOrInbox(m *CaveMap) (x, y int, found bool) {
	var inboxX, inboxY int
	haveInbox := false
	for yy := 0; yy < m.H; yy++ {
		for xx := 0; xx < m.W; xx++ {
			e := m.At(xx, yy).Unscanned()
			if IsPlayer(e) {
				return xx, yy, true
			}
			if e == Inbox && !haveInbox {
				inboxX, inboxY, haveInbox = xx, yy, true
			}
		}
	}
	return inboxX, inboxY, haveInbox
}
