package cave

// isAmoebaEdible reports whether an amoeba may grow into e: plain
// space or anything dirt-like (spec.md §4.5 "Amoebae").
func isAmoebaEdible(e Element) bool {
	return e == Space || Props(e).Has(FlagDirt)
}

// scanAmoeba implements one cell's turn of spec.md §4.5's "Amoebae"
// rule for either amoeba slot (1 = AMOEBA, 2 = AMOEBA_2): counts
// itself, applies the terminal TOO_BIG/ENCLOSED overwrite, otherwise
// wakes on any edible neighbor and rolls a cardinal-neighbor growth
// attempt while awake.
func (cr *CaveRendered) scanAmoeba(x, y int, e Element, slot int) {
	p := &cr.Stored.Policy

	state := cr.AmoebaStateV
	threshold := p.AmoebaThreshold
	timeLeft := cr.AmoebaTime
	if slot == 2 {
		state = cr.Amoeba2StateV
		threshold = p.Amoeba2Threshold
		timeLeft = cr.Amoeba2Time
	}
	_ = threshold

	if slot == 1 {
		cr.amoebaCount++
	} else {
		cr.amoeba2Count++
	}

	if state == TooBig {
		cr.Map.Store(x, y, p.AmoebaTooBigEffect, false)
		return
	}
	if state == Enclosed {
		cr.Map.Store(x, y, p.AmoebaEnclosedEffect, false)
		return
	}

	edibleNeighbor := false
	for _, d := range cardinal4 {
		ddx, ddy := d.Delta()
		if isAmoebaEdible(cr.Map.At(x+ddx, y+ddy).Unscanned()) {
			edibleNeighbor = true
			break
		}
	}
	if edibleNeighbor {
		if slot == 1 {
			cr.foundEnclosed = false
		} else {
			cr.foundEnclosed2 = false
		}
		if state == Sleeping {
			state = Awake
			if slot == 1 {
				cr.AmoebaStateV = Awake
			} else {
				cr.Amoeba2StateV = Awake
			}
		}
	}

	if state != Awake {
		return
	}
	prob := p.AmoebaGrowthProbSlow
	if timeLeft <= 0 {
		prob = p.AmoebaGrowthProbFast
	}
	if !cr.Rng.OneIn1M(prob) {
		return
	}
	d := cardinal4[cr.Rng.Intn(4)]
	ddx, ddy := d.Delta()
	nx, ny := x+ddx, y+ddy
	if isAmoebaEdible(cr.Map.At(nx, ny).Unscanned()) {
		cr.Map.Store(nx, ny, e.Unscanned(), false)
		cr.PlaySound(SoundAmoeba, x, y)
	}
}

// updateAmoebaState applies the post-scan transition spec.md §4.5
// (amoeba paragraph) and §8 invariant 6 require: TOO_BIG/ENCLOSED are
// terminal; otherwise a count over threshold promotes to TOO_BIG, a
// scan that found no edible neighbor anywhere promotes to ENCLOSED,
// and an active magic wall encloses the amoeba when the cave's policy
// says it should.
func (cr *CaveRendered) updateAmoebaState() {
	cr.updateOneAmoebaState(1)
	cr.updateOneAmoebaState(2)
}

func (cr *CaveRendered) updateOneAmoebaState(slot int) {
	p := &cr.Stored.Policy
	state := &cr.AmoebaStateV
	count := cr.amoebaCount
	threshold := p.AmoebaThreshold
	found := cr.foundEnclosed
	if slot == 2 {
		state = &cr.Amoeba2StateV
		count = cr.amoeba2Count
		threshold = p.Amoeba2Threshold
		found = cr.foundEnclosed2
	}
	if *state == TooBig || *state == Enclosed {
		return
	}
	if count >= threshold && threshold > 0 {
		*state = TooBig
		return
	}
	if found {
		*state = Enclosed
		return
	}
	if cr.MagicWallStateV == Active && p.MagicWallStopsAmoeba {
		*state = Enclosed
	}
}
