package cave

// cardinal4 lists the four orthogonal directions, used by amoeba
// growth, acid spread, and the cow-enclosed freedom check.
var cardinal4 = [4]Direction{Up, Right, Down, Left}

// isFlyKiller reports whether e is dangerous enough to a creature
// touching it to trigger an immediate explosion — an active explosion
// stage of any kind, or lava (spec.md §4.5 "Creatures": "if any
// neighbor blows up flies, explode").
func isFlyKiller(e Element) bool {
	u := e.Unscanned()
	if u == Lava {
		return true
	}
	return seqExplode.contains(u) || seqBombExpl.contains(u) ||
		seqGhostExpl.contains(u) || seqNitroExpl.contains(u)
}

// scanCreatureTurn implements the shared four-facing turn rule spec.md
// §4.5 describes for firefly/butterfly/alt-firefly/alt-butterfly/
// stonefly/dragonfly/cow: touch voodoo, explode near danger, else a
// fast-turn preference with straight-ahead fallback and in-place
// rotation as the last resort.
func (cr *CaveRendered) scanCreatureTurn(x, y int, e Element, familyFirst Element) {
	for _, d := range cardinal4 {
		ndx, ndy := d.Delta()
		if cr.Map.At(x+ndx, y+ndy).Unscanned() == Voodoo {
			cr.VoodooTouched = true
		}
		if isFlyKiller(cr.Map.At(x+ndx, y+ndy).Unscanned()) {
			cr.creatureExplode(x, y)
			return
		}
	}

	ccw := Props(e).Has(FlagCCW) != cr.CreaturesBackwards
	facing := CreatureFacing(e, familyFirst)

	preferred := facing.CW90()
	if ccw {
		preferred = facing.CCW90()
	}
	if pdx, pdy := preferred.Delta(); cr.Map.IsSpace(x+pdx, y+pdy) {
		cr.Map.Move(x, y, preferred, WithFacing(familyFirst, preferred))
		cr.Map.Store(x, y, Space, false)
		return
	}

	if fdx, fdy := facing.Delta(); cr.Map.IsSpace(x+fdx, y+fdy) {
		cr.Map.Move(x, y, facing, WithFacing(familyFirst, facing))
		cr.Map.Store(x, y, Space, false)
		return
	}

	turnedInPlace := facing.CCW90()
	if ccw {
		turnedInPlace = facing.CW90()
	}
	cr.Map.Store(x, y, WithFacing(familyFirst, turnedInPlace), false)
}

// scanCowEnclosed advances an enclosed cow through its seven stall
// stages (spec.md §4.5): any tick a cardinal neighbor opens up frees
// it back to a live cow; reaching stage 7 still enclosed converts it
// to a skeleton.
func (cr *CaveRendered) scanCowEnclosed(x, y int, e Element) {
	for _, d := range cardinal4 {
		dx, dy := d.Delta()
		if cr.Map.IsSpace(x+dx, y+dy) {
			cr.Map.Store(x, y, Cow1, false)
			return
		}
	}
	if e == CowEnclosed7 {
		cr.Map.Store(x, y, Skeleton, false)
		return
	}
	cr.Map.Store(x, y, e+1, false)
}
