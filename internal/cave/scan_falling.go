package cave

// isRound reports whether an element's top surface lets a solid
// resting on it roll off sideways. The reference engine distinguishes
// several explicitly-sloped wall shapes; lacking those as separate
// element tags here, any brick,
// steel wall, or other standing/falling solid counts as round — the
// same surfaces classic Boulder Dash treats as "ROUND".
func isRound(e Element) bool {
	u := e.Unscanned()
	if u == Brick || u == Steel {
		return true
	}
	return IsStandingSolid(u) || IsFallingSolid(u)
}

// tryRoll attempts to roll the solid at (x,y) sideways in rollDir,
// which succeeds only if both the side cell and the diagonal cell
// beyond it (one step further in the fall direction) are space (spec.md
// §4.5 "Standing solids that may fall").
func (cr *CaveRendered) tryRoll(x, y int, fallDir, rollDir Direction, falling Element) bool {
	sdx, sdy := rollDir.Delta()
	sx, sy := x+sdx, y+sdy
	fdx, fdy := fallDir.Delta()
	dgx, dgy := sx+fdx, sy+fdy
	if !cr.Map.IsSpace(sx, sy) || !cr.Map.IsSpace(dgx, dgy) {
		return false
	}
	cr.Map.Move(x, y, rollDir, falling)
	cr.Map.Store(x, y, Space, false)
	cr.PlaySound(SoundStoneMove, x, y)
	return true
}

// scanStandingSolid implements `start_fall` for a resting STONE,
// MEGA_STONE, DIAMOND, NUT, DIRT_BALL, DIRT_LOOSE, FLYING_STONE, or
// FLYING_DIAMOND (spec.md §4.5).
func (cr *CaveRendered) scanStandingSolid(x, y int, e Element) {
	d := cr.Gravity
	bdx, bdy := d.Delta()
	bx, by := x+bdx, y+bdy

	if cr.Map.IsSpace(bx, by) {
		falling := FallingTwin(e)
		cr.Map.Move(x, y, d, falling)
		cr.Map.Store(x, y, Space, false)
		return
	}

	below := cr.Map.At(bx, by).Unscanned()
	if !isRound(below) {
		return
	}
	falling := FallingTwin(e)
	if cr.tryRoll(x, y, d, d.CW90(), falling) {
		return
	}
	cr.tryRoll(x, y, d, d.CCW90(), falling)
}

// scanFallingSolid implements the ordered attempt list for a falling
// twin: crush_voodoo, crack_nut, magic_wall, crush, roll_or_stop
// (spec.md §4.5).
func (cr *CaveRendered) scanFallingSolid(x, y int, e Element) {
	d := cr.Gravity
	bdx, bdy := d.Delta()
	bx, by := x+bdx, y+bdy
	below := cr.Map.At(bx, by).Unscanned()

	if below == Voodoo && cr.Stored.Policy.VoodooDiesByStone {
		// voodooExplode's 3x3 blast already covers (x,y), the falling
		// solid's own cell directly above its center; no separate clear
		// needed (see the creatureExplode branch below for the same
		// reasoning).
		cr.voodooExplode(bx, by)
		return
	}

	if below == Nut {
		cr.Map.Store(bx, by, NutCrack1, false)
		cr.Map.Store(x, y, Space, false)
		cr.PlaySound(SoundNutCrack, bx, by)
		return
	}

	if below == MagicWall {
		if cr.fallIntoMagicWall(x, y, bx, by, e) {
			return
		}
	}

	if IsPlayer(below) {
		cr.KillPlayer = true
		cr.Map.Store(x, y, Space, false)
		return
	}
	if isExplodableCreature(below) {
		if IsBiter(below) {
			// Biters have no dedicated blast shape of their own; give
			// them the X-shaped ghost_explode spec.md §4.5.3 names but
			// never wires to a creature, rather than reusing the
			// square 3x3 every other creature gets. The X-shape's four
			// diagonals skip the cell directly above its center — which
			// is where the falling solid doing the crushing sits — so
			// that cell still needs clearing explicitly here.
			cr.ghostExplode(bx, by)
			cr.Map.Store(x, y, Space, false)
		} else {
			// creatureExplode's 3x3 blast already covers (x,y) (the
			// falling solid's own cell sits directly above its center),
			// overwriting it with the blast effect; clearing it again
			// here would stamp Space over that blast result.
			cr.creatureExplode(bx, by)
		}
		return
	}

	if cr.Map.IsSpace(bx, by) {
		cr.Map.Move(x, y, d, e)
		cr.Map.Store(x, y, Space, false)
		return
	}
	if isRound(below) {
		if cr.tryRoll(x, y, d, d.CW90(), e) {
			return
		}
		if cr.tryRoll(x, y, d, d.CCW90(), e) {
			return
		}
	}
	cr.Map.Store(x, y, StandingTwin(e), false)
}

func isExplodableCreature(e Element) bool {
	u := e.Unscanned()
	if _, ok := IsRotatingCreature(u); ok {
		return true
	}
	return IsCow(u) || IsBiter(u) || IsBladder(u)
}

// fallIntoMagicWall implements the magic-wall conversion step shared by
// falling solids and nitro packs (spec.md §4.5): activates the wall on
// first contact, then, while active, emits the cave's mapped element
// two cells further along the fall direction once that cell is clear.
func (cr *CaveRendered) fallIntoMagicWall(x, y, wx, wy int, falling Element) bool {
	if cr.MagicWallStateV == Expired {
		return false
	}
	if cr.MagicWallStateV == Dormant {
		cr.MagicWallStateV = Active
	}
	p := &cr.Stored.Policy
	d := cr.Gravity
	fdx, fdy := d.Delta()
	ox, oy := wx+fdx, wy+fdy
	if !cr.Map.IsSpace(ox, oy) {
		return false
	}
	var target Element
	switch StandingTwin(falling) {
	case Stone:
		target = p.MagicStoneTo
	case Diamond:
		target = p.MagicDiamondTo
	case Nut:
		target = p.MagicNutTo
	default:
		return false
	}
	cr.Map.Store(ox, oy, target, false)
	cr.Map.Store(x, y, Space, false)
	cr.PlaySound(SoundMagicWall, wx, wy)
	return true
}

// scanNitroFalling implements the nitro pack's own falling rule: it
// stops on dirt, keeps falling through space, passes through a magic
// wall like any other falling solid, and detonates on anything else
// (spec.md §4.5 "Nitro pack falling").
func (cr *CaveRendered) scanNitroFalling(x, y int, e Element) {
	d := cr.Gravity
	bdx, bdy := d.Delta()
	bx, by := x+bdx, y+bdy
	below := cr.Map.At(bx, by).Unscanned()

	if Props(below).Has(FlagDirt) {
		cr.Map.Store(x, y, StandingTwin(e), false)
		return
	}
	if cr.Map.IsSpace(bx, by) {
		cr.Map.Move(x, y, d, e)
		cr.Map.Store(x, y, Space, false)
		return
	}
	if below == MagicWall && cr.fallIntoMagicWall(x, y, bx, by, e) {
		return
	}
	cr.explode(x, y)
}
