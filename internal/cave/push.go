package cave

// stonePushPossible encodes the push-eligibility
// table of spec.md §4.5.1: which stone-family elements can be shoved
// and under what condition.
func stonePushPossible(cr *CaveRendered, e Element) bool {
	p := &cr.Stored.Policy
	switch e {
	case WaitingStone:
		return true
	case ChasingStone:
		return cr.SweetEaten
	case MegaStone:
		return cr.SweetEaten && p.MegaStonesPushableWithSweet
	case Stone, FlyingStone, Nut, NitroPack:
		return true
	default:
		return false
	}
}

func isStoneFamily(e Element) bool {
	switch e.Unscanned() {
	case Stone, WaitingStone, ChasingStone, MegaStone, FlyingStone, Nut, NitroPack:
		return true
	default:
		return false
	}
}

// doPush implements `do_push` (spec.md §4.5.1): (x,y) is the cell the
// player is trying to move into, holding `element`. Reports whether
// the push succeeded (and so the caller should let the player move
// into (x,y)).
func (cr *CaveRendered) doPush(x, y int, element Element, move Direction, fire bool) bool {
	e := element.Unscanned()

	switch {
	case isStoneFamily(e):
		if move != cr.Gravity.CW90() && move != cr.Gravity.CCW90() {
			return false
		}
		if !stonePushPossible(cr, e) {
			return false
		}
		destX, destY := x, y
		dx, dy := move.Delta()
		destX += dx
		destY += dy
		if !cr.Map.IsSpace(destX, destY) {
			return false
		}
		prob := cr.Stored.Policy.PushingStoneProb
		if cr.SweetEaten {
			prob = cr.Stored.Policy.PushingStoneProbSweet
		}
		if !cr.Rng.OneIn1M(prob) {
			return false
		}
		cr.Map.Move(x, y, move, e)
		cr.Map.Store(x, y, Space, false)
		cr.PlaySound(SoundStoneMove, x, y)
		return true

	case IsBladder(e):
		if move == cr.Gravity.Opposite() {
			return false
		}
		dx, dy := move.Delta()
		destX, destY := x+dx, y+dy
		if !cr.Map.IsSpace(destX, destY) {
			return false
		}
		cr.Map.Move(x, y, move, e)
		cr.Map.Store(x, y, Space, false)
		cr.PlaySound(SoundBladder, x, y)
		return true

	case e == Box:
		if !fire || move.IsDiagonal() {
			return false
		}
		dx, dy := move.Delta()
		destX, destY := x+dx, y+dy
		if !cr.Map.IsSpace(destX, destY) {
			return false
		}
		cr.Map.Move(x, y, move, Box)
		cr.Map.Store(x, y, Space, false)
		return true
	}
	return false
}
