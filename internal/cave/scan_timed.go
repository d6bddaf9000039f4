package cave

// timedFinal names what a sequence becomes once it runs out of
// stages, since most of the per-tick work is identical (advance or
// finish) and only this final value differs per family.
type timedFinal struct {
	seq   timedSequence
	final Element
}

// timedFinals lists every generic timed sequence (spec.md §4.5
// "Timed sequences") together with its terminal element, including the
// decay stages an explosion leaves behind once explode()/bombExplode()/
// etc. (explosions.go) have already written the first stage.
var timedFinals = []timedFinal{
	{seqPreDia, Diamond},
	{seqPreStone, Stone},
	{seqPreClock, Clock},
	{seqPreSteel, Steel},
	{seqNutCrack, Space},
	{seqPrePL, Player},
	{seqBombExpl, Space},
	{seqNitroExpl, Space},
}

// scanTimedOrStatic is the fallback dispatcher for every element that
// isn't handled by a more specific scan_*.go rule: it advances a
// matching timed sequence one stage, or does nothing for a genuinely
// static element (wall, steel wall, dirt, dormant decorations...).
func (cr *CaveRendered) scanTimedOrStatic(x, y int, e Element) {
	for _, tf := range timedFinals {
		if !tf.seq.contains(e) {
			continue
		}
		next, done := tf.seq.next(e)
		if done {
			cr.Map.Store(x, y, tf.final, false)
		} else {
			cr.Map.Store(x, y, next, false)
		}
		return
	}
	if seqExplode.contains(e) {
		next, done := seqExplode.next(e)
		if done {
			cr.Map.Store(x, y, cr.Stored.Policy.ExplosionEffect, false)
		} else {
			cr.Map.Store(x, y, next, false)
		}
		return
	}
	if seqGhostExpl.contains(e) {
		next, done := seqGhostExpl.next(e)
		if done {
			cr.Map.Store(x, y, cr.ghostExplFinalPick(), false)
		} else {
			cr.Map.Store(x, y, next, false)
		}
		return
	}
	if seqAmoeba2Exp.contains(e) {
		next, done := seqAmoeba2Exp.next(e)
		if done {
			cr.Map.Store(x, y, cr.Stored.Policy.DiamondBirthEffect, false)
		} else {
			cr.Map.Store(x, y, next, false)
		}
		return
	}
	if seqWater.contains(e) {
		cr.scanWater(x, y, e)
		return
	}
	if seqBombTick.contains(e) {
		cr.scanBombTick(x, y, e)
		return
	}
	// Anything else (WALL, STEEL_WALL, DIRT, decorations, ...) is inert.
}

// scanWater advances the flooding-water animation; spec.md §3 names
// WATER as purely decorative once fully flooded, so the sequence just
// cycles rather than terminating into anything else.
func (cr *CaveRendered) scanWater(x, y int, e Element) {
	next, done := seqWater.next(e)
	if done {
		cr.Map.Store(x, y, Water1, false)
		return
	}
	cr.Map.Store(x, y, next, false)
}

// scanBombTick advances a live bomb's fuse; reaching the final tick
// detonates it via the shared explosion path rather than a plain
// element swap (spec.md §4.5 "Explosions").
func (cr *CaveRendered) scanBombTick(x, y int, e Element) {
	next, done := seqBombTick.next(e)
	if done {
		cr.bombExplode(x, y)
		return
	}
	cr.Map.Store(x, y, next, false)
}

// scanInbox handles the player-hatching inbox: once
// hatching_delay_frame reaches zero the inbox opens into its PRE_PL
// hatching animation, which scanTimedOrStatic then carries through to
// a live player (spec.md §4.5 "Player spawn / inbox").
func (cr *CaveRendered) scanInbox(x, y int) {
	if cr.HatchingDelayFrame > 0 {
		return
	}
	cr.Map.Store(x, y, PrePL1, false)
	cr.Hatched = true
}

// scanPreOutbox advances the closing-time flash into an open exit once
// every visible diamond required has been collected (spec.md §4.5
// "Outbox").
func (cr *CaveRendered) scanPreOutbox(x, y int, e Element) {
	if !cr.AllDiamondsCollected() {
		return
	}
	if e.Unscanned() == PreOutbox {
		cr.Map.Store(x, y, Outbox, false)
	} else {
		cr.Map.Store(x, y, InvisOutbox, false)
	}
}

// scanTrappedDiamond releases the diamond it holds once the diamond
// key has been collected, per spec.md §4.5's "Trapped diamonds" bullet.
func (cr *CaveRendered) scanTrappedDiamond(x, y int) {
	if cr.DiamondKeyCollected {
		cr.Map.Store(x, y, Diamond, false)
	}
}

// AllDiamondsCollected reports whether the cave has reached its
// diamond quota, unlocking the outbox (spec.md §4.5 "Outbox").
func (cr *CaveRendered) AllDiamondsCollected() bool {
	return cr.DiamondsCollected >= cr.Stored.DiamondsNeeded
}
