package cave

// scanBladder implements the 8-stage float/convert rule of spec.md
// §4.5: a bladder converts to PRE_CLOCK_1 if touched on three sides
// (against-gravity and the two gravity-perpendicular neighbors) by
// the cave's bladder_converts_by element; otherwise it floats upward
// against gravity one stage per tick, moving up once stage 8 is
// reached, or tries the sloped rolls used by standing solids when
// blocked.
func (cr *CaveRendered) scanBladder(x, y int, e Element) {
	p := &cr.Stored.Policy
	upDir := cr.Gravity.Opposite()

	for _, d := range [3]Direction{upDir, cr.Gravity.CW90(), cr.Gravity.CCW90()} {
		ddx, ddy := d.Delta()
		if cr.Map.At(x+ddx, y+ddy).Unscanned() == p.BladderConvertsBy {
			cr.Map.Store(x, y, PreClock1, false)
			cr.PlaySound(SoundBladder, x, y)
			return
		}
	}

	udx, udy := upDir.Delta()
	ux, uy := x+udx, y+udy
	stage := int(e.Unscanned() - Bladder1) // 0-based, 0..7
	if cr.Map.IsSpace(ux, uy) {
		if stage == 7 {
			cr.Map.Move(x, y, upDir, Bladder1)
			cr.Map.Store(x, y, Space, false)
		} else {
			cr.Map.Store(x, y, Bladder1+Element(stage+1), false)
		}
		return
	}

	if cr.tryRoll(x, y, upDir, cr.Gravity.CW90(), e.Unscanned()) {
		return
	}
	cr.tryRoll(x, y, upDir, cr.Gravity.CCW90(), e.Unscanned())
}
