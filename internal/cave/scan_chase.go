package cave

// scanWaitingStone implements the dormant half of spec.md §4.5's
// "Chasing stones": a waiting stone falls like any other solid when
// the cell below opens up, and converts to a chasing stone once the
// player has eaten the sweet — the activation spec.md §4.5.1 implies
// by distinguishing "WAITING_STONE is always pushable" from
// "CHASING_STONE only with sweet".
func (cr *CaveRendered) scanWaitingStone(x, y int, e Element) {
	gdx, gdy := cr.Gravity.Delta()
	bx, by := x+gdx, y+gdy
	if cr.Map.IsSpace(bx, by) {
		cr.Map.Move(x, y, cr.Gravity, WaitingStone)
		cr.Map.Store(x, y, Space, false)
		return
	}
	if cr.SweetEaten {
		cr.Map.Store(x, y, ChasingStone, false)
	}
}

// scanChasingStone implements the active chase: fall first if there's
// room, otherwise pick a horizontal/vertical preference at random and
// try to close the gap on the player's position from 16 ticks ago,
// falling back to perpendicular motion when the preferred axis is
// blocked (spec.md §4.5 "Chasing stones").
func (cr *CaveRendered) scanChasingStone(x, y int, e Element) {
	gdx, gdy := cr.Gravity.Delta()
	bx, by := x+gdx, y+gdy
	if cr.Map.IsSpace(bx, by) {
		cr.Map.Move(x, y, cr.Gravity, ChasingStone)
		cr.Map.Store(x, y, Space, false)
		return
	}

	px, py := cr.PlayerPositionAgo(15)
	horizFirst := cr.Rng.Intn(2) == 0

	tryAxis := func(horizontal bool) bool {
		var d Direction
		if horizontal {
			if px == x {
				return false
			}
			if px < x {
				d = Left
			} else {
				d = Right
			}
		} else {
			if py == y {
				return false
			}
			if py < y {
				d = Up
			} else {
				d = Down
			}
		}
		ddx, ddy := d.Delta()
		nx, ny := x+ddx, y+ddy
		if !cr.Map.IsSpace(nx, ny) {
			return false
		}
		cr.Map.Move(x, y, d, ChasingStone)
		cr.Map.Store(x, y, Space, false)
		return true
	}

	if tryAxis(horizFirst) || tryAxis(!horizFirst) {
		return
	}

	// Both chase axes are blocked: wander perpendicular to gravity.
	for _, d := range []Direction{cr.Gravity.CW90(), cr.Gravity.CCW90()} {
		ddx, ddy := d.Delta()
		nx, ny := x+ddx, y+ddy
		if cr.Map.IsSpace(nx, ny) {
			cr.Map.Move(x, y, d, ChasingStone)
			cr.Map.Store(x, y, Space, false)
			return
		}
	}
}

// scanBiter implements spec.md §4.5's biter rule: try to eat DIRT,
// then the cave's configured biter_eat element, then plain SPACE,
// then STONE (which gets thrown back one further cell), trying the
// facing direction then +-90° for each candidate, committing on the
// first successful move. Biters only act once every
// biters_wait_frame ticks.
func (cr *CaveRendered) scanBiter(x, y int, e Element) {
	if cr.BitersWaitFrame > 0 {
		return
	}

	facing := CreatureFacing(e, Biter1)
	dirs := [3]Direction{facing, facing.CW90(), facing.CCW90()}
	candidates := [4]Element{Dirt, cr.Stored.Policy.BiterEats, Space, Stone}

	for _, want := range candidates {
		for _, d := range dirs {
			ddx, ddy := d.Delta()
			nx, ny := x+ddx, y+ddy
			cur := cr.Map.At(nx, ny).Unscanned()
			if cur != want {
				continue
			}
			if want == Stone {
				fdx, fdy := d.Delta()
				farX, farY := nx+fdx, ny+fdy
				if !cr.Map.IsSpace(farX, farY) {
					continue
				}
				cr.Map.Store(farX, farY, Stone, false)
			} else if want != Space {
				cr.PlaySound(SoundBiterEat, nx, ny)
			}
			cr.Map.Move(x, y, d, WithFacing(Biter1, d))
			cr.Map.Store(x, y, Space, false)
			return
		}
	}
}
