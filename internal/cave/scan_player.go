package cave

// scanPlayerCell dispatches every player-occupied cell variant (PLAYER,
// PLAYER_BOMB, PLAYER_GLUED, PLAYER_STIRRING, PLAYER_PNEUMATIC_{LEFT,
// RIGHT}) per spec.md §4.5's "Player" bullet.
func (cr *CaveRendered) scanPlayerCell(x, y int, e Element, move Direction, fire, suicide bool) {
	if cr.KillPlayer {
		cr.explode(x, y)
		return
	}

	cr.PlayerSeenAgo = 0
	if cr.PlayerStateV != Exited {
		cr.PlayerStateV = Living
	}

	switch e {
	case PlayerGlued, PlayerStirring:
		// Stuck in place: still alive and seen, but movement, pushing
		// and eating are all suppressed until whatever frees it does.
		return
	case PlayerPneumaticLeft, PlayerPneumaticRight:
		// The strike is already in progress; PneumaticActiveLeft/Right
		// owns the countdown and reverts this cell back to Player.
		return
	}

	if fire && cr.GotPneumaticHammer && cr.PneumaticHammerActiveDelay == 0 {
		if cr.tryStartHammer(x, y, move) {
			return
		}
	}

	if move == Still {
		return
	}

	dx, dy := move.Delta()
	tx, ty := x+dx, y+dy
	target := cr.Map.At(tx, ty).Unscanned()

	if target == Teleporter {
		if nx, ny, ok := cr.findTeleportDestination(move); ok {
			cr.Map.Store(x, y, Space, false)
			cr.Map.Store(nx, ny, Player, false)
			cr.PlayerX, cr.PlayerY = nx, ny
			cr.PlaySound(SoundTeleporter, nx, ny)
		}
		return
	}

	if cr.doPush(tx, ty, target, move, fire) {
		cr.Map.Store(x, y, Space, false)
		cr.Map.Store(tx, ty, Player, false)
		cr.PlayerX, cr.PlayerY = tx, ty
		return
	}

	after, walkable := cr.playerEat(tx, ty)
	if !walkable {
		return
	}

	if fire {
		// Snap: fire held while moving consumes the target in place
		// without the player stepping into it.
		cr.Map.Store(tx, ty, after, false)
		return
	}

	cr.Map.Store(x, y, Space, false)
	if cr.PlayerStateV == Exited {
		cr.Map.Store(tx, ty, after, false)
		return
	}
	cr.Map.Store(tx, ty, Player, false)
	cr.PlayerX, cr.PlayerY = tx, ty
}

// tryStartHammer begins a pneumatic-hammer strike to the player's
// left or right (spec.md §4.5 "If fire+pneumatic-hammer+space
// beside+ground below, begin hammering"). The strike direction comes
// from the current horizontal move, falling back to the last
// horizontal direction the player faced so firing in place still
// strikes the side the player is facing.
func (cr *CaveRendered) tryStartHammer(x, y int, move Direction) bool {
	dir := move
	if dir != Left && dir != Right {
		dir = cr.LastHorizontalDirection
	}
	if dir != Left && dir != Right {
		return false
	}

	sdx, sdy := dir.Delta()
	sx, sy := x+sdx, y+sdy
	gdx, gdy := cr.Gravity.Delta()
	bx, by := x+gdx, y+gdy
	if !cr.Map.IsSpace(sx, sy) || cr.Map.IsSpace(bx, by) {
		return false
	}

	activeElem := PneumaticActiveLeft
	playerElem := PlayerPneumaticLeft
	if dir == Right {
		activeElem = PneumaticActiveRight
		playerElem = PlayerPneumaticRight
	}
	cr.Map.Store(sx, sy, activeElem, false)
	cr.Map.Store(x, y, playerElem, false)
	cr.PneumaticHammerActiveDelay = cr.Stored.Policy.PneumaticHammerDelay
	cr.PlaySound(SoundHammerStrike, x, y)
	return true
}

// scanPneumaticActive advances the hammer strike started above: once
// the shared countdown reaches zero, it breaks a hammerable wall one
// more cell beyond itself, then reverts the player back to its plain
// form.
func (cr *CaveRendered) scanPneumaticActive(x, y int, e Element) {
	if cr.PneumaticHammerActiveDelay > 0 {
		return
	}
	dir := Left
	if e == PneumaticActiveRight {
		dir = Right
	}
	wdx, wdy := dir.Delta()
	wx, wy := x+wdx, y+wdy
	if Props(cr.Map.At(wx, wy)).Has(FlagCanBeHammered) {
		cr.Map.SetHammered(wx, wy, int32(cr.Stored.Policy.HammerReappearDelay))
		cr.Map.Store(wx, wy, Space, false)
		cr.PlaySound(SoundHammerStrike, wx, wy)
	}
	cr.Map.Store(x, y, Space, false)
	if IsPlayer(cr.Map.At(cr.PlayerX, cr.PlayerY).Unscanned()) {
		cr.Map.Store(cr.PlayerX, cr.PlayerY, Player, false)
	}
}

// playerEat implements `player_eat_element` (spec.md §4.5 "Player"):
// consumes dirt, keys, doors, clocks, diamonds, skeletons, the cave's
// toggle switches, sweets, hammers, and outboxes. Returns the element
// that should remain in the eaten cell and whether the player may step
// into it; an unwalkable result (walkable=false) leaves the map
// unchanged — the caller makes no move.
func (cr *CaveRendered) playerEat(x, y int) (after Element, walkable bool) {
	p := &cr.Stored.Policy
	e := cr.Map.At(x, y).Unscanned()

	switch e {
	case Space:
		return Space, true

	case Dirt, Dirt2:
		cr.PlaySound(SoundDirtEat, x, y)
		cr.emitDirtPuff(x, y, RGB{150, 100, 60})
		return Space, true

	case Diamond:
		cr.DiamondsCollected++
		if cr.DiamondsCollected > cr.Stored.DiamondsNeeded {
			cr.Score += cr.Stored.ExtraDiamondValue
		} else {
			cr.Score += cr.Stored.DiamondValue
		}
		if cr.DiamondsCollected >= cr.Stored.DiamondsNeeded && !cr.GateOpen {
			cr.GateOpen = true
			cr.GateOpenFlash = 16
		}
		cr.PlaySound(SoundDiamondRandom, x, y)
		cr.emitDiamondCollect(x, y)
		return Space, true

	case Key1:
		cr.Key1++
		cr.DiamondKeyCollected = true
		cr.PlaySound(SoundKeyCollect, x, y)
		return Space, true
	case Key2:
		cr.Key2++
		cr.PlaySound(SoundKeyCollect, x, y)
		return Space, true
	case Key3:
		cr.Key3++
		cr.PlaySound(SoundKeyCollect, x, y)
		return Space, true

	case Door1:
		if cr.Key1 <= 0 {
			return 0, false
		}
		cr.Key1--
		cr.PlaySound(SoundDoorOpen, x, y)
		return Space, true
	case Door2:
		if cr.Key2 <= 0 {
			return 0, false
		}
		cr.Key2--
		cr.PlaySound(SoundDoorOpen, x, y)
		return Space, true
	case Door3:
		if cr.Key3 <= 0 {
			return 0, false
		}
		cr.Key3--
		cr.PlaySound(SoundDoorOpen, x, y)
		return Space, true

	case Clock:
		cr.TimeMs += p.TimePenaltySeconds * 1000
		cr.PlaySound(SoundClockCollect, x, y)
		return Space, true

	case Sweet:
		cr.SweetEaten = true
		cr.PlaySound(SoundSweet, x, y)
		return Space, true

	case Hammer:
		cr.GotPneumaticHammer = true
		cr.PlaySound(SoundHammerCollect, x, y)
		return Space, true

	case Skeleton:
		cr.SkeletonsCollected++
		return Space, true

	case SwitchGravity:
		if !cr.GravityDisabled {
			cr.Gravity = cr.Gravity.Opposite()
		}
		return Space, true
	case SwitchCreatureDir:
		cr.CreaturesBackwards = !cr.CreaturesBackwards
		return Space, true
	case SwitchExpandingDir:
		cr.ExpandingWallChanged = !cr.ExpandingWallChanged
		return Space, true
	case SwitchBiterDelay:
		cr.BitersWaitFrame = p.BiterDelayFrames
		return Space, true
	case SwitchReplicatorToggle:
		cr.ReplicatorsActive = !cr.ReplicatorsActive
		return Space, true
	case SwitchConveyor:
		cr.ConveyorBeltsActive = !cr.ConveyorBeltsActive
		return Space, true
	case SwitchConveyorDir:
		cr.ConveyorBeltsDirectionChanged = !cr.ConveyorBeltsDirectionChanged
		return Space, true

	case Outbox, InvisOutbox:
		if !cr.GateOpen {
			return 0, false
		}
		cr.PlayerStateV = Exited
		cr.PlaySound(SoundPlayerExit, x, y)
		return Space, true

	default:
		return 0, false
	}
}
