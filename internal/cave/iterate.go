package cave

// Iterate advances the cave by exactly one tick (spec.md §4.5's
// iterate()): pre-scan housekeeping (phase A), the single row-major
// pass over every cell that applies each element's rule exactly once
// (phase B), then post-scan bookkeeping and scheduling (phase C). move
// is the player's requested direction for this tick (Still for none),
// fire is whether the fire button is held, suicide forces the player's
// death regardless of anything else touching it.
func (cr *CaveRendered) Iterate(move Direction, fire, suicide bool) error {
	p := &cr.Stored.Policy

	cr.clearSounds()
	cr.ckdelayCurrent = 0
	cr.amoebaCount, cr.amoeba2Count = 0, 0
	cr.foundEnclosed, cr.foundEnclosed2 = true, true
	cr.PlayerSeenAgo++

	move = cr.phaseA(move, suicide, p)
	if err := cr.phaseB(move, fire, suicide, p); err != nil {
		return err
	}
	cr.phaseC(p)
	return nil
}

// phaseA runs the pre-scan housekeeping steps (spec.md §4.5 phase A):
// rectify the requested move, tick every standalone countdown that
// doesn't depend on visiting a cell, and let hammered walls reappear.
// It returns the rectified move, which the scan then applies.
func (cr *CaveRendered) phaseA(move Direction, suicide bool, p *Policy) Direction {
	// A.1 diagonal-movement rectification.
	if !p.DiagonalMovements && move.IsDiagonal() {
		move = move.HorizontalComponent()
	}
	if move == Left || move == Right {
		cr.LastHorizontalDirection = move
	}
	if move != Still {
		cr.LastDirection = move
	}

	// A.2 pending death.
	if suicide {
		cr.KillPlayer = true
	}

	// A.3 hatching delay.
	if cr.HatchingDelayFrame > 0 {
		cr.HatchingDelayFrame--
	}
	cr.InboxFlashToggle = !cr.InboxFlashToggle

	// A.4 pneumatic hammer strike countdown.
	if cr.PneumaticHammerActiveDelay > 0 {
		cr.PneumaticHammerActiveDelay--
	}

	// A.5 biters wait frame: rearm once it elapses.
	if cr.BitersWaitFrame > 0 {
		cr.BitersWaitFrame--
	} else {
		cr.BitersWaitFrame = p.BiterDelayFrames
	}

	// A.6 replicator wait frame: rearm once it elapses, while replicators
	// stay switched on.
	if cr.ReplicatorsWaitFrame > 0 {
		cr.ReplicatorsWaitFrame--
	} else if cr.ReplicatorsActive {
		cr.ReplicatorsWaitFrame = p.ReplicatorDelay
	}

	// A.7 delayed gravity / creature-direction flips and hammered-wall
	// reappearance.
	if cr.GravityWillChange > 0 {
		cr.GravityWillChange--
		if cr.GravityWillChange == 0 {
			cr.Gravity = cr.Gravity.Opposite()
		}
	}
	if cr.CreaturesDirectionWillChange > 0 {
		cr.CreaturesDirectionWillChange--
		if cr.CreaturesDirectionWillChange == 0 {
			cr.CreaturesBackwards = !cr.CreaturesBackwards
		}
	}
	if p.HammeredWallsReappear {
		cr.Map.TickHammered(func(x, y int) {
			cr.Map.Store(x, y, Brick, false)
			cr.PlaySound(SoundWallReappear, x, y)
		})
	}
	if cr.GateOpenFlash > 0 {
		cr.GateOpenFlash--
	}
	return move
}

// phaseB runs the single row-major scan pass (spec.md §4.5 phase B,
// §5): every cell that doesn't already carry the scanned-twin marker
// (meaning an earlier cell already moved something into it this tick)
// is dispatched exactly once, charging its ckdelay cost.
func (cr *CaveRendered) phaseB(move Direction, fire, suicide bool, p *Policy) error {
	var firstErr error
	cr.Map.Each(p.BorderScanFirstAndLast, func(x, y int) {
		if firstErr != nil {
			return
		}
		e := cr.Map.At(x, y)
		if e.IsScanned() {
			return
		}
		if err := cr.dispatchCell(x, y, e, move, fire, suicide); err != nil {
			firstErr = err
			return
		}
		cr.ckdelayCurrent += Props(e).Ckdelay
	})
	return firstErr
}

// dispatchCell routes one cell's element to its rule. Order matters:
// more specific cases (a particular element, or a family with its own
// dedicated scan) are checked before the broader classification
// predicates they would otherwise also match — NITRO_PACK_F is both a
// falling solid and a special-cased nitro faller, so it must be
// intercepted before the generic IsFallingSolid branch.
func (cr *CaveRendered) dispatchCell(x, y int, e Element, move Direction, fire, suicide bool) error {
	u := e.Unscanned()
	if u < 0 || int(u) >= int(elementCount) {
		return &EngineError{X: x, Y: y, Element: e, Msg: "unreachable element in scan switch"}
	}

	switch {
	case e == Space:
		return nil

	case IsPlayer(e):
		cr.scanPlayerCell(x, y, e, move, fire, suicide)

	case e == PneumaticActiveLeft, e == PneumaticActiveRight:
		cr.scanPneumaticActive(x, y, e)

	case e == NitroPackF:
		cr.scanNitroFalling(x, y, e)

	case e == WaitingStone:
		cr.scanWaitingStone(x, y, e)

	case e == ChasingStone:
		cr.scanChasingStone(x, y, e)

	case e == MagicWall:
		cr.scanMagicWall(x, y)

	case e == Amoeba:
		cr.scanAmoeba(x, y, e, 1)
	case e == Amoeba2:
		cr.scanAmoeba(x, y, e, 2)

	case e == Slime:
		cr.scanSlime(x, y)

	case e == Acid:
		cr.scanAcid(x, y)

	case e >= ExpandingWallH && e <= ExpandingWallFour,
		e >= ExpandingSteelWallH && e <= ExpandingSteelWallFour:
		cr.scanExpandingWall(x, y, e)

	case e == ConveyorTop, e == ConveyorBottom:
		cr.scanConveyor(x, y, e)

	case e == Replicator:
		cr.scanReplicator(x, y)

	case e == TrappedDiamond:
		cr.scanTrappedDiamond(x, y)

	case e == Inbox:
		cr.scanInbox(x, y)

	case e == PreOutbox, e == PreInvisOutbox:
		cr.scanPreOutbox(x, y, e)

	case IsBladder(e):
		cr.scanBladder(x, y, e)

	case IsBiter(e):
		cr.scanBiter(x, y, e)

	case IsCowEnclosed(e):
		cr.scanCowEnclosed(x, y, e)

	case IsCow(e):
		cr.scanCreatureTurn(x, y, e, Cow1)

	default:
		if familyFirst, ok := IsRotatingCreature(e); ok {
			cr.scanCreatureTurn(x, y, e, familyFirst)
			return nil
		}
		if IsStandingSolid(e) {
			cr.scanStandingSolid(x, y, e)
			return nil
		}
		if IsFallingSolid(e) {
			cr.scanFallingSolid(x, y, e)
			return nil
		}
		cr.scanTimedOrStatic(x, y, e)
	}
	return nil
}

// phaseC runs the post-scan bookkeeping (spec.md §4.5 phase C): clear
// the scanned-twin marker everywhere (invariant 3 must hold before the
// next tick starts), resolve amoeba/voodoo state transitions, compute
// how long this tick lasts (Speed: the caller's wait before the next
// Iterate, and the amount the timers and clock below subtract), run
// those timers, and record the player's new position for the chase
// history.
func (cr *CaveRendered) phaseC(p *Policy) {
	// C.1 unscan everything, regardless of the main scan's border
	// policy, so invariant 3 holds unconditionally.
	cr.Map.Each(true, func(x, y int) {
		cr.Map.Unscan(x, y)
	})

	// C.2 amoeba state machine.
	prevState, prevState2 := cr.AmoebaStateV, cr.Amoeba2StateV
	cr.updateAmoebaState()
	if p.ConvertAmoebaThisFrame {
		if prevState == Awake && cr.AmoebaStateV == TooBig {
			cr.convertAmoebaNow(1, p.AmoebaTooBigEffect)
		} else if prevState == Awake && cr.AmoebaStateV == Enclosed {
			cr.convertAmoebaNow(1, p.AmoebaEnclosedEffect)
		}
		if prevState2 == Awake && cr.Amoeba2StateV == TooBig {
			cr.convertAmoebaNow(2, p.AmoebaTooBigEffect)
		} else if prevState2 == Awake && cr.Amoeba2StateV == Enclosed {
			cr.convertAmoebaNow(2, p.AmoebaEnclosedEffect)
		}
	}

	// C.3 voodoo consequence.
	if cr.VoodooTouched {
		if p.VoodooAnyHurtKillsPlayer {
			cr.KillPlayer = true
		}
		cr.VoodooTouched = false
	}

	// Scheduling: this tick's duration, which every timer below subtracts.
	cr.Speed = cr.computeSpeed()

	// C.4 magic wall lifetime.
	if cr.MagicWallStateV == Active {
		cr.MagicWallTime -= cr.Speed
		if cr.MagicWallTime <= 0 {
			cr.MagicWallTime = 0
			cr.MagicWallStateV = Expired
		}
	}

	// C.5 amoeba growth-speed timers.
	if cr.AmoebaTime > 0 {
		cr.AmoebaTime -= cr.Speed
		if cr.AmoebaTime < 0 {
			cr.AmoebaTime = 0
		}
	}
	if cr.Amoeba2Time > 0 {
		cr.Amoeba2Time -= cr.Speed
		if cr.Amoeba2Time < 0 {
			cr.Amoeba2Time = 0
		}
	}

	// C.6 countdown clock. Reaching zero while LIVING is a distinct
	// transition from being killed (spec.md invariant 4: "time reaching
	// 0 while player_state = LIVING transitions to TIMEOUT", phase C.12),
	// so it is tracked separately from KillPlayer rather than folded
	// into the same death path.
	timedOut := false
	if cr.PlayerStateV == Living {
		prevSec := (cr.TimeMs + 999) / 1000
		cr.TimeMs -= cr.Speed
		if cr.TimeMs <= 0 {
			cr.TimeMs = 0
			timedOut = true
		}
		if newSec := (cr.TimeMs + 999) / 1000; newSec < prevSec && newSec > 0 {
			cr.PlaySound(SoundTimeoutTick, cr.PlayerX, cr.PlayerY)
		}
	}

	// C.7 resolve death/timeout/exit into the player lifecycle state.
	if timedOut && cr.PlayerStateV == Living {
		cr.clearSounds()
		cr.PlayerStateV = Timeout
		cr.PlaySound(SoundTimeout, cr.PlayerX, cr.PlayerY)
	} else if cr.KillPlayer && cr.PlayerStateV == Living {
		cr.PlayerStateV = Died
		cr.PlaySound(SoundPlayerDie, cr.PlayerX, cr.PlayerY)
	}
	cr.KillPlayer = false

	// C.8 player position history, used by chasing stones.
	cr.pushPlayerHistory(cr.PlayerX, cr.PlayerY)
}

// convertAmoebaNow overwrites every live cell of the given amoeba slot
// with effect immediately, rather than waiting for each cell's own
// next scan to notice the TOO_BIG/ENCLOSED state — the BD1
// ConvertAmoebaThisFrame quirk spec.md §9's "Open questions" flags.
func (cr *CaveRendered) convertAmoebaNow(slot int, effect Element) {
	target := Amoeba
	if slot == 2 {
		target = Amoeba2
	}
	cr.Map.Each(true, func(x, y int) {
		if cr.Map.At(x, y).Unscanned() == target {
			cr.Map.Store(x, y, effect, true)
		}
	})
}
