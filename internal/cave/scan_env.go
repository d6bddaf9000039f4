package cave

// scanMagicWall handles the magic wall cell itself: per spec.md §4.5
// "the cell itself does nothing per-tick except emit sound if
// active" — the actual conversion is driven by falling elements
// (scan_falling.go's fallIntoMagicWall).
func (cr *CaveRendered) scanMagicWall(x, y int) {
	if cr.MagicWallStateV == Active {
		cr.PlaySound(SoundMagicWall, x, y)
	}
}

// scanSlime implements spec.md §4.5's slime rule: on a probability
// roll (predictable via the C64 RNG or unpredictable via the 64-bit
// RNG, per policy), space below lets an eligible element above pass
// down through the slime; space above lets a rising element below
// pass up through it.
func (cr *CaveRendered) scanSlime(x, y int) {
	p := &cr.Stored.Policy
	var fire bool
	if p.SlimePredictable {
		fire = cr.C64Rng.Below(p.SlimePermeabilityC64)
	} else {
		fire = cr.Rng.OneIn1M(p.SlimePermeability)
	}
	if !fire {
		return
	}

	gdx, gdy := cr.Gravity.Delta()
	bx, by := x+gdx, y+gdy
	ax, ay := x-gdx, y-gdy

	if cr.Map.IsSpace(bx, by) {
		above := cr.Map.At(ax, ay).Unscanned()
		eats := p.SlimeEats
		if above == eats[0] || above == eats[1] || above == eats[2] ||
			above == WaitingStone || above == ChasingStone {
			cr.Map.Store(bx, by, above, false)
			cr.Map.Store(ax, ay, Space, false)
			cr.PlaySound(SoundSlime, x, y)
		}
		return
	}

	if cr.Map.IsSpace(ax, ay) {
		below := cr.Map.At(bx, by).Unscanned()
		if IsBladder(below) || below == FlyingStone || below == FlyingDiamond {
			cr.Map.Store(ax, ay, below, false)
			cr.Map.Store(bx, by, Space, false)
			cr.PlaySound(SoundSlime, x, y)
		}
	}
}

// scanAcid implements spec.md §4.5's acid rule: with probability
// acid_spread_ratio, every cardinal neighbor matching acid_eats_this
// becomes acid and the center becomes acid_turns_to.
func (cr *CaveRendered) scanAcid(x, y int) {
	p := &cr.Stored.Policy
	if !cr.Rng.OneIn1M(p.AcidSpreadRatio) {
		return
	}
	for _, d := range cardinal4 {
		ddx, ddy := d.Delta()
		nx, ny := x+ddx, y+ddy
		if cr.Map.At(nx, ny).Unscanned() == p.AcidEatsThis {
			cr.Map.Store(nx, ny, Acid, false)
		}
	}
	cr.Map.Store(x, y, p.AcidTurnsTo, false)
	cr.PlaySound(SoundAcid, x, y)
}

var expandingWallDirs = map[Element][]Direction{
	ExpandingWallH:         {Left, Right},
	ExpandingWallV:         {Up, Down},
	ExpandingWallFour:      {Left, Right, Up, Down},
	ExpandingSteelWallH:    {Left, Right},
	ExpandingSteelWallV:    {Up, Down},
	ExpandingSteelWallFour: {Left, Right, Up, Down},
}

// scanExpandingWall implements spec.md §4.5's expanding-wall rule: the
// cell copies itself into any free neighbor among its allowed
// directions; expanding_wall_changed reverses which side is tried
// first when both are blocked in the same tick (only matters when a
// later rule makes ordering observable, but it's preserved as the
// spec names it).
func (cr *CaveRendered) scanExpandingWall(x, y int, e Element) {
	dirs := expandingWallDirs[e.Unscanned()]
	if len(dirs) == 0 {
		return
	}
	if cr.ExpandingWallChanged {
		reversed := make([]Direction, len(dirs))
		for i, d := range dirs {
			reversed[len(dirs)-1-i] = d
		}
		dirs = reversed
	}
	for _, d := range dirs {
		ddx, ddy := d.Delta()
		nx, ny := x+ddx, y+ddy
		if cr.Map.IsSpace(nx, ny) {
			cr.Map.Store(nx, ny, e.Unscanned(), false)
		}
	}
}

// scanConveyor implements spec.md §4.5's conveyor-belt rule: while
// active and gravity is vertical, shove the cell on the belt's working
// side (above a top belt, below a bottom belt) one step left or right.
func (cr *CaveRendered) scanConveyor(x, y int, e Element) {
	if !cr.ConveyorBeltsActive {
		return
	}
	if cr.Gravity != Down && cr.Gravity != Up {
		return
	}

	top := e.Unscanned() == ConveyorTop
	cellY := y - 1
	if !top {
		cellY = y + 1
	}
	carried := cr.Map.At(x, cellY).Unscanned()
	flag := FlagMovedByConveyorTop
	if !top {
		flag = FlagMovedByConveyorBottom
	}
	if !Props(carried).Has(flag) {
		return
	}

	dir := Right
	if cr.ConveyorBeltsDirectionChanged {
		dir = Left
	}
	ddx, _ := dir.Delta()
	destX, destY := x+ddx, cellY
	if !cr.Map.IsSpace(destX, destY) {
		return
	}
	cr.Map.Store(destX, destY, carried, false)
	cr.Map.Store(x, cellY, Space, false)
	cr.PlaySound(SoundConveyor, x, cellY)
}

// scanReplicator duplicates the element above it into the free cell
// below it, once every replicator_delay ticks, while replicators are
// switched on. spec.md §3 names the REPLICATOR element and its active/
// delay cave parameters without spelling out the per-tick rule; this
// is the direct classic-BD reading of them.
func (cr *CaveRendered) scanReplicator(x, y int) {
	if !cr.ReplicatorsActive || cr.ReplicatorsWaitFrame > 0 {
		return
	}
	above := cr.Map.At(x, y-1).Unscanned()
	if above == Space || !cr.Map.IsSpace(x, y+1) {
		return
	}
	cr.Map.Store(x, y+1, above, false)
	cr.PlaySound(SoundReplicator, x, y)
}
