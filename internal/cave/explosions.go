package cave

// explosionKind distinguishes the five blast shapes spec.md §4.5.3
// describes; each charges a documented ckdelay amount and emits its
// own sound.
type explosionKind int

const (
	explCreature explosionKind = iota
	explNitro
	explVoodoo
	explGhost
	explBomb
)

var explosionOffsets = map[explosionKind][][2]int{
	explCreature: square3x3(),
	explNitro:    square3x3(),
	explVoodoo:   square3x3(),
	explGhost:    {{0, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}},
	explBomb:     {{0, 0}, {0, -1}, {0, 1}, {-1, 0}, {1, 0}},
}

func square3x3() [][2]int {
	var offs [][2]int
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			offs = append(offs, [2]int{dx, dy})
		}
	}
	return offs
}

// explode dispatches the blast shape appropriate to the element at
// (x,y): a triggerable nitro pack gets the nitro shape, a voodoo doll
// the voodoo shape; anything else the generic creature shape. This is
// the `explode(x,y)` entry point spec.md §4.5 bullet lists call for
// bomb ticks, nitro packs hit by falling stones, and creatures caught
// by a blast.
func (cr *CaveRendered) explode(x, y int) {
	switch cr.Map.At(x, y).Unscanned() {
	case NitroPack, NitroPackF:
		cr.nitroExplode(x, y)
	case Voodoo:
		cr.voodooExplode(x, y)
	default:
		cr.creatureExplode(x, y)
	}
}

func (cr *CaveRendered) creatureExplode(x, y int) {
	p := &cr.Stored.Policy
	cr.ckdelayCurrent += 1200
	for _, off := range explosionOffsets[explCreature] {
		cx, cy := x+off[0], y+off[1]
		e := cr.Map.At(cx, cy).Unscanned()
		if e == Voodoo {
			if p.VoodooAnyHurtKillsPlayer {
				cr.VoodooTouched = true
			}
			if p.VoodooDisappear {
				cr.Map.Store(cx, cy, TimePenalty, false)
			}
			continue
		}
		if Props(e).Has(FlagNonExplodable) {
			continue
		}
		cr.Map.Store(cx, cy, p.ExplodeTo, false)
	}
	cr.emitExplosion(x, y, RGB{220, 80, 30})
	cr.PlaySound(SoundExplosion, x, y)
}

func (cr *CaveRendered) nitroExplode(x, y int) {
	p := &cr.Stored.Policy
	cr.ckdelayCurrent += 1200
	for _, off := range explosionOffsets[explNitro] {
		cx, cy := x+off[0], y+off[1]
		e := cr.Map.At(cx, cy).Unscanned()
		if e == Voodoo {
			if p.VoodooAnyHurtKillsPlayer {
				cr.VoodooTouched = true
			}
			continue
		}
		if Props(e).Has(FlagNonExplodable) && !(off[0] == 0 && off[1] == 0) {
			continue
		}
		cr.Map.Store(cx, cy, NitroExpl1, false)
	}
	cr.emitExplosion(x, y, RGB{255, 140, 0})
	cr.PlaySound(SoundNitroExplosion, x, y)
}

func (cr *CaveRendered) voodooExplode(x, y int) {
	cr.ckdelayCurrent += 1000
	for _, off := range explosionOffsets[explVoodoo] {
		cx, cy := x+off[0], y+off[1]
		if off[0] == 0 && off[1] == 0 {
			cr.Map.Store(cx, cy, TimePenalty, false)
			continue
		}
		e := cr.Map.At(cx, cy).Unscanned()
		if Props(e).Has(FlagNonExplodable) {
			continue
		}
		cr.Map.Store(cx, cy, PreSteel1, false)
	}
	cr.emitExplosion(x, y, RGB{140, 0, 160})
	cr.PlaySound(SoundVoodooExplosion, x, y)
}

func (cr *CaveRendered) ghostExplode(x, y int) {
	cr.ckdelayCurrent += 650
	for _, off := range explosionOffsets[explGhost] {
		cx, cy := x+off[0], y+off[1]
		e := cr.Map.At(cx, cy).Unscanned()
		if Props(e).Has(FlagNonExplodable) {
			continue
		}
		cr.Map.Store(cx, cy, GhostExpl1, false)
	}
	cr.emitExplosion(x, y, RGB{120, 220, 255})
	cr.PlaySound(SoundGhostExplosion, x, y)
}

func (cr *CaveRendered) bombExplode(x, y int) {
	cr.ckdelayCurrent += 650
	for _, off := range explosionOffsets[explBomb] {
		cx, cy := x+off[0], y+off[1]
		e := cr.Map.At(cx, cy).Unscanned()
		if Props(e).Has(FlagNonExplodable) {
			continue
		}
		cr.Map.Store(cx, cy, BombExpl1, false)
	}
	cr.emitExplosion(x, y, RGB{255, 60, 60})
	cr.PlaySound(SoundBombExplosion, x, y)
}

// ghostExplFinalPick resolves GHOST_EXPL_4's terminal transform: a
// random pick from the cave's configured effect list (spec.md §4.5
// "Timed sequences").
func (cr *CaveRendered) ghostExplFinalPick() Element {
	list := cr.Stored.Policy.GhostExplEffects
	if len(list) == 0 {
		return Space
	}
	return list[cr.Rng.Intn(len(list))]
}
