package cave

// This file groups the ~190 element tags into the behavioral families
// the scan dispatches on (spec.md §4.5's bullet list). Keeping the
// classification here, rather than spreading switch-on-every-constant
// logic across the scan files, is the "tagged variant + companion
// properties/classification" shape spec.md §9's DESIGN NOTES asks for.

// fallPair maps a standing solid to its falling twin and back.
var fallToStanding = map[Element]Element{}
var standingToFall = map[Element]Element{
	Stone:        StoneF,
	MegaStone:    MegaStoneF,
	Diamond:      DiamondF,
	Nut:          NutF,
	DirtBall:     DirtBallF,
	DirtLoose:    DirtLooseF,
	FlyingStone:  FlyingStoneF,
	FlyingDiamond: FlyingDiamondF,
	NitroPack:    NitroPackF,
}

func init() {
	for standing, falling := range standingToFall {
		fallToStanding[falling] = standing
	}
}

// IsStandingSolid reports whether e is a stationary stone/diamond-like
// element that starts falling once the cell below is space.
func IsStandingSolid(e Element) bool {
	_, ok := standingToFall[e.Unscanned()]
	return ok
}

// IsFallingSolid reports whether e is the falling twin of a standing solid.
func IsFallingSolid(e Element) bool {
	_, ok := fallToStanding[e.Unscanned()]
	return ok
}

// FallingTwin returns the falling form of a standing solid.
func FallingTwin(e Element) Element { return standingToFall[e.Unscanned()] }

// StandingTwin returns the resting form of a falling solid.
func StandingTwin(e Element) Element { return fallToStanding[e.Unscanned()] }

// IsPlayer reports whether e is any player-occupied cell variant.
func IsPlayer(e Element) bool { return Props(e).Has(FlagPlayer) }

var creatureFamilies = [][2]Element{
	{Firefly1, Firefly4},
	{Butterfly1, Butterfly4},
	{AltFirefly1, AltFirefly4},
	{AltButterfly1, AltButterfly4},
	{Stonefly1, Stonefly4},
	{Dragonfly1, Dragonfly4},
}

// IsRotatingCreature reports whether e is one of the four-facing
// firefly/butterfly/stonefly/dragonfly families that apply the
// fast-turn rule (spec.md §4.5 "Creatures").
func IsRotatingCreature(e Element) (familyFirst Element, ok bool) {
	u := e.Unscanned()
	for _, fam := range creatureFamilies {
		if u >= fam[0] && u <= fam[1] {
			return fam[0], true
		}
	}
	return 0, false
}

func IsCow(e Element) bool { u := e.Unscanned(); return u >= Cow1 && u <= Cow4 }

func IsCowEnclosed(e Element) bool {
	u := e.Unscanned()
	return u >= CowEnclosed1 && u <= CowEnclosed7
}

func IsBiter(e Element) bool { u := e.Unscanned(); return u >= Biter1 && u <= Biter4 }

func IsBladder(e Element) bool { u := e.Unscanned(); return u >= Bladder1 && u <= Bladder8 }

// timedSequence describes a family of N staged elements that each
// advance one step per tick, the last step transforming into a
// caller-supplied target (spec.md §4.5 "Timed sequences").
type timedSequence struct {
	first, last Element
}

var (
	seqExplode    = timedSequence{Explode1, Explode5}
	seqPreDia     = timedSequence{PreDia1, PreDia5}
	seqPreStone   = timedSequence{PreStone1, PreStone4}
	seqPreClock   = timedSequence{PreClock1, PreClock4}
	seqPreSteel   = timedSequence{PreSteel1, PreSteel4}
	seqBombTick   = timedSequence{BombTick1, BombTick7}
	seqBombExpl   = timedSequence{BombExpl1, BombExpl4}
	seqGhostExpl  = timedSequence{GhostExpl1, GhostExpl4}
	seqNitroExpl  = timedSequence{NitroExpl1, NitroExpl4}
	seqAmoeba2Exp = timedSequence{Amoeba2Expl1, Amoeba2Expl4}
	seqNutCrack   = timedSequence{NutCrack1, NutCrack4}
	seqWater      = timedSequence{Water1, Water16}
	seqPrePL      = timedSequence{PrePL1, PrePL3}
)

func (s timedSequence) contains(e Element) bool {
	u := e.Unscanned()
	return u >= s.first && u <= s.last
}

// next returns the next stage, or (0,true) when e was already the last
// stage (caller then applies the family's transform).
func (s timedSequence) next(e Element) (Element, bool) {
	u := e.Unscanned()
	if u == s.last {
		return 0, true
	}
	return u + 1, false
}
