package cave

// Scheduling selects which of the six original frame-time derivations
// (spec.md §4.5 phase C.4) a cave uses to turn work-done into the
// wall-clock delay the caller should sleep before the next tick.
type Scheduling int

const (
	SchedMilliseconds Scheduling = iota
	SchedBD1
	SchedBD1Atari
	SchedBD2
	SchedPLCK
	SchedBD2PLCKAtari
	SchedCrDr
)

// EngineTag names one of the BDCFF engine families a Policy preset
// reproduces (spec.md §6).
type EngineTag string

const (
	EngineBD1  EngineTag = "BD1"
	EngineBD2  EngineTag = "BD2"
	EnginePLCK EngineTag = "PLCK"
	Engine1stB EngineTag = "1stB"
	EngineCrDr EngineTag = "CrDr"
	EngineCrLi EngineTag = "CrLi"
)

// Policy bundles every engine-distinguishing switch, scheduling choice,
// and effect mapping spec.md §3 lists under "Cave parameters" — the
// "small Policy struct passed immutably to the rule functions" spec.md
// §9's DESIGN NOTES calls for.
type Policy struct {
	Scheduling Scheduling

	DiagonalMovements      bool
	LineShift              bool
	BorderScanFirstAndLast bool

	VoodooDiesByStone        bool
	VoodooDisappear          bool
	VoodooAnyHurtKillsPlayer bool

	MagicWallStopsAmoeba        bool
	MegaStonesPushableWithSweet bool
	HammeredWallsReappear       bool
	ShortExplosions             bool
	ActiveIsFirstFound          bool
	GdClassicSound              bool

	// ConvertAmoebaThisFrame preserves a documented BD1 quirk (spec.md
	// §9 "Open questions"): amoeba-to-stone/diamond conversion on
	// TooBig/Enclosed is applied to every cell of that amoeba in the same
	// tick's post-scan phase rather than deferred to the next tick's scan
	// when true.
	ConvertAmoebaThisFrame bool

	PushingStoneProb      int // 1,000,000-scale
	PushingStoneProbSweet int

	AmoebaGrowthProbSlow int
	AmoebaGrowthProbFast int
	AmoebaThreshold      int
	Amoeba2Threshold     int

	SlimePredictable     bool
	SlimePermeability    int  // 1,000,000-scale, unpredictable mode
	SlimePermeabilityC64 uint8 // bitmask, predictable mode
	SlimeEats            [3]Element

	AcidSpreadRatio int // 1,000,000-scale
	AcidEatsThis    Element
	AcidTurnsTo     Element

	MagicStoneTo   Element
	MagicDiamondTo Element
	MagicNutTo     Element

	AmoebaTooBigEffect  Element
	AmoebaEnclosedEffect Element

	ExplodeTo         Element
	ExplosionEffect   Element
	DiamondBirthEffect Element
	GhostExplEffects  []Element
	BladderConvertsBy Element

	TimePenaltySeconds int
	BiterDelayFrames   int
	ReplicatorDelay    int
	BiterEats          Element

	// PneumaticHammerDelay is how many ticks a pneumatic-hammer strike
	// takes to break the wall beyond it; HammerReappearDelay is how many
	// ticks a hammered brick stays gone before reappearing (spec.md §4.5
	// phase A.7, HammeredWallsReappear).
	PneumaticHammerDelay int
	HammerReappearDelay  int

	CkdelayExtraForAnimation int
}

// DefaultPolicy returns the baseline preset for the named engine family.
// These are reasonable, internally-consistent defaults: exact per-game
// constants belong to the CaveStored a level author supplies, not to
// this library (the legacy binary/BDCFF importers that would carry the
// authored originals are out of scope, spec.md §1/§6).
func DefaultPolicy(tag EngineTag) Policy {
	p := Policy{
		Scheduling:                  SchedMilliseconds,
		DiagonalMovements:           true,
		BorderScanFirstAndLast:      true,
		VoodooDisappear:             true,
		MegaStonesPushableWithSweet: true,
		ActiveIsFirstFound:          true,
		PushingStoneProb:            250_000,
		PushingStoneProbSweet:       1_000_000,
		AmoebaGrowthProbSlow:        20_000,
		AmoebaGrowthProbFast:        200_000,
		AmoebaThreshold:             200,
		Amoeba2Threshold:            200,
		SlimePermeability:           500_000,
		SlimePermeabilityC64:        0x07,
		SlimeEats:                   [3]Element{WaitingStone, ChasingStone, Diamond},
		AcidSpreadRatio:             50_000,
		AcidEatsThis:                Dirt,
		AcidTurnsTo:                 Explode1,
		MagicStoneTo:                Diamond,
		MagicDiamondTo:              Stone,
		MagicNutTo:                  Nut,
		AmoebaTooBigEffect:          Stone,
		AmoebaEnclosedEffect:        Diamond,
		ExplodeTo:                   Explode1,
		ExplosionEffect:             Space,
		DiamondBirthEffect:          Diamond,
		GhostExplEffects:            []Element{Space, Diamond, Stone},
		BladderConvertsBy:           Diamond,
		TimePenaltySeconds:          30,
		BiterDelayFrames:            0,
		ReplicatorDelay:             0,
		PneumaticHammerDelay:        3,
		HammerReappearDelay:         8,
		CkdelayExtraForAnimation:    0,
	}

	switch tag {
	case EngineBD1:
		p.Scheduling = SchedBD1
		p.DiagonalMovements = false
		p.VoodooDiesByStone = true
		p.ShortExplosions = true
		p.ConvertAmoebaThisFrame = true
		p.MegaStonesPushableWithSweet = false
	case Engine1stB:
		p.Scheduling = SchedBD1Atari
		p.DiagonalMovements = false
		p.VoodooDiesByStone = true
		p.ShortExplosions = true
	case EngineBD2:
		p.Scheduling = SchedBD2
		p.DiagonalMovements = false
		p.MagicWallStopsAmoeba = true
	case EnginePLCK:
		p.Scheduling = SchedPLCK
		p.DiagonalMovements = false
		p.BorderScanFirstAndLast = false
		p.MagicWallStopsAmoeba = true
	case EngineCrDr:
		p.Scheduling = SchedCrDr
		p.HammeredWallsReappear = true
	case EngineCrLi:
		p.Scheduling = SchedMilliseconds
		p.GdClassicSound = false
	}
	return p
}
