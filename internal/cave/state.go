package cave

// PlayerState is the player's lifecycle stage (spec.md §3).
type PlayerState int

const (
	NotYet PlayerState = iota
	Living
	Timeout
	Died
	Exited
)

// AmoebaState is shared by both amoeba slots (spec.md §3).
type AmoebaState int

const (
	Sleeping AmoebaState = iota
	Awake
	TooBig
	Enclosed
)

// MagicWallState tracks the one-way DORMANT->ACTIVE->EXPIRED lifecycle
// spec.md §8 invariant 5 requires.
type MagicWallState int

const (
	Dormant MagicWallState = iota
	Active
	Expired
)

const playerHistoryLen = 16

// SoundWithPos is one arbitrated sound request (spec.md §4.6).
type SoundWithPos struct {
	Kind SoundKind
	X, Y int
}

// ParticleSet is a short-lived particle descriptor batch (spec.md §4.7).
// Rendering is external; the engine only produces and advances these.
type ParticleSet struct {
	Count   int
	Size    float64
	Opacity float64
	X0, Y0  float64
	DX0, DY0 float64 // positional jitter radius
	VX0, VY0 float64 // base velocity
	DVX, DVY float64 // velocity jitter
	Color   RGB
	Life    float64 // ms, counts down from 1000
}

// RGB is a plain 8-bit-per-channel color, the same shape the teacher's
// palette.go uses for its RGB type.
type RGB struct{ R, G, B uint8 }

// CaveRendered is the live, mutable per-game cave (spec.md §3). It is
// created once by render() and mutated only by Iterate(); the caller
// discards it when starting another cave or restarting.
type CaveRendered struct {
	Stored *CaveStored
	Level  int
	Seed   int64

	Map    *CaveMap
	Rng    *Rand
	C64Rng *C64Rand

	Objects []CaveObject // arena backing Map.ObjectOrder indices

	PlayerX, PlayerY int
	playerHistory    [playerHistoryLen][2]int
	playerHistHead   int
	PlayerSeenAgo    int

	TimeMs          int
	MagicWallTime   int
	AmoebaTime      int
	Amoeba2Time     int

	HatchingDelayTime  int
	HatchingDelayFrame int

	GravityWillChange            int
	CreaturesDirectionWillChange int
	PneumaticHammerActiveDelay   int
	BitersWaitFrame              int
	ReplicatorsWaitFrame         int
	GateOpenFlash                int

	DiamondsCollected   int
	SkeletonsCollected  int
	Score               int
	Key1, Key2, Key3    int

	Hatched                       bool
	GateOpen                      bool
	SweetEaten                    bool
	DiamondKeyCollected           bool
	GotPneumaticHammer            bool
	GravityDisabled               bool
	InboxFlashToggle              bool
	KillPlayer                    bool
	VoodooTouched                 bool
	CreaturesBackwards            bool
	ExpandingWallChanged          bool
	ReplicatorsActive             bool
	ConveyorBeltsActive           bool
	ConveyorBeltsDirectionChanged bool

	PlayerStateV  PlayerState
	AmoebaStateV  AmoebaState
	Amoeba2StateV AmoebaState
	MagicWallStateV MagicWallState

	Gravity                 Direction
	LastDirection           Direction
	LastHorizontalDirection Direction

	Sound1, Sound2, Sound3 SoundWithPos
	Particles              []ParticleSet

	Speed int // ms, computed each tick after the scan, before the timers subtract it

	// Per-tick scan accumulators, reset at the start of each Iterate.
	ckdelayCurrent int
	amoebaCount    int
	amoeba2Count   int
	foundEnclosed  bool
	foundEnclosed2 bool

	replicatorArmed bool
}

func (cr *CaveRendered) pushPlayerHistory(x, y int) {
	cr.playerHistHead = (cr.playerHistHead + 1) % playerHistoryLen
	cr.playerHistory[cr.playerHistHead] = [2]int{x, y}
}

// PlayerPositionAgo returns the player's position `ticks` ago (0 = now,
// up to 15), used by chasing stones (spec.md §4.5 "Chasing stones").
func (cr *CaveRendered) PlayerPositionAgo(ticks int) (int, int) {
	if ticks < 0 {
		ticks = 0
	}
	if ticks >= playerHistoryLen {
		ticks = playerHistoryLen - 1
	}
	idx := (cr.playerHistHead - ticks + playerHistoryLen) % playerHistoryLen
	p := cr.playerHistory[idx]
	return p[0], p[1]
}
