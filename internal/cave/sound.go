package cave

// SoundKind identifies a sound request the engine can emit. The core
// never plays audio (spec.md §1, §9): it only ever selects at most one
// SoundKind per channel per tick and leaves it for the caller's mixer
// to actually play — the same "enum + small owning system" shape the
// teacher's audio.go uses for its own SoundKind, minus any PCM
// synthesis or playback.
type SoundKind int

const (
	SoundNone SoundKind = iota
	SoundDiamond1
	SoundDiamond2
	SoundDiamond3
	SoundDiamond4
	SoundDiamond5
	SoundDiamond6
	SoundDiamond7
	SoundDiamond8
	SoundDiamondRandom
	SoundStoneMove
	SoundDirtEat
	SoundLava
	SoundBox
	SoundKeyCollect
	SoundDoorOpen
	SoundSweet
	SoundHammerCollect
	SoundHammerStrike
	SoundAmoeba
	SoundMagicWall
	SoundAmoebaMagic
	SoundAcid
	SoundSlime
	SoundBladder
	SoundBiterEat
	SoundReplicator
	SoundConveyor
	SoundWallReappear
	SoundCrack
	SoundTimeoutTick
	SoundTimeout
	SoundExplosion
	SoundNitroExplosion
	SoundVoodooExplosion
	SoundGhostExplosion
	SoundBombExplosion
	SoundTeleporter
	SoundPlayerDie
	SoundPlayerExit
	SoundNutCrack
	SoundClockCollect
)

type soundMeta struct {
	precedence int
	channel    int // 1..4; logical channel 4 shares physical slot 3
	looped     bool
	forceRestart bool
	classic    SoundKind // 0 (SoundNone) = no classic equivalent / already classic
}

var soundTable = map[SoundKind]soundMeta{
	SoundDiamond1:        {precedence: 10, channel: 2},
	SoundDiamond2:        {precedence: 10, channel: 2},
	SoundDiamond3:        {precedence: 10, channel: 2},
	SoundDiamond4:        {precedence: 10, channel: 2},
	SoundDiamond5:        {precedence: 10, channel: 2},
	SoundDiamond6:        {precedence: 10, channel: 2},
	SoundDiamond7:        {precedence: 10, channel: 2},
	SoundDiamond8:        {precedence: 10, channel: 2},
	SoundStoneMove:       {precedence: 5, channel: 2, classic: SoundDiamond1},
	SoundDirtEat:         {precedence: 8, channel: 2},
	SoundLava:            {precedence: 8, channel: 2},
	SoundBox:             {precedence: 8, channel: 2},
	SoundKeyCollect:      {precedence: 15, channel: 2},
	SoundDoorOpen:        {precedence: 12, channel: 2},
	SoundSweet:           {precedence: 15, channel: 2},
	SoundHammerCollect:   {precedence: 15, channel: 2},
	SoundHammerStrike:    {precedence: 12, channel: 2},
	SoundAmoeba:          {precedence: 3, channel: 1, looped: true},
	SoundMagicWall:       {precedence: 4, channel: 1, looped: true},
	SoundAmoebaMagic:     {precedence: 4, channel: 1, looped: true},
	SoundAcid:            {precedence: 9, channel: 2},
	SoundSlime:           {precedence: 2, channel: 1, looped: true},
	SoundBladder:         {precedence: 6, channel: 2},
	SoundBiterEat:        {precedence: 9, channel: 2},
	SoundReplicator:      {precedence: 7, channel: 2},
	SoundConveyor:        {precedence: 1, channel: 1, looped: true},
	SoundWallReappear:    {precedence: 11, channel: 2},
	SoundCrack:           {precedence: 20, channel: 3, forceRestart: true},
	SoundTimeoutTick:      {precedence: 5, channel: 3},
	SoundTimeout:          {precedence: 25, channel: 3, forceRestart: true},
	SoundExplosion:        {precedence: 30, channel: 2, forceRestart: true},
	SoundNitroExplosion:   {precedence: 30, channel: 2, forceRestart: true, classic: SoundExplosion},
	SoundVoodooExplosion:  {precedence: 32, channel: 2, forceRestart: true, classic: SoundExplosion},
	SoundGhostExplosion:   {precedence: 28, channel: 2, forceRestart: true, classic: SoundExplosion},
	SoundBombExplosion:    {precedence: 30, channel: 2, forceRestart: true, classic: SoundExplosion},
	SoundTeleporter:       {precedence: 14, channel: 2},
	SoundPlayerDie:        {precedence: 40, channel: 3, forceRestart: true},
	SoundPlayerExit:       {precedence: 40, channel: 3, forceRestart: true},
	SoundNutCrack:         {precedence: 13, channel: 2},
	SoundClockCollect:     {precedence: 15, channel: 2},
}

var diamondSounds = [8]SoundKind{
	SoundDiamond1, SoundDiamond2, SoundDiamond3, SoundDiamond4,
	SoundDiamond5, SoundDiamond6, SoundDiamond7, SoundDiamond8,
}

// PlaySound runs one sound request through the arbiter (spec.md §4.6).
// x,y is the position of the event, used for the distance-to-player
// tie-break.
func (cr *CaveRendered) PlaySound(s SoundKind, x, y int) {
	if s == SoundNone {
		return
	}
	if s == SoundDiamondRandom {
		s = diamondSounds[cr.Rng.Intn(len(diamondSounds))]
	}
	meta, ok := soundTable[s]
	if !ok {
		return
	}
	if cr.Stored.Policy.GdClassicSound && meta.classic != SoundNone {
		s = meta.classic
		meta = soundTable[s]
	}

	slot := cr.soundSlot(meta.channel)
	cur := *slot
	curMeta, curOK := soundTable[cur.Kind]

	replace := !curOK || cur.Kind == SoundNone
	if !replace {
		if meta.precedence > curMeta.precedence {
			replace = true
		} else if meta.precedence == curMeta.precedence {
			dNew := distSq(x, y, cr.PlayerX, cr.PlayerY)
			dCur := distSq(cur.X, cur.Y, cr.PlayerX, cr.PlayerY)
			replace = dNew < dCur
		}
	}

	// Amoeba/magic-wall mixing (spec.md §4.6 step 4).
	if (cur.Kind == SoundAmoeba && s == SoundMagicWall) ||
		(cur.Kind == SoundMagicWall && s == SoundAmoeba) ||
		cur.Kind == SoundAmoebaMagic {
		s = SoundAmoebaMagic
		replace = true
	}

	if replace {
		*slot = SoundWithPos{Kind: s, X: x, Y: y}
	}
}

func (cr *CaveRendered) soundSlot(channel int) *SoundWithPos {
	switch channel {
	case 1:
		return &cr.Sound1
	case 3, 4:
		return &cr.Sound3
	default:
		return &cr.Sound2
	}
}

func (cr *CaveRendered) clearSounds() {
	cr.Sound1 = SoundWithPos{}
	cr.Sound2 = SoundWithPos{}
	cr.Sound3 = SoundWithPos{}
}

func distSq(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}
