package cave

// Particle Emitter (spec.md §4.7): short-lived kinematic descriptors
// the engine queues when something visually dramatic happens. Nothing
// here renders; a batch is just a recipe a caller's particle system
// can expand into actual sprites, the same split the teacher's own
// particle.go keeps between "emit a burst" and "draw it".

const particleLifeMs = 1000

func (cr *CaveRendered) emit(p ParticleSet) {
	p.Life = particleLifeMs
	cr.Particles = append(cr.Particles, p)
}

// emitExplosion queues the particle burst for a creature/nitro/bomb/
// ghost/voodoo explosion centered on a cell (spec.md §4.7 "explosion").
func (cr *CaveRendered) emitExplosion(x, y int, color RGB) {
	cr.emit(ParticleSet{
		Count: 24, Size: 3, Opacity: 1,
		X0: float64(x) + 0.5, Y0: float64(y) + 0.5,
		DX0: 0.1, DY0: 0.1,
		VX0: 0, VY0: 0,
		DVX: 2.5, DVY: 2.5,
		Color: color,
	})
}

// emitDiamondCollect queues the short upward sparkle a collected
// diamond leaves behind.
func (cr *CaveRendered) emitDiamondCollect(x, y int) {
	cr.emit(ParticleSet{
		Count: 6, Size: 1.5, Opacity: 0.8,
		X0: float64(x) + 0.5, Y0: float64(y) + 0.5,
		DX0: 0.2, DY0: 0.05,
		VX0: 0, VY0: -1.2,
		DVX: 0.4, DVY: 0.3,
		Color: RGB{255, 255, 120},
	})
}

// emitDirtPuff queues the small debris puff an eaten dirt cell leaves.
func (cr *CaveRendered) emitDirtPuff(x, y int, color RGB) {
	cr.emit(ParticleSet{
		Count: 4, Size: 1, Opacity: 0.6,
		X0: float64(x) + 0.5, Y0: float64(y) + 0.5,
		DX0: 0.3, DY0: 0.3,
		VX0: 0, VY0: 0.2,
		DVX: 0.5, DVY: 0.5,
		Color: color,
	})
}

// AdvanceParticles ages every queued particle batch by dtMs and drops
// the ones that have fully expired; callers run this once per tick
// alongside Iterate.
func (cr *CaveRendered) AdvanceParticles(dtMs float64) {
	kept := cr.Particles[:0]
	for _, p := range cr.Particles {
		p.Life -= dtMs
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	cr.Particles = kept
}
