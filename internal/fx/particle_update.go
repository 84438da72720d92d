package fx

// Per-tick constants.
const (
	cursorFade    = 5.0
	ringGrow      = 4.0
	ringFade      = 10.0
	praiseFade    = 3.0
	encourageFade = 1.5
	praiseGravity = 0.2
)

// Update advances p by one simulation tick.
func (p *Particle) Update() {
	switch p.Kind {
	case ParticleCursor:
		p.X += p.VX
		p.Y += p.VY
		p.Alpha -= cursorFade
	case ParticleRing:
		p.Radius += ringGrow
		p.Alpha -= ringFade
	case ParticlePraise:
		p.VY += p.Gravity
		p.X += p.VX
		p.Y += p.VY
		p.Alpha -= praiseFade
	case ParticleEncourage:
		p.X += p.VX
		p.Y += p.VY
		p.Alpha -= encourageFade
	}
}

// updateAll ticks every particle in ps and swap-removes the dead ones.
func updateAll(ps []Particle, viewH float64) []Particle {
	for i := 0; i < len(ps); {
		p := &ps[i]
		p.Update()
		if p.Dead(viewH) {
			ps[i] = ps[len(ps)-1]
			ps = ps[:len(ps)-1]
			continue
		}
		i++
	}
	return ps
}
