package fx

import (
	"math"

	"quizfx/internal/rng"
)

func newCursorParticle(r *rng.Rand, x, y float64) Particle {
	return Particle{
		X: x + r.RangeF(-5, 5), Y: y + r.RangeF(-5, 5),
		VX: r.RangeF(-1, 1), VY: r.RangeF(-1, 1),
		Alpha: 255, Size: r.RangeF(3, 8),
		Col: Palette.CursorTrail, Kind: ParticleCursor,
	}
}

func newRing(x, y float64, correct bool) Particle {
	col := Palette.RingWrong
	if correct {
		col = Palette.RingCorrect
	}
	return Particle{
		X: x, Y: y,
		Alpha: 200,
		Col:   col, Kind: ParticleRing,
	}
}

var confettiColors = [...]RGB{Palette.Gold, Palette.Confetti, Palette.White}

// newPraise is a confetti square bursting from (x, y) in a random direction.
func newPraise(r *rng.Rand, x, y float64) Particle {
	ang := r.RangeF(0, math.Pi*2)
	spd := r.RangeF(2, 8)
	return Particle{
		X: x, Y: y,
		VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
		Alpha: 255, Size: r.RangeF(3, 6), Gravity: praiseGravity,
		Col: confettiColors[r.Intn(len(confettiColors))], Kind: ParticlePraise,
	}
}

// newEncourage is a bubble rising from just below the bottom edge.
func newEncourage(r *rng.Rand, viewW, viewH float64) Particle {
	return Particle{
		X: r.RangeF(0, viewW), Y: viewH + 20,
		VX: r.RangeF(-0.5, 0.5), VY: r.RangeF(-3, -1),
		Alpha: 255, Size: r.RangeF(10, 30),
		Col: Palette.Bubble, Kind: ParticleEncourage,
	}
}
