package fx

type ParticleKind uint8

const (
	ParticleCursor ParticleKind = iota
	ParticleRing
	ParticlePraise
	ParticleEncourage
)

// Sprite shapes understood by the renderer.
const (
	ShapeDisc   = 0
	ShapeSquare = 1
	ShapeRing   = 2
)

// Bubbles further than this outside the view band are dead.
const bubbleMargin = 50.0

// RingStroke is the selection ring line width in pixels.
const RingStroke = 4.0

type Particle struct {
	X, Y   float64
	VX, VY float64

	Alpha   float64 // 0..255, fades each tick
	Size    float64 // diameter
	Radius  float64 // ring radius
	Gravity float64 // added to VY each tick

	Col  RGB
	Kind ParticleKind
}

// Dead reports whether p should be pruned. viewH is the surface height.
func (p *Particle) Dead(viewH float64) bool {
	if p.Alpha < 0 {
		return true
	}
	if p.Kind == ParticleEncourage {
		return p.Y > viewH+bubbleMargin || p.Y < -bubbleMargin
	}
	return false
}

// renderSprite converts p to [x, y, size, r, g, b, a, shape].
func (p *Particle) renderSprite(buf []float32) []float32 {
	a := p.Alpha / 255.0
	if a <= 0 {
		return buf
	}
	if a > 1 {
		a = 1
	}
	r, g, b := p.Col.Float()
	size := p.Size
	shape := float32(ShapeDisc)
	switch p.Kind {
	case ParticleRing:
		size = p.Radius*2 + RingStroke
		shape = ShapeRing
	case ParticlePraise:
		shape = ShapeSquare
	}
	return append(buf, float32(p.X), float32(p.Y), float32(size), r, g, b, float32(a), shape)
}
