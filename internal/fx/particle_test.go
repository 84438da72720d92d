package fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizfx/internal/rng"
)

const viewW, viewH = 800.0, 600.0

func spawnAll(r *rng.Rand) []Particle {
	return []Particle{
		newCursorParticle(r, 100, 100),
		newRing(200, 200, true),
		newPraise(r, viewW/2, viewH/2),
		newEncourage(r, viewW, viewH),
	}
}

func TestParticlesFadeUntilDead(t *testing.T) {
	r := rng.New(5)
	for range 50 {
		for _, p := range spawnAll(r) {
			require.Positive(t, p.Alpha)
			require.False(t, p.Dead(viewH), "kind %d dead before first update", p.Kind)

			ticks := 0
			for !p.Dead(viewH) {
				prev := p.Alpha
				p.Update()
				ticks++
				require.Less(t, p.Alpha, prev, "kind %d alpha must strictly decrease", p.Kind)
				require.Less(t, ticks, 1000, "kind %d never died", p.Kind)
			}
		}
	}
}

func TestCursorLifetime(t *testing.T) {
	p := newCursorParticle(rng.New(1), 10, 10)
	ticks := 0
	for !p.Dead(viewH) {
		p.Update()
		ticks++
	}
	// 255 in steps of 5 reaches exactly 0 after 51 ticks, dead on the next.
	assert.Equal(t, 52, ticks)
}

func TestRingGrowsLinearly(t *testing.T) {
	p := newRing(50, 60, false)
	assert.Equal(t, Palette.RingWrong, p.Col)
	for i := 1; i <= 5; i++ {
		p.Update()
		assert.Equal(t, float64(i)*ringGrow, p.Radius)
		assert.Equal(t, 200-float64(i)*ringFade, p.Alpha)
	}
	assert.Equal(t, 50.0, p.X)
	assert.Equal(t, 60.0, p.Y)
}

func TestPraiseGravityAccumulates(t *testing.T) {
	p := newPraise(rng.New(3), 0, 0)
	vy := p.VY
	p.Update()
	assert.InDelta(t, vy+praiseGravity, p.VY, 1e-9)
	p.Update()
	assert.InDelta(t, vy+2*praiseGravity, p.VY, 1e-9)
	assert.Equal(t, 255-2*praiseFade, p.Alpha)
}

func TestPraiseSpeedRange(t *testing.T) {
	r := rng.New(8)
	for range 200 {
		p := newPraise(r, 0, 0)
		spd := p.VX*p.VX + p.VY*p.VY
		assert.GreaterOrEqual(t, spd, 4.0-1e-9)
		assert.Less(t, spd, 64.0)
		assert.Contains(t, confettiColors[:], p.Col)
	}
}

func TestEncourageDiesOutsideBand(t *testing.T) {
	p := newEncourage(rng.New(4), viewW, viewH)
	assert.Equal(t, viewH+20, p.Y)
	assert.Less(t, p.VY, 0.0)

	p.Y = -bubbleMargin - 1
	assert.True(t, p.Dead(viewH))
	p.Y = viewH + bubbleMargin + 1
	assert.True(t, p.Dead(viewH))
	p.Y = viewH / 2
	assert.False(t, p.Dead(viewH))
}

func TestBubblesRise(t *testing.T) {
	p := newEncourage(rng.New(6), viewW, viewH)
	for !p.Dead(viewH) {
		y := p.Y
		p.Update()
		assert.Less(t, p.Y, y)
	}
}

func TestPraiseIgnoresViewBand(t *testing.T) {
	p := newPraise(rng.New(2), 0, 0)
	p.Y = viewH + 500
	assert.False(t, p.Dead(viewH))
}

func TestUpdateAllPrunes(t *testing.T) {
	ps := []Particle{
		{Kind: ParticleCursor, Alpha: 3},
		{Kind: ParticleCursor, Alpha: 255},
		{Kind: ParticleCursor, Alpha: 4},
	}
	ps = updateAll(ps, viewH)
	require.Len(t, ps, 1)
	assert.Equal(t, 250.0, ps[0].Alpha)
}

func TestRenderSpriteShapes(t *testing.T) {
	ring := newRing(1, 2, true)
	ring.Radius = 10
	buf := ring.renderSprite(nil)
	require.Len(t, buf, 8)
	assert.Equal(t, float32(20+RingStroke), buf[2])
	assert.Equal(t, float32(ShapeRing), buf[7])

	praise := newPraise(rng.New(1), 0, 0)
	buf = praise.renderSprite(nil)
	assert.Equal(t, float32(ShapeSquare), buf[7])

	faded := Particle{Alpha: -1}
	assert.Empty(t, faded.renderSprite(nil))
}
