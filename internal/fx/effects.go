package fx

import "quizfx/internal/rng"

const (
	DefaultMaxCursor     = 2000
	DefaultResultCount   = 100
	DefaultCursorCadence = 5
)

// Pointer is the input state sampled once per tick.
type Pointer struct {
	X, Y  float64
	Moved bool
	Down  bool
}

// Effects owns the three particle collections drawn over the quiz screens.
type Effects struct {
	Cursor  []Particle
	Ring    *Particle
	Results []Particle

	maxCursor   int
	ovrIdx      int // circular overwrite index when the cursor trail is full
	cadence     int
	resultCount int
	frame       uint64
	viewW       float64
	viewH       float64
	r           *rng.Rand
}

type Option func(*Effects)

func WithResultCount(n int) Option {
	return func(e *Effects) {
		if n > 0 {
			e.resultCount = n
		}
	}
}

func WithCursorCadence(n int) Option {
	return func(e *Effects) {
		if n > 0 {
			e.cadence = n
		}
	}
}

func WithMaxCursor(n int) Option {
	return func(e *Effects) {
		if n > 0 {
			e.maxCursor = n
		}
	}
}

func NewEffects(viewW, viewH float64, seed uint64, opts ...Option) *Effects {
	e := &Effects{
		maxCursor:   DefaultMaxCursor,
		cadence:     DefaultCursorCadence,
		resultCount: DefaultResultCount,
		viewW:       viewW,
		viewH:       viewH,
		r:           rng.New(seed),
	}
	for _, o := range opts {
		o(e)
	}
	e.Cursor = make([]Particle, 0, e.maxCursor)
	return e
}

// Resize updates the surface bounds used for spawning and culling.
func (e *Effects) Resize(viewW, viewH float64) {
	e.viewW = viewW
	e.viewH = viewH
}

func (e *Effects) inside(x, y float64) bool {
	return x > 0 && x < e.viewW && y > 0 && y < e.viewH
}

func (e *Effects) addCursor(p Particle) {
	if len(e.Cursor) < e.maxCursor {
		e.Cursor = append(e.Cursor, p)
		return
	}
	if e.ovrIdx >= e.maxCursor {
		e.ovrIdx = 0
	}
	e.Cursor[e.ovrIdx] = p
	e.ovrIdx++
}

// SpawnCursor drops one trail particle at (x, y) if it lies on the surface.
func (e *Effects) SpawnCursor(x, y float64) {
	if !e.inside(x, y) {
		return
	}
	e.addCursor(newCursorParticle(e.r, x, y))
}

// SpawnRing replaces any selection ring with a new one at (x, y).
func (e *Effects) SpawnRing(x, y float64, correct bool) {
	ring := newRing(x, y, correct)
	e.Ring = &ring
}

func (e *Effects) ClearRing() {
	e.Ring = nil
}

// SpawnResults emits the results batch: confetti from the centre when
// celebrate is set, rising bubbles otherwise.
func (e *Effects) SpawnResults(celebrate bool) {
	for range e.resultCount {
		if celebrate {
			e.Results = append(e.Results, newPraise(e.r, e.viewW/2, e.viewH/2))
		} else {
			e.Results = append(e.Results, newEncourage(e.r, e.viewW, e.viewH))
		}
	}
}

func (e *Effects) ClearResults() {
	e.Results = e.Results[:0]
}

// Tick runs one simulation step: trail spawning, then physics and pruning
// for every collection.
func (e *Effects) Tick(ptr Pointer) {
	e.frame++
	if ptr.Moved {
		e.SpawnCursor(ptr.X, ptr.Y)
	}
	if ptr.Down || e.frame%uint64(e.cadence) == 0 {
		e.SpawnCursor(ptr.X, ptr.Y)
	}

	n := len(e.Cursor)
	e.Cursor = updateAll(e.Cursor, e.viewH)
	if len(e.Cursor) != n {
		e.ovrIdx = 0
	}
	if e.Ring != nil {
		e.Ring.Update()
		if e.Ring.Dead(e.viewH) {
			e.Ring = nil
		}
	}
	e.Results = updateAll(e.Results, e.viewH)
}

// TrailRenderData packs the cursor trail and selection ring, drawn above
// every screen. Format: [x, y, size, r, g, b, a, shape] * N.
func (e *Effects) TrailRenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range e.Cursor {
		buf = e.Cursor[i].renderSprite(buf)
	}
	if e.Ring != nil {
		buf = e.Ring.renderSprite(buf)
	}
	return buf
}

// ResultRenderData packs the results batch, drawn behind the results text.
func (e *Effects) ResultRenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range e.Results {
		buf = e.Results[i].renderSprite(buf)
	}
	return buf
}
