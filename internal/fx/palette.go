package fx

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Float returns the colour as [0,1] components.
func (c RGB) Float() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Background  RGB
	CursorTrail RGB
	RingCorrect RGB
	RingWrong   RGB
	Gold        RGB
	Confetti    RGB
	White       RGB
	Bubble      RGB
}{
	Background:  RGB{R: 40, G: 40, B: 50},
	CursorTrail: RGB{R: 255, G: 230, B: 150},
	RingCorrect: RGB{R: 0, G: 255, B: 0},
	RingWrong:   RGB{R: 255, G: 0, B: 0},
	Gold:        RGB{R: 255, G: 215, B: 0},
	Confetti:    RGB{R: 0, G: 255, B: 100},
	White:       RGB{R: 255, G: 255, B: 255},
	Bubble:      RGB{R: 150, G: 200, B: 255},
}
