package game

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"quizfx/internal/fx"
)

// optionKeys select display slots 0..3.
var optionKeys = [...]glfw.Key{glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4}

type Input struct {
	prevMouse   map[glfw.MouseButton]bool
	prevKeys    map[glfw.Key]bool
	prevCursorX float64
	prevCursorY float64
	moved       bool // sticky until the next simulation step consumes it
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// OptionKey returns the slot of a just-pressed 1..4 key, or -1.
func (in *Input) OptionKey(window *glfw.Window) int {
	slot := -1
	for i, k := range optionKeys {
		if in.JustPressed(window, k) && slot < 0 {
			slot = i
		}
	}
	return slot
}

// PollCursor samples the cursor in logical window coordinates and latches
// movement until TakePointer is called.
func (in *Input) PollCursor(window *glfw.Window) (float64, float64) {
	cx, cy := window.GetCursorPos()
	if math.Hypot(cx-in.prevCursorX, cy-in.prevCursorY) > 0.5 {
		in.moved = true
	}
	in.prevCursorX, in.prevCursorY = cx, cy
	return cx, cy
}

// TakePointer returns the pointer state for one simulation step and clears
// the latched movement flag.
func (in *Input) TakePointer(window *glfw.Window) fx.Pointer {
	p := fx.Pointer{
		X:     in.prevCursorX,
		Y:     in.prevCursorY,
		Moved: in.moved,
		Down:  window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
	}
	in.moved = false
	return p
}
