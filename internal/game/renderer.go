package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"quizfx/internal/fx"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

const (
	spriteFloats = 8  // x, y, size, r, g, b, a, shape
	rectFloats   = 15 // pos(2) local(2) half(2) fill(4) border(4) radius(1)
	textFloats   = 8  // pos(2) uv(2) color(4)
)

// RectStyle describes a filled rounded rectangle with a border.
type RectStyle struct {
	Fill        fx.RGB
	Alpha       float32
	Border      fx.RGB
	BorderWidth float32
	Radius      float32
}

type Renderer struct {
	// Particle/sprite program.
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUResolution int32
	spUPixelScale int32
	spURingStroke int32

	// Rounded-rect program for buttons.
	rectProg uint32
	rectVAO  uint32
	rectVBO  uint32

	rectUResolution int32
	rectBuf         []float32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	// Logical surface size; all draw calls are in these units.
	viewW, viewH float32
	pixelScale   float32
}

func NewRenderer() (*Renderer, error) {
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	rectProg, err := linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("rect program: %w", err)
	}

	r := &Renderer{
		spriteProg: spriteProg,
		rectProg:   rectProg,
		pixelScale: 1,
	}

	// Sprite VAO/VBO: streaming buffer for point sprites.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(spriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aSize
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3) // aShape
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))
	r.spUPixelScale = gl.GetUniformLocation(spriteProg, gl.Str("uPixelScale\x00"))
	r.spURingStroke = gl.GetUniformLocation(spriteProg, gl.Str("uRingStroke\x00"))
	gl.Uniform1f(r.spURingStroke, fx.RingStroke)

	// Rect VAO/VBO: six vertices per rectangle.
	var rVAO, rVBO uint32
	gl.GenVertexArrays(1, &rVAO)
	gl.GenBuffers(1, &rVBO)
	gl.BindVertexArray(rVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, rVBO)

	stride = int32(rectFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxRectRender*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aLocal
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aHalf
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, glOffset(4*4))
	gl.EnableVertexAttribArray(3) // aFill
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, glOffset(6*4))
	gl.EnableVertexAttribArray(4) // aBorder
	gl.VertexAttribPointer(4, 4, gl.FLOAT, false, stride, glOffset(10*4))
	gl.EnableVertexAttribArray(5) // aRadius
	gl.VertexAttribPointer(5, 1, gl.FLOAT, false, stride, glOffset(14*4))
	r.rectVAO = rVAO
	r.rectVBO = rVBO

	gl.UseProgram(rectProg)
	r.rectUResolution = gl.GetUniformLocation(rectProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.spriteVBO, r.rectVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteVAO, r.rectVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteProg, r.rectProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears the framebuffer. Drawing happens in logical window
// units (winW x winH); the viewport covers the whole framebuffer.
func (r *Renderer) BeginFrame(fbW, fbH, winW, winH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bg := fx.Palette.Background
	cr, cg, cb := bg.Float()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.viewW, r.viewH = float32(winW), float32(winH)
	r.pixelScale = 1
	if winW > 0 {
		r.pixelScale = float32(fbW) / float32(winW)
	}
}

// DrawSprites draws packed [x, y, size, r, g, b, a, shape] sprites.
func (r *Renderer) DrawSprites(buf []float32) {
	count := len(buf) / spriteFloats
	if count == 0 {
		return
	}
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.spUResolution, r.viewW, r.viewH)
	gl.Uniform1f(r.spUPixelScale, r.pixelScale)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, count*spriteFloats*4, gl.Ptr(buf))
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}

// DrawRect queues a rounded rectangle centred at (cx, cy).
func (r *Renderer) DrawRect(cx, cy, w, h float32, st RectStyle) {
	hw, hh := w/2, h/2
	fr, fg, fb := st.Fill.Float()
	br, bg, bb := st.Border.Float()
	a := st.Alpha
	if a == 0 {
		a = 1
	}
	vert := func(lx, ly float32) {
		r.rectBuf = append(r.rectBuf,
			cx+lx, cy+ly, lx, ly, hw, hh,
			fr, fg, fb, a,
			br, bg, bb, st.BorderWidth,
			st.Radius,
		)
	}
	// Two triangles: TL, TR, BL then TR, BR, BL.
	vert(-hw, -hh)
	vert(hw, -hh)
	vert(-hw, hh)
	vert(hw, -hh)
	vert(hw, hh)
	vert(-hw, hh)
}

// FlushRects draws all queued rectangles and clears the queue.
func (r *Renderer) FlushRects() {
	if len(r.rectBuf) == 0 {
		return
	}
	gl.UseProgram(r.rectProg)
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)
	gl.Uniform2f(r.rectUResolution, r.viewW, r.viewH)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.rectBuf) / rectFloats
	gl.BufferData(gl.ARRAY_BUFFER, len(r.rectBuf)*4, gl.Ptr(r.rectBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	r.rectBuf = r.rectBuf[:0]
}
