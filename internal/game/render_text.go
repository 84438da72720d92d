package game

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"quizfx/internal/fx"
)

// buildFontAtlas rasterises printable ASCII from basicfont into a
// FontCols x FontRows grid of FontCellW x FontCellH cells.
func buildFontAtlas() *image.RGBA {
	face := basicfont.Face7x13
	img := image.NewRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for c := FontFirst; c <= FontLast; c++ {
		i := c - FontFirst
		col, row := i%FontCols, i/FontCols
		d.Dot = fixed.P(col*FontCellW, row*FontCellH+face.Ascent)
		d.DrawString(string(rune(c)))
	}
	return img
}

// InitFont uploads the font atlas and sets up the text rendering pipeline.
func (r *Renderer) InitFont() error {
	atlas := buildFontAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(FontAtlasW), int32(FontAtlasH), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(textFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxTextQuads*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// DrawChar queues a single character as a textured quad at (sx, sy), top-left.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col fx.RGB) {
	if ch < FontFirst || ch > FontLast {
		ch = '?'
	}
	i := int(ch) - FontFirst
	column := i % FontCols
	row := i / FontCols

	u0 := float32(column*FontCellW) / float32(FontAtlasW)
	v0 := float32(row*FontCellH) / float32(FontAtlasH)
	u1 := float32((column+1)*FontCellW) / float32(FontAtlasW)
	v1 := float32((row+1)*FontCellH) / float32(FontAtlasH)

	w := float32(FontCellW) * scale
	h := float32(FontCellH) * scale
	cr, cg, cb := col.Float()

	r.textBuf = append(r.textBuf,
		sx, sy, u0, v0, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx+w, sy+h, u1, v1, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
	)
}

// DrawString queues a single line with its top-left corner at (sx, sy).
func (r *Renderer) DrawString(text string, sx, sy, scale float32, col fx.RGB) {
	advance := float32(FontCellW) * scale
	x := sx
	for _, ch := range text {
		if ch == ' ' {
			x += advance
			continue
		}
		r.DrawChar(ch, x, sy, scale, col)
		x += advance
	}
}

// DrawCentered queues a line centred on (cx, cy).
func (r *Renderer) DrawCentered(text string, cx, cy, scale float32, col fx.RGB) {
	w := TextWidth(text, scale)
	h := float32(FontCellH) * scale
	r.DrawString(text, cx-w/2, cy-h/2, scale, col)
}

// TextWidth returns the width of a single line in logical pixels.
func TextWidth(text string, scale float32) float32 {
	n := 0
	for range text {
		n++
	}
	return float32(n*FontCellW) * scale
}

// FitScale shrinks scale so text fits within maxW.
func FitScale(text string, scale, maxW float32) float32 {
	w := TextWidth(text, scale)
	if w <= maxW || w == 0 {
		return scale
	}
	return scale * maxW / w
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText() {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.Uniform2f(r.textURes, r.viewW, r.viewH)

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / textFloats
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
