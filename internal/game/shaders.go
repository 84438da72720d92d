package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sprite vertex shader: screen-space point sprites with per-vertex
// pos/size/color/shape.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aShape;

uniform vec2 uResolution;
uniform float uPixelScale;

out vec4 vColor;
out float vShape;
out float vSize;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, aSize * uPixelScale);
    vColor = aColor;
    vShape = aShape;
    vSize = aSize;
}
` + "\x00"

// Sprite fragment shader: shape 0 = soft disc, 1 = square, 2 = ring of
// fixed stroke width.
const spriteFragSrc = `#version 410 core

uniform float uRingStroke;

in vec4 vColor;
in float vShape;
in float vSize;
out vec4 FragColor;

void main() {
    vec2 uv = gl_PointCoord - vec2(0.5);
    float a = vColor.a;
    if (vShape < 0.5) {
        float d = length(uv) * 2.0;
        if (d > 1.0) discard;
        a *= clamp((1.0 - d) * vSize * 0.5, 0.0, 1.0);
    } else if (vShape > 1.5) {
        float distPx = length(uv) * vSize;
        float mid = vSize * 0.5 - uRingStroke * 0.5;
        float edge = uRingStroke * 0.5 - abs(distPx - mid);
        if (edge < 0.0) discard;
        a *= clamp(edge, 0.0, 1.0);
    }
    FragColor = vec4(vColor.rgb, a);
}
` + "\x00"

// Rect vertex shader: rounded rectangles emitted as two triangles each.
const rectVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aLocal;
layout(location = 2) in vec2 aHalf;
layout(location = 3) in vec4 aFill;
layout(location = 4) in vec4 aBorder;
layout(location = 5) in float aRadius;

uniform vec2 uResolution;

out vec2 vLocal;
out vec2 vHalf;
out vec4 vFill;
out vec4 vBorder;
out float vRadius;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vLocal = aLocal;
    vHalf = aHalf;
    vFill = aFill;
    vBorder = aBorder;
    vRadius = aRadius;
}
` + "\x00"

// Rect fragment shader: rounded-box distance field; vBorder.a is the
// border width in pixels.
const rectFragSrc = `#version 410 core

in vec2 vLocal;
in vec2 vHalf;
in vec4 vFill;
in vec4 vBorder;
in float vRadius;
out vec4 FragColor;

void main() {
    vec2 q = abs(vLocal) - vHalf + vec2(vRadius);
    float d = length(max(q, 0.0)) + min(max(q.x, q.y), 0.0) - vRadius;
    if (d > 0.5) discard;
    float aa = clamp(0.5 - d, 0.0, 1.0);
    vec3 col = d > -vBorder.a ? vBorder.rgb : vFill.rgb;
    FragColor = vec4(col, vFill.a * aa);
}
` + "\x00"

// Text vertex shader: screen-space textured quads for font rendering.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: font atlas sampling with color tint.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uFontTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
