package shader

// PositionLocation is the attribute slot the vertex stage declares for its
// position input. It is used when the linked program cannot report one.
const PositionLocation = 0

// Variable names as written in the sources below.
const (
	PositionAttrib = "aVertexPosition"
	ColorUniform   = "uColor"
)

// ──────────────────────────────── WebGL2 (ESSL 300) ─────────────────────────────

const vertexShaderSourceES = `#version 300 es
layout (location = 0) in vec4 aVertexPosition;
void main() {
    gl_Position = aVertexPosition;
}
`

const fragmentShaderSourceES = `#version 300 es
precision mediump float;
uniform vec4 uColor;
out vec4 fragColor;
void main() {
    fragColor = uColor;
}
`

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec4 aVertexPosition;
void main() {
    gl_Position = aVertexPosition;
}
`

const fragmentShaderSourceGL = `#version 410 core
uniform vec4 uColor;
out vec4 fragColor;
void main() {
    fragColor = uColor;
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

// Sources returns the vertex and fragment stage text. Translated sources are
// written in WebGL2 GLSL and must go through a Translator before compiling on
// desktop GL; the others compile on a 4.1 core context as-is.
func Sources(translated bool) (vertex, fragment string) {
	if translated {
		return vertexShaderSourceES, fragmentShaderSourceES
	}
	return vertexShaderSourceGL, fragmentShaderSourceGL
}
