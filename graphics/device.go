package graphics

// ShaderStage selects a shader pipeline stage.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// Primitive is a draw topology.
type Primitive int

const (
	TriangleFan Primitive = iota
)

// Device is the slice of OpenGL the renderer talks to. Handles are the raw
// GL object names; 0 is never a valid object and -1 is an unresolved location.
type Device interface {
	ClearColor(r, g, b, a float32)
	Clear()
	Viewport(x, y, width, height int32)

	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32
	Uniform4fv(location int32, value [4]float32)

	// NewVertexBuffer uploads data once as a static buffer and returns its
	// name. The buffer stays bound for subsequent attribute setup.
	NewVertexBuffer(data []float32) uint32
	BindVertexBuffer(buffer uint32)
	// VertexAttrib2f points attribute location at tightly packed vec2 floats
	// in the bound buffer and enables it.
	VertexAttrib2f(location int32)
	DeleteBuffer(buffer uint32)

	DrawArrays(mode Primitive, first, count int32)
}
