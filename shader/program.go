// Package shader holds the demo's GLSL sources and builds them into a linked
// program.
package shader

import (
	"fmt"
	"log/slog"

	"github.com/richinsley/glcircle/graphics"
	"github.com/richinsley/glcircle/logging"
)

// Translation is a stage rewritten for the target dialect. Names maps
// variable names in the original source to their names in Code.
type Translation struct {
	Code  string
	Names map[string]string
}

// Translator rewrites shader text for the current context's GLSL dialect.
type Translator interface {
	Translate(source string, stage graphics.ShaderStage) (Translation, error)
}

// CompileError carries the backend log of a failed stage compile.
type CompileError struct {
	Stage graphics.ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the backend log of a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// Program is a linked shader program. The zero Program is invalid.
type Program struct {
	Handle uint32
	names  map[string]string
}

// Valid reports whether the program linked.
func (p Program) Valid() bool { return p.Handle != 0 }

// Name returns the identifier the backend knows a source variable by.
func (p Program) Name(variable string) string {
	if mapped, ok := p.names[variable]; ok && mapped != "" {
		return mapped
	}
	return variable
}

// Builder compiles and links programs. Translator may be nil.
type Builder struct {
	Device     graphics.Device
	Translator Translator
	Logger     *slog.Logger
}

// Build compiles both stages and links them. Failures are logged with the
// backend's diagnostic text and reported as an invalid Program.
func (b *Builder) Build(vertexSource, fragmentSource string) Program {
	logger := b.Logger
	if logger == nil {
		logger = logging.WithComponent("shader")
	}

	names := make(map[string]string)
	if b.Translator != nil {
		var err error
		vertexSource, err = b.translate(vertexSource, graphics.VertexStage, names)
		if err != nil {
			logger.Error("shader translation failed", "stage", graphics.VertexStage.String(), "err", err)
			return Program{}
		}
		fragmentSource, err = b.translate(fragmentSource, graphics.FragmentStage, names)
		if err != nil {
			logger.Error("shader translation failed", "stage", graphics.FragmentStage.String(), "err", err)
			return Program{}
		}
	}

	handle, err := NewProgram(b.Device, vertexSource, fragmentSource)
	if err != nil {
		switch e := err.(type) {
		case *CompileError:
			logger.Error("An error occurred compiling the shaders", "stage", e.Stage.String(), "log", e.Log)
		case *LinkError:
			logger.Error("Unable to initialize the shader program", "log", e.Log)
		default:
			logger.Error("shader program failed", "err", err)
		}
		return Program{}
	}
	logger.Debug("shader program linked", "program", handle)
	return Program{Handle: handle, names: names}
}

func (b *Builder) translate(source string, stage graphics.ShaderStage, names map[string]string) (string, error) {
	t, err := b.Translator.Translate(source, stage)
	if err != nil {
		return "", fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	for k, v := range t.Names {
		names[k] = v
	}
	return t.Code, nil
}

// NewProgram compiles both stages and links them into a new program.
func NewProgram(dev graphics.Device, vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(dev, vertexShaderSource, graphics.VertexStage)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(dev, fragmentShaderSource, graphics.FragmentStage)
	if err != nil {
		dev.DeleteShader(vertexShader)
		return 0, err
	}

	program := dev.CreateProgram()
	dev.AttachShader(program, vertexShader)
	dev.AttachShader(program, fragmentShader)
	dev.LinkProgram(program)

	dev.DeleteShader(vertexShader)
	dev.DeleteShader(fragmentShader)

	if !dev.ProgramLinked(program) {
		log := dev.ProgramInfoLog(program)
		dev.DeleteProgram(program)
		return 0, &LinkError{Log: log}
	}
	return program, nil
}

func compileShader(dev graphics.Device, source string, stage graphics.ShaderStage) (uint32, error) {
	shader := dev.CreateShader(stage)
	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)

	if !dev.ShaderCompiled(shader) {
		log := dev.ShaderInfoLog(shader)
		dev.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: log}
	}
	return shader, nil
}
