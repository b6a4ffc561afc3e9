package shader

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/richinsley/glcircle/graphics"
	"github.com/richinsley/glcircle/graphics/graphicstest"
)

func newBuilder(dev graphics.Device, tr Translator) (*Builder, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Builder{
		Device:     dev,
		Translator: tr,
		Logger:     slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}, &buf
}

func TestBuildLinksProgram(t *testing.T) {
	dev := graphicstest.NewRecorder()
	b, _ := newBuilder(dev, nil)

	vs, fs := Sources(false)
	p := b.Build(vs, fs)
	if !p.Valid() {
		t.Fatal("Build returned an invalid program for valid sources")
	}

	want := []string{
		"CreateShader", "ShaderSource", "CompileShader",
		"CreateShader", "ShaderSource", "CompileShader",
		"CreateProgram", "AttachShader", "AttachShader", "LinkProgram",
		"DeleteShader", "DeleteShader",
	}
	if got := dev.Ops(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("ops = %v\nwant  %v", got, want)
	}
	if p.Name(ColorUniform) != ColorUniform {
		t.Errorf("Name(%q) = %q without a translator", ColorUniform, p.Name(ColorUniform))
	}
}

func TestBuildCompileFailure(t *testing.T) {
	tests := []struct {
		name  string
		stage graphics.ShaderStage
	}{
		{"vertex", graphics.VertexStage},
		{"fragment", graphics.FragmentStage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := graphicstest.NewRecorder()
			dev.CompileErrors[tt.stage] = "ERROR: 0:3: 'fragColour' : undeclared identifier"
			b, logs := newBuilder(dev, nil)

			var p Program
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Fatalf("Build panicked: %v", r)
					}
				}()
				p = b.Build("#version 410 core\nvoid main() {", "not glsl at all")
			}()

			if p.Valid() {
				t.Fatal("Build returned a valid program after a compile failure")
			}
			out := logs.String()
			if !strings.Contains(out, "undeclared identifier") {
				t.Errorf("log %q does not carry the compile log", out)
			}
			if !strings.Contains(out, "stage="+tt.name) {
				t.Errorf("log %q does not name the stage", out)
			}
			for _, op := range dev.Ops() {
				if op == "CreateProgram" {
					t.Error("program created after a compile failure")
				}
			}
		})
	}
}

func TestBuildFragmentFailureDeletesVertexStage(t *testing.T) {
	dev := graphicstest.NewRecorder()
	dev.CompileErrors[graphics.FragmentStage] = "boom"
	b, _ := newBuilder(dev, nil)

	b.Build("vs", "fs")
	// vertex shader is the first object created
	if !dev.Deleted(1) {
		t.Fatal("compiled vertex stage leaked after fragment failure")
	}
}

func TestBuildLinkFailure(t *testing.T) {
	dev := graphicstest.NewRecorder()
	dev.LinkError = "error: vertex output 'v' not read by fragment shader"
	b, logs := newBuilder(dev, nil)

	vs, fs := Sources(false)
	p := b.Build(vs, fs)
	if p.Valid() {
		t.Fatal("Build returned a valid program after a link failure")
	}
	if !strings.Contains(logs.String(), "not read by fragment shader") {
		t.Errorf("log %q does not carry the link log", logs.String())
	}
	ops := dev.Ops()
	if ops[len(ops)-1] != "DeleteProgram" {
		t.Errorf("last op = %s, want DeleteProgram", ops[len(ops)-1])
	}
}

func TestNewProgramErrors(t *testing.T) {
	dev := graphicstest.NewRecorder()
	dev.CompileErrors[graphics.VertexStage] = "bad"
	_, err := NewProgram(dev, "x", "y")
	var ce *CompileError
	if !errors.As(err, &ce) || ce.Stage != graphics.VertexStage || ce.Log != "bad" {
		t.Fatalf("NewProgram error = %v, want vertex CompileError", err)
	}

	dev = graphicstest.NewRecorder()
	dev.LinkError = "nope"
	_, err = NewProgram(dev, "x", "y")
	var le *LinkError
	if !errors.As(err, &le) || le.Log != "nope" {
		t.Fatalf("NewProgram error = %v, want LinkError", err)
	}
}

type fakeTranslator struct {
	err    error
	stages []graphics.ShaderStage
}

func (f *fakeTranslator) Translate(source string, stage graphics.ShaderStage) (Translation, error) {
	f.stages = append(f.stages, stage)
	if f.err != nil {
		return Translation{}, f.err
	}
	names := map[string]string{}
	switch stage {
	case graphics.VertexStage:
		names[PositionAttrib] = "_u" + PositionAttrib
	case graphics.FragmentStage:
		names[ColorUniform] = "_u" + ColorUniform
	}
	return Translation{Code: "// translated\n" + source, Names: names}, nil
}

func TestBuildWithTranslator(t *testing.T) {
	dev := graphicstest.NewRecorder()
	tr := &fakeTranslator{}
	b, _ := newBuilder(dev, tr)

	vs, fs := Sources(true)
	p := b.Build(vs, fs)
	if !p.Valid() {
		t.Fatal("Build returned an invalid program")
	}
	if len(tr.stages) != 2 || tr.stages[0] != graphics.VertexStage || tr.stages[1] != graphics.FragmentStage {
		t.Fatalf("translated stages = %v", tr.stages)
	}
	if got := p.Name(ColorUniform); got != "_uuColor" {
		t.Errorf("Name(uColor) = %q, want _uuColor", got)
	}
	if got := p.Name(PositionAttrib); got != "_uaVertexPosition" {
		t.Errorf("Name(aVertexPosition) = %q", got)
	}
	for _, c := range dev.Calls() {
		if c.Op == "ShaderSource" && !strings.HasPrefix(c.Args[1].(string), "// translated") {
			t.Errorf("compiled untranslated source %q", c.Args[1])
		}
	}
}

func TestBuildTranslatorFailure(t *testing.T) {
	dev := graphicstest.NewRecorder()
	b, logs := newBuilder(dev, &fakeTranslator{err: errors.New("syntax error near 'void'")})

	vs, fs := Sources(true)
	if p := b.Build(vs, fs); p.Valid() {
		t.Fatal("Build returned a valid program after translation failed")
	}
	if !strings.Contains(logs.String(), "syntax error near") {
		t.Errorf("log %q missing translator diagnostic", logs.String())
	}
	if len(dev.Calls()) != 0 {
		t.Errorf("device used after translation failure: %v", dev.Ops())
	}
}
