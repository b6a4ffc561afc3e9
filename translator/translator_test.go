package translator

import (
	"context"
	"strings"
	"testing"

	"github.com/richinsley/glcircle/graphics"
	"github.com/richinsley/glcircle/graphics/graphicstest"
	"github.com/richinsley/glcircle/shader"
)

func TestTranslateSourcesToDesktopGL(t *testing.T) {
	tr, err := New(context.Background(), false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	vs, fs := shader.Sources(true)
	tests := []struct {
		name     string
		stage    graphics.ShaderStage
		source   string
		variable string
	}{
		{"vertex", graphics.VertexStage, vs, shader.PositionAttrib},
		{"fragment", graphics.FragmentStage, fs, shader.ColorUniform},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tr.Translate(tt.source, tt.stage)
			if err != nil {
				t.Fatalf("Translate: %v", err)
			}
			if !strings.Contains(out.Code, "#version 410") {
				t.Errorf("output is not GLSL 410:\n%s", out.Code)
			}
			mapped := out.Names[tt.variable]
			if mapped == "" {
				t.Fatalf("no mapped name for %s in %v", tt.variable, out.Names)
			}
			if !strings.Contains(out.Code, mapped) {
				t.Errorf("mapped name %q not found in output:\n%s", mapped, out.Code)
			}
		})
	}
}

func TestTranslatedNamesReachProgram(t *testing.T) {
	tr, err := New(context.Background(), false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	vs, fs := shader.Sources(true)
	vout, err := tr.Translate(vs, graphics.VertexStage)
	if err != nil {
		t.Fatalf("Translate vertex: %v", err)
	}
	fout, err := tr.Translate(fs, graphics.FragmentStage)
	if err != nil {
		t.Fatalf("Translate fragment: %v", err)
	}

	b := &shader.Builder{Device: graphicstest.NewRecorder(), Translator: tr}
	p := b.Build(vs, fs)
	if !p.Valid() {
		t.Fatal("Build with the real translator returned an invalid program")
	}
	if got, want := p.Name(shader.ColorUniform), fout.Names[shader.ColorUniform]; got != want {
		t.Errorf("Name(uColor) = %q, want %q", got, want)
	}
	if got, want := p.Name(shader.PositionAttrib), vout.Names[shader.PositionAttrib]; got != want {
		t.Errorf("Name(aVertexPosition) = %q, want %q", got, want)
	}
}
