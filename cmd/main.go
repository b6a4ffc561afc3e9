package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/glcircle/controls"
	"github.com/richinsley/glcircle/geometry"
	"github.com/richinsley/glcircle/gldevice"
	"github.com/richinsley/glcircle/glfwcontext"
	"github.com/richinsley/glcircle/graphics"
	"github.com/richinsley/glcircle/logging"
	"github.com/richinsley/glcircle/options"
	"github.com/richinsley/glcircle/renderer"
	"github.com/richinsley/glcircle/shader"
	"github.com/richinsley/glcircle/translator"
)

var errNoContext = errors.New("rendering context unavailable")

// Keyboard accelerators for the buttons.
var accelerators = map[string]glfw.Key{
	"red":   glfw.KeyR,
	"blue":  glfw.KeyB,
	"green": glfw.KeyG,
	"reset": glfw.KeyBackspace,
}

func init() {
	runtime.LockOSThread()
}

// presenter draws a whole frame: the circle, the buttons, then the swap.
type presenter struct {
	scene *renderer.Renderer
	bar   *renderer.ButtonBar
	ctx   graphics.Context
}

func (p *presenter) Render() {
	p.scene.Render()
	p.bar.Draw()
	p.ctx.EndFrame()
}

func run(opts *options.Options) error {
	logger := logging.WithComponent("main")

	if err := glfwcontext.InitGraphics(); err != nil {
		return fmt.Errorf("%w: %v", errNoContext, err)
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts)
	if err != nil {
		return fmt.Errorf("%w: %v", errNoContext, err)
	}
	defer ctx.Shutdown()

	dev, err := gldevice.New()
	if err != nil {
		return fmt.Errorf("%w: %v", errNoContext, err)
	}
	logger.Info("OpenGL context ready", "version", dev.Version())

	builder := &shader.Builder{Device: dev}
	if opts.Translate {
		tr, err := translator.New(context.Background(), false)
		if err != nil {
			return err
		}
		builder.Translator = tr
	}
	vs, fs := shader.Sources(opts.Translate)
	program := builder.Build(vs, fs)

	c := opts.Circle
	vertices := geometry.CircleFan(c.CenterX, c.CenterY, c.Radius, c.Segments)
	scene, err := renderer.NewScene(dev, program, vertices, opts.ClearColor())
	if err != nil {
		return fmt.Errorf("failed to build scene: %w", err)
	}
	defer scene.Shutdown()

	swatches := make([]graphics.Color, len(controls.Actions))
	for i, a := range controls.Actions {
		ctx.AddButton(a.Element, accelerators[a.Element])
		swatches[i] = a.Swatch
	}

	layout := ctx.Layout()
	bar := renderer.NewButtonBar(dev, scene.State(), layout, swatches)
	defer bar.Shutdown()

	scale := ctx.Scale()
	scene.SetViewport(layout.Viewport(layout.Canvas(), scale))
	bar.SetViewport(layout.Viewport(layout.Bar(), scale))

	p := &presenter{scene: scene, bar: bar, ctx: ctx}
	if _, err := controls.Bind(ctx, scene.State(), p); err != nil {
		return err
	}
	ctx.OnRefresh(p.Render)

	p.Render()
	for !ctx.ShouldClose() {
		ctx.WaitEvents()
	}
	return nil
}

func fatal(err error) {
	logging.L().Error("startup failed", "err", err)
	if errors.Is(err, errNoContext) {
		fmt.Fprintln(os.Stderr, "Unable to initialize OpenGL. Your system may not support it.")
	} else {
		fmt.Fprintf(os.Stderr, "glcircle: %v\n", err)
	}
	os.Exit(1)
}

func main() {
	opts, err := options.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fatal(err)
	}
	logging.Init(opts.Logging)

	if err := run(&opts); err != nil {
		fatal(err)
	}
}
