package glfwcontext

import (
	"fmt"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/glcircle/controls"
	"github.com/richinsley/glcircle/graphics"
	"github.com/richinsley/glcircle/logging"
	options "github.com/richinsley/glcircle/options"
)

// Context is a fixed-size window whose lower strip holds the buttons.
type Context struct {
	window  *glfw.Window
	layout  controls.Layout
	buttons []*Button
	// A map to store functions to be called on key presses.
	keyCallbacks map[glfw.Key]func()
	onRefresh    func()
}

var _ graphics.Context = (*Context)(nil)
var _ controls.Elements = (*Context)(nil)

// New creates the window and makes its context current on the calling
// thread.
func New(opts *options.Options) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	layout := controls.Layout{
		Width:        opts.Window.Width,
		CanvasHeight: opts.Window.Height,
		BarHeight:    opts.Window.BarHeight,
		Margin:       6,
	}
	win, err := glfw.CreateWindow(layout.Width, layout.WindowHeight(), opts.Window.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create %s window: %w", opts.Window.Canvas, err)
	}

	c := &Context{
		window:       win,
		layout:       layout,
		keyCallbacks: make(map[glfw.Key]func()),
	}
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	win.SetRefreshCallback(func(*glfw.Window) {
		if c.onRefresh != nil {
			c.onRefresh()
		}
	})
	win.MakeContextCurrent()
	return c, nil
}

// Layout reports how the window is divided.
func (c *Context) Layout() controls.Layout { return c.layout }

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

// OnRefresh sets the function run when the window contents need redrawing.
func (c *Context) OnRefresh(f func()) { c.onRefresh = f }

// AddButton places a named button in the strip. Buttons share the strip
// equally in the order they were added; key, when not glfw.KeyUnknown,
// clicks it from the keyboard.
func (c *Context) AddButton(name string, key glfw.Key) *Button {
	b := &Button{name: name}
	c.buttons = append(c.buttons, b)
	if key != glfw.KeyUnknown {
		c.RegisterKeyCallback(key, b.click)
	}
	return b
}

// Element implements controls.Elements.
func (c *Context) Element(name string) (controls.Element, bool) {
	for _, b := range c.buttons {
		if b.name == name {
			return b, true
		}
	}
	return nil, false
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
	if action == glfw.Press {
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
	}
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != glfw.Press {
		return
	}
	x, y := w.GetCursorPos()
	if i, ok := c.layout.HitTest(x, y, len(c.buttons)); ok {
		c.buttons[i].click()
	}
}

// Scale is the framebuffer to window size ratio.
func (c *Context) Scale() float64 {
	fbWidth, _ := c.GetFramebufferSize()
	winWidth, _ := c.window.GetSize()
	if winWidth <= 0 {
		return 1
	}
	return float64(fbWidth) / float64(winWidth)
}

func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
}

func (c *Context) WaitEvents() {
	glfw.WaitEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	logging.WithComponent("glfw").Info("GLFW initialized", "version", glfw.GetVersionString())
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	logging.WithComponent("glfw").Info("GLFW terminated")
}
