// Package controls binds the demo's four color buttons to the render state.
package controls

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/richinsley/glcircle/graphics"
	"github.com/richinsley/glcircle/logging"
)

// ErrMissingElement is returned by Bind when the environment has no element
// for one of the actions.
var ErrMissingElement = errors.New("missing UI element")

// Element is a clickable control supplied by the environment.
type Element interface {
	// OnClick adds a listener. Listeners are never removed.
	OnClick(func())
}

// Elements resolves controls by their fixed name.
type Elements interface {
	Element(name string) (Element, bool)
}

// ColorSetter is the render state's single mutator.
type ColorSetter interface {
	SetFillColor(graphics.Color)
}

type Renderer interface {
	Render()
}

// Action is a fixed color change bound to one element.
type Action struct {
	Element string
	Name    string
	Color   graphics.Color
	// Swatch is what the button itself is painted with.
	Swatch graphics.Color
}

// Actions lists every binding in button order.
//
// NOTE: "red" sets orange, not red. Kept as-is until the intended color is
// confirmed.
var Actions = []Action{
	{Element: "red", Name: "red-trigger", Color: graphics.Color{R: 1.0, G: 0.5, B: 0.0, A: 1.0}, Swatch: graphics.Color{R: 0.8, G: 0.1, B: 0.1, A: 1}},
	{Element: "blue", Name: "blue-trigger", Color: graphics.Color{R: 0.0, G: 0.0, B: 1.0, A: 1.0}, Swatch: graphics.Color{R: 0.1, G: 0.2, B: 0.8, A: 1}},
	{Element: "green", Name: "green-trigger", Color: graphics.Color{R: 0.0, G: 1.0, B: 0.0, A: 1.0}, Swatch: graphics.Color{R: 0.1, G: 0.7, B: 0.2, A: 1}},
	{Element: "reset", Name: "reset-trigger", Color: graphics.Color{R: 1.0, G: 0.0, B: 0.0, A: 1.0}, Swatch: graphics.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}},
}

// Controller runs actions against the state and renderer it was bound with.
type Controller struct {
	state    ColorSetter
	renderer Renderer
	byName   map[string]Action
	logger   *slog.Logger
}

// Bind resolves every action's element first and only then attaches the
// listeners, so a missing element leaves nothing half wired.
func Bind(elems Elements, state ColorSetter, r Renderer) (*Controller, error) {
	resolved := make([]Element, len(Actions))
	for i, a := range Actions {
		el, ok := elems.Element(a.Element)
		if !ok || el == nil {
			return nil, fmt.Errorf("%w: no element named %q for %s", ErrMissingElement, a.Element, a.Name)
		}
		resolved[i] = el
	}

	c := &Controller{
		state:    state,
		renderer: r,
		byName:   make(map[string]Action, len(Actions)),
		logger:   logging.WithComponent("controls"),
	}
	for i, a := range Actions {
		c.byName[a.Element] = a
		resolved[i].OnClick(func() { c.run(a) })
	}
	return c, nil
}

// Trigger runs the action bound to element as if it had been clicked.
func (c *Controller) Trigger(element string) error {
	a, ok := c.byName[element]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingElement, element)
	}
	c.run(a)
	return nil
}

func (c *Controller) run(a Action) {
	c.logger.Debug("action", "name", a.Name, "color", a.Color.Vec4())
	c.state.SetFillColor(a.Color)
	c.renderer.Render()
}
