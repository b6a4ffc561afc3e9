package glfwcontext

import "github.com/richinsley/glcircle/controls"

// Button is a named region of the button strip.
type Button struct {
	name      string
	listeners []func()
}

var _ controls.Element = (*Button)(nil)

func (b *Button) OnClick(f func()) {
	b.listeners = append(b.listeners, f)
}

func (b *Button) click() {
	for _, f := range b.listeners {
		f()
	}
}
