package graphics

// Context defines the interface for an OpenGL context.
type Context interface {
	Shutdown()
	ShouldClose() bool
	// EndFrame presents the back buffer.
	EndFrame()
	// WaitEvents blocks until at least one event has been dispatched.
	WaitEvents()
	GetFramebufferSize() (int, int)
}
