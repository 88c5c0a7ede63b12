package graphics

// Context is the windowing layer's side of the contract. It must be current
// on the calling thread before the renderer touches GL; the renderer never
// creates or manages the window itself.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
}
