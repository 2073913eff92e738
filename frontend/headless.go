package frontend

// Headless is a backend that records frames without presenting them
// anywhere. It backs tests and environments with no display attached.
type Headless struct {
	lastFrame  Frame
	frameCount int
}

// NewHeadless creates a headless backend.
func NewHeadless() *Headless {
	return &Headless{}
}

// Render implements Renderer.
func (h *Headless) Render(frame Frame) error {
	h.lastFrame = frame
	h.frameCount++
	return nil
}

// Close implements Renderer.
func (h *Headless) Close() error {
	return nil
}

// LastFrame returns the most recently rendered frame.
func (h *Headless) LastFrame() Frame {
	return h.lastFrame
}

// FrameCount returns the number of frames rendered so far.
func (h *Headless) FrameCount() int {
	return h.frameCount
}
