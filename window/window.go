package window

// Event is one occurrence delivered by the windowing system. The loop in
// the driver only cares about three kinds, everything else is dropped at
// the source.
type Event interface {
	isEvent()
}

// ResizeEvent reports a new framebuffer size in pixels. It does not
// imply a repaint.
type ResizeEvent struct {
	Width  int
	Height int
}

// RedrawEvent asks for the window contents to be painted again.
type RedrawEvent struct{}

// CloseEvent reports that the user asked the window to close.
type CloseEvent struct{}

func (ResizeEvent) isEvent() {}
func (RedrawEvent) isEvent() {}
func (CloseEvent) isEvent()  {}

// Window is a native window owning a rendering context and an event
// queue. All methods must be called from the thread that created it.
type Window interface {
	// FramebufferSize returns the drawable surface size in pixels.
	FramebufferSize() (int, int)

	// Wait blocks until the windowing system delivers at least one
	// event, then returns the drained queue in delivery order.
	Wait() []Event

	// SwapBuffers presents the back buffer just rendered into.
	SwapBuffers() error

	Terminate()
}

// eventQueue collects events from windowing callbacks until the loop
// drains them. Single-threaded, callbacks and drain both run on the
// context thread.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *eventQueue) drain() []Event {
	events := q.events
	q.events = nil
	return events
}
