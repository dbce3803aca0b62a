package demo

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// keyEvent maps a glfw key action to a queued event. Releases are not
// interesting to the demo and are dropped.
func keyEvent(key glfw.Key, action glfw.Action) (Event, bool) {
	switch action {
	case glfw.Press:
		return Event{Type: EventKeyDown, Key: key}, true
	case glfw.Repeat:
		return Event{Type: EventKeyDown, Key: key, Repeat: true}, true
	}
	return Event{}, false
}

// Input collects window callbacks and OS termination signals into a single
// event queue. It implements EventSource.
type Input struct {
	window  *glfw.Window
	queue   *EventQueue
	signals chan os.Signal
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{
		window:  window,
		queue:   NewEventQueue(),
		signals: make(chan os.Signal, 1),
	}
	window.SetCloseCallback(func(w *glfw.Window) {
		in.queue.Push(Event{Type: EventQuit})
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if e, ok := keyEvent(key, action); ok {
			in.queue.Push(e)
		}
	})
	signal.Notify(in.signals, os.Interrupt, syscall.SIGTERM)
	return in
}

// Poll processes pending window-system events without blocking and returns
// everything queued since the previous call, appended to dst.
func (in *Input) Poll(dst []Event) []Event {
	glfw.PollEvents()
	select {
	case <-in.signals:
		in.queue.Push(Event{Type: EventQuit})
	default:
	}
	return in.queue.Drain(dst)
}

// Close detaches the callbacks and stops signal delivery.
func (in *Input) Close() {
	signal.Stop(in.signals)
	in.window.SetCloseCallback(nil)
	in.window.SetKeyCallback(nil)
}
