package demo

import (
	"log/slog"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type LoopState int

const (
	StateRunning LoopState = iota
	StateDone
)

func (s LoopState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// EventSource yields every platform event that arrived since the last poll.
// Poll must not block.
type EventSource interface {
	Poll(dst []Event) []Event
}

type FrameRenderer interface {
	Clear(color [4]float32)
	Draw(dc DrawCall)
}

type Presenter interface {
	Present()
}

// Loop is the per-frame driver: poll, simulate, render, present.
type Loop struct {
	Events    EventSource
	Renderer  FrameRenderer
	Presenter Presenter
	Status    *StatusLine // optional
	Log       *slog.Logger
	Now       func() time.Time

	Sim   *Simulation
	Stats *FrameStats
	State LoopState

	events []Event
}

func NewLoop(events EventSource, r FrameRenderer, p Presenter, status *StatusLine, log *slog.Logger) *Loop {
	return &Loop{
		Events:    events,
		Renderer:  r,
		Presenter: p,
		Status:    status,
		Log:       log,
		Now:       time.Now,
		Sim:       NewSimulation(),
		State:     StateRunning,
	}
}

// HandleEvents processes every event in order. Quit, or an Escape key-down
// that is not an auto-repeat, ends the loop.
func (l *Loop) HandleEvents(events []Event) {
	for _, e := range events {
		switch e.Type {
		case EventQuit:
			l.State = StateDone
		case EventKeyDown:
			if e.Repeat {
				continue
			}
			switch e.Key {
			case glfw.KeyEscape:
				l.State = StateDone
			case glfw.KeyEnter:
				// Color is driven by simulated time; Enter is accepted and ignored.
			}
		}
	}
}

// Frame runs one iteration and reports whether the loop is still running.
// Once the loop is done nothing more is drawn.
func (l *Loop) Frame() bool {
	if l.State == StateDone {
		return false
	}
	if l.Stats == nil {
		l.Stats = NewFrameStats(l.Now())
	}

	l.events = l.Events.Poll(l.events[:0])
	l.HandleEvents(l.events)
	if l.State == StateDone {
		return false
	}

	l.Sim.Step(SimStep)

	l.Renderer.Clear(ClearColor)
	l.Renderer.Draw(DrawCall{
		Topology: Triangles,
		First:    0,
		Count:    VertexCount,
		Offset:   l.Sim.Offset,
	})

	l.Presenter.Present()

	sample := l.Stats.Tick(l.Now())
	if l.Status != nil {
		if err := l.Status.Print(sample); err != nil {
			l.Log.Warn("status line disabled", "err", err)
			l.Status = nil
		}
	}
	return true
}

// Run loops until a quit request and returns the number of frames presented.
func (l *Loop) Run() int {
	for l.Frame() {
	}
	if l.Stats == nil {
		return 0
	}
	return l.Stats.Frames()
}
