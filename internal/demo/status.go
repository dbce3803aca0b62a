package demo

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// FrameSample is the timing of one presented frame.
type FrameSample struct {
	Index     int
	FrameTime float64 // seconds since the previous frame
	FPS       float64
}

// FrameStats measures the wall-clock interval between successive frames.
type FrameStats struct {
	count int
	last  time.Time
}

func NewFrameStats(start time.Time) *FrameStats {
	return &FrameStats{last: start}
}

// Tick records a frame finishing at now. A zero or negative interval
// reports 0 FPS rather than infinity.
func (f *FrameStats) Tick(now time.Time) FrameSample {
	dt := now.Sub(f.last).Seconds()
	f.last = now

	s := FrameSample{Index: f.count, FrameTime: dt}
	if dt > 0 {
		s.FPS = 1 / dt
	}
	f.count++
	return s
}

func (f *FrameStats) Frames() int { return f.count }

// StatusLine keeps a single console line up to date, overwriting it in place.
type StatusLine struct {
	w       io.Writer
	erase   bool
	written bool
}

// NewStatusLine writes to w. With erase set the line is cleared before each
// rewrite so a shorter line leaves nothing behind.
func NewStatusLine(w io.Writer, erase bool) *StatusLine {
	return &StatusLine{w: w, erase: erase}
}

// NewConsoleStatus targets f, clearing the line only when f is a terminal.
func NewConsoleStatus(f *os.File) *StatusLine {
	return NewStatusLine(f, term.IsTerminal(int(f.Fd())))
}

func FormatFrame(s FrameSample) string {
	return fmt.Sprintf("Frame: %d\tFrameTime: %f\tFPS: %f", s.Index, s.FrameTime, s.FPS)
}

func (l *StatusLine) Print(s FrameSample) error {
	prefix := "\r"
	if l.erase {
		prefix += ansi.EraseEntireLine
	}
	if _, err := io.WriteString(l.w, prefix+FormatFrame(s)); err != nil {
		return fmt.Errorf("status line: %w", err)
	}
	l.written = true
	return nil
}

// Close terminates the status line so later output starts on a fresh line.
func (l *StatusLine) Close() error {
	if !l.written {
		return nil
	}
	l.written = false
	_, err := io.WriteString(l.w, "\n")
	return err
}
