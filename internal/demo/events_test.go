package demo

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestEventQueueDrainKeepsOrder(t *testing.T) {
	q := NewEventQueue()
	q.Push(key(glfw.KeyA, false))
	q.Push(key(glfw.KeyEscape, true))
	q.Push(quit())
	assert.Equal(t, 3, q.Len())

	got := q.Drain(nil)
	assert.Equal(t, []Event{key(glfw.KeyA, false), key(glfw.KeyEscape, true), quit()}, got)
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Drain(nil))
}

func TestEventQueueDrainAppends(t *testing.T) {
	q := NewEventQueue()
	q.Push(quit())
	dst := []Event{key(glfw.KeyB, false)}
	assert.Equal(t, []Event{key(glfw.KeyB, false), quit()}, q.Drain(dst))
}

func TestKeyEvent(t *testing.T) {
	e, ok := keyEvent(glfw.KeyEscape, glfw.Press)
	assert.True(t, ok)
	assert.Equal(t, key(glfw.KeyEscape, false), e)

	e, ok = keyEvent(glfw.KeyEscape, glfw.Repeat)
	assert.True(t, ok)
	assert.Equal(t, key(glfw.KeyEscape, true), e)

	_, ok = keyEvent(glfw.KeyEscape, glfw.Release)
	assert.False(t, ok)
}
