package completion

import (
	"context"
	"errors"
)

// ErrListenerFull is returned when the listener buffer has no room.
var ErrListenerFull = errors.New("completion listener buffer full")

// Listener is the same-process sink. Events are buffered on a channel and
// never block the sender.
type Listener struct {
	ch chan Event
}

// NewListener creates a Listener with the given buffer size (minimum 1).
func NewListener(buffer int) *Listener {
	if buffer < 1 {
		buffer = 1
	}
	return &Listener{ch: make(chan Event, buffer)}
}

// Events returns the receive side of the listener.
func (l *Listener) Events() <-chan Event {
	return l.ch
}

func (l *Listener) Notify(_ context.Context, ev Event) error {
	select {
	case l.ch <- ev:
		return nil
	default:
		return ErrListenerFull
	}
}
