package completion

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Notifier delivers completion events to a host context.
type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, ev Event) error

func (f NotifierFunc) Notify(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// Broadcaster validates an event once and delivers it to every sink.
// Typically one sink is the in-process listener and one is the parent host.
type Broadcaster struct {
	sinks []Notifier
	log   *zap.Logger
}

// NewBroadcaster creates a Broadcaster over the given sinks. Nil sinks are skipped.
func NewBroadcaster(log *zap.Logger, sinks ...Notifier) *Broadcaster {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Broadcaster{log: log}
	for _, s := range sinks {
		if s != nil {
			b.sinks = append(b.sinks, s)
		}
	}
	return b
}

// Add appends a sink.
func (b *Broadcaster) Add(s Notifier) {
	if s != nil {
		b.sinks = append(b.sinks, s)
	}
}

// Len returns the number of sinks.
func (b *Broadcaster) Len() int {
	return len(b.sinks)
}

// Notify delivers ev to all sinks, even when some of them fail. The
// returned error joins every sink failure.
func (b *Broadcaster) Notify(ctx context.Context, ev Event) error {
	if err := Validate(ev); err != nil {
		b.log.Error("completion event rejected", zap.Error(err), zap.String("block_id", ev.BlockID))
		return err
	}

	var errs []error
	for i, s := range b.sinks {
		if err := s.Notify(ctx, ev); err != nil {
			b.log.Warn("completion sink failed",
				zap.Int("sink", i),
				zap.String("block_id", ev.BlockID),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("sink %d: %w", i, err))
			continue
		}
		b.log.Debug("completion delivered",
			zap.Int("sink", i),
			zap.String("block_id", ev.BlockID),
			zap.Int("score", ev.Score),
		)
	}
	return errors.Join(errs...)
}
