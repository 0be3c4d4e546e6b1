package viewport

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// FallbackLoader tries a primary loader under a timeout and degrades to a
// fallback on any error.
type FallbackLoader struct {
	primary  Loader
	fallback Loader
	timeout  time.Duration
	log      *zap.Logger
}

// NewFallbackLoader creates a FallbackLoader. A zero timeout means the
// primary is bounded only by ctx.
func NewFallbackLoader(primary, fallback Loader, timeout time.Duration, log *zap.Logger) *FallbackLoader {
	if log == nil {
		log = zap.NewNop()
	}
	return &FallbackLoader{primary: primary, fallback: fallback, timeout: timeout, log: log}
}

func (f *FallbackLoader) Load(ctx context.Context) (*Model, error) {
	pctx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		pctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	m, err := f.primary.Load(pctx)
	if err == nil {
		return m, nil
	}

	f.log.Warn("model load failed, using fallback", zap.Error(err))
	m, ferr := f.fallback.Load(ctx)
	if ferr != nil {
		return nil, ferr
	}
	if m == nil {
		return nil, err
	}
	m.FallbackReason = err.Error()
	return m, nil
}
