package viewport

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Strategy names accepted by NewLoader.
const (
	StrategyFallback    = "fallback"
	StrategyRemote      = "remote"
	StrategyPlaceholder = "placeholder"
)

// NewLoader builds the loader for a strategy name.
func NewLoader(strategy, assetURL string, timeout time.Duration, log *zap.Logger) (Loader, error) {
	switch strategy {
	case "", StrategyFallback:
		return NewFallbackLoader(NewRemoteLoader(assetURL), PlaceholderLoader{}, timeout, log), nil
	case StrategyRemote:
		if timeout > 0 {
			return NewRemoteLoader(assetURL, WithClient(&http.Client{Timeout: timeout})), nil
		}
		return NewRemoteLoader(assetURL), nil
	case StrategyPlaceholder:
		return PlaceholderLoader{}, nil
	default:
		return nil, fmt.Errorf("unknown loader strategy %q: must be fallback, remote or placeholder", strategy)
	}
}
