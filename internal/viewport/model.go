package viewport

import (
	"context"

	"github.com/abhisek/squelette/internal/anatomy"
)

// Source tells where the displayed model came from.
type Source int

const (
	SourceNone        Source = iota // Nothing loaded yet
	SourceRemote                    // Fetched glTF binary
	SourcePlaceholder               // Procedural stick figure
)

func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourcePlaceholder:
		return "placeholder"
	default:
		return "none"
	}
}

// Model is what the viewport draws behind the anchor markers. The quiz
// never reads it.
type Model struct {
	Source Source
	URL    string
	Size   int
	Info   Info

	// Bones is set for placeholder models.
	Bones []anatomy.Bone

	// FallbackReason holds the primary loader error when a fallback was used.
	FallbackReason string
}

// Loader produces the model to display.
type Loader interface {
	Load(ctx context.Context) (*Model, error)
}

// PlaceholderLoader builds the stick figure from the skeleton bones. It
// never fails.
type PlaceholderLoader struct{}

func (PlaceholderLoader) Load(context.Context) (*Model, error) {
	return &Model{
		Source: SourcePlaceholder,
		Bones:  anatomy.Bones(),
	}, nil
}
