// Package scoring produces the raw inputs to case prioritization: a base
// priority score from case features and sentiment labels for client
// messages.
package scoring

import (
	"context"
	"errors"
)

// ErrModelUnavailable is returned by scorers whose backing model cannot be
// reached. Callers fall back to the weighted default scorer.
var ErrModelUnavailable = errors.New("scoring model unavailable")

// Features are the case attributes the priority scorers consume.
// DocQuality ranges 0-100, higher meaning cleaner documents.
type Features struct {
	DaysInState    int
	SLAOverdueDays int
	ClientAge      int
	DocQuality     float64
}

// PriorityScorer maps case features to a base priority in [0, 10].
type PriorityScorer interface {
	Score(ctx context.Context, f Features) (float64, error)
}

// SentimentScorer labels the tone of a client message.
type SentimentScorer interface {
	Label(ctx context.Context, body string) (string, error)
}
