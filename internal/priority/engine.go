// Package priority computes and persists case priority: a base score from
// case features adjusted by the client's recent message sentiment.
package priority

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/clients"
	"github.com/kgnguhan/agentic-chaser/internal/communications"
	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/scoring"
)

const (
	// EscalationThreshold is the priority above which a case is routed to
	// an advisor regardless of state.
	EscalationThreshold = 7.0

	// sentimentLookback caps how many recent client messages are examined
	// for a sentiment signal.
	sentimentLookback = 5

	// defaultDocQuality is assumed when the client has no scored documents.
	defaultDocQuality = 75.0
)

// sentimentDeltas adjusts the base score by the client's most recent
// labeled sentiment.
var sentimentDeltas = map[string]float64{
	communications.SentimentFrustrated: 0.8,
	communications.SentimentConfused:   0.4,
	communications.SentimentNeutral:    0.0,
	communications.SentimentPositive:   -0.2,
}

// Outcome is the result of a priority evaluation.
type Outcome struct {
	Score      float64 `json:"score"`
	BaseScore  float64 `json:"base_score"`
	Sentiment  string  `json:"sentiment"`
	Escalate   bool    `json:"escalate"`
	SLAOverdue bool    `json:"sla_overdue"`
}

// Engine evaluates case priority and persists the outcome. The primary
// scorer may be model-backed; when it reports ErrModelUnavailable the
// weighted fallback scores the case instead.
type Engine struct {
	scorer    scoring.PriorityScorer
	fallback  scoring.PriorityScorer
	sentiment scoring.SentimentScorer
	cases     cases.System
	clients   clients.System
	documents documents.System
	messages  communications.System
	logger    *slog.Logger
}

// NewEngine creates a priority engine. A nil scorer uses the weighted
// default directly.
func NewEngine(
	scorer scoring.PriorityScorer,
	sentiment scoring.SentimentScorer,
	caseSys cases.System,
	clientSys clients.System,
	docSys documents.System,
	messageSys communications.System,
	logger *slog.Logger,
) *Engine {
	fallback := scoring.NewWeightedScorer()
	if scorer == nil {
		scorer = fallback
	}

	return &Engine{
		scorer:    scorer,
		fallback:  fallback,
		sentiment: sentiment,
		cases:     caseSys,
		clients:   clientSys,
		documents: docSys,
		messages:  messageSys,
		logger:    logger.With("system", "priority"),
	}
}

// Evaluate scores a case without persisting the result.
func (e *Engine) Evaluate(ctx context.Context, c cases.Case) (*Outcome, error) {
	features, err := e.features(ctx, c)
	if err != nil {
		return nil, err
	}

	base, err := e.scorer.Score(ctx, features)
	if err != nil {
		if !errors.Is(err, scoring.ErrModelUnavailable) {
			return nil, err
		}
		e.logger.Warn("primary scorer unavailable, using weighted fallback", "case", c.ID)
		if base, err = e.fallback.Score(ctx, features); err != nil {
			return nil, err
		}
	}

	sentiment := e.clientSentiment(ctx, c.ClientID)
	score := max(0, min(10, base+sentimentDeltas[sentiment]))

	urgent := score > EscalationThreshold || c.SLADaysRemaining < 0

	return &Outcome{
		Score:      score,
		BaseScore:  base,
		Sentiment:  sentiment,
		Escalate:   urgent,
		SLAOverdue: urgent,
	}, nil
}

// Apply scores a case and persists the outcome. Escalation and overdue
// flags only ever accumulate on the case.
func (e *Engine) Apply(ctx context.Context, c cases.Case) (*Outcome, error) {
	outcome, err := e.Evaluate(ctx, c)
	if err != nil {
		return nil, err
	}

	err = e.cases.ApplyPriority(ctx, c.ID, cases.PriorityUpdate{
		Score:      outcome.Score,
		Escalate:   outcome.Escalate,
		SLAOverdue: outcome.SLAOverdue,
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

func (e *Engine) features(ctx context.Context, c cases.Case) (scoring.Features, error) {
	age := 0
	if client, err := e.clients.Find(ctx, c.ClientID); err == nil {
		age = client.Age
	} else {
		e.logger.Warn("client lookup failed during scoring", "client", c.ClientID, "error", err)
	}

	quality, err := e.documentQuality(ctx, c.ClientID)
	if err != nil {
		return scoring.Features{}, err
	}

	return scoring.Features{
		DaysInState:    c.DaysInState,
		SLAOverdueDays: max(0, -c.SLADaysRemaining),
		ClientAge:      age,
		DocQuality:     quality,
	}, nil
}

// documentQuality averages the confidence of the client's scored documents,
// falling back to a neutral default when none have been scored.
func (e *Engine) documentQuality(ctx context.Context, clientID string) (float64, error) {
	docs, err := e.documents.ForClient(ctx, clientID)
	if err != nil {
		return 0, err
	}

	var sum float64
	var count int
	for _, doc := range docs {
		if doc.OCRConfidence != nil {
			sum += *doc.OCRConfidence
			count++
		}
	}

	if count == 0 {
		return defaultDocQuality, nil
	}
	return sum / float64(count), nil
}

// clientSentiment walks the client's recent inbound messages newest first.
// Every unlabeled message in the window is labeled and persisted, so a
// window is only ever classified once; the most recent label wins. A client
// with no labelable messages reads as neutral.
func (e *Engine) clientSentiment(ctx context.Context, clientID string) string {
	messages, err := e.messages.RecentClientMessages(ctx, clientID, sentimentLookback)
	if err != nil {
		e.logger.Warn("message lookup failed during scoring", "client", clientID, "error", err)
		return communications.SentimentNeutral
	}

	latest := communications.SentimentNeutral
	labeled := false

	for _, msg := range messages {
		label := ""
		if msg.Sentiment != nil {
			label = *msg.Sentiment
		} else {
			var err error
			if label, err = e.sentiment.Label(ctx, msg.Body); err != nil {
				e.logger.Warn("sentiment labeling failed", "message", msg.ID, "error", err)
				continue
			}
			if err := e.messages.LabelSentiment(ctx, msg.ID, label); err != nil {
				e.logger.Warn("sentiment persist failed", "message", msg.ID, "error", err)
			}
		}

		if !labeled {
			latest = label
			labeled = true
		}
	}

	return latest
}

// ProviderSentiment is the counterpart hook for provider correspondence.
// Providers are institutions, so their tone never adjusts priority.
func (e *Engine) ProviderSentiment() string {
	return communications.SentimentNeutral
}
