package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/kgnguhan/agentic-chaser/internal/communications"
	"github.com/kgnguhan/agentic-chaser/pkg/formatting"
)

const sentimentPrompt = `You are reviewing a message a pension client sent to their financial advisor.
Classify its tone as exactly one of: frustrated, confused, neutral, positive.
Respond with JSON only:

{"sentiment": "<label>"}

Message:
%s`

type sentimentResponse struct {
	Sentiment string `json:"sentiment"`
}

type agentSentiment struct {
	agent  gaconfig.AgentConfig
	logger *slog.Logger
}

// NewAgentSentimentScorer creates a SentimentScorer backed by a chat model.
// Unreachable models surface as ErrModelUnavailable so callers can treat
// the message as unlabeled rather than failing the scoring pass.
func NewAgentSentimentScorer(agentCfg gaconfig.AgentConfig, logger *slog.Logger) SentimentScorer {
	return &agentSentiment{
		agent:  agentCfg,
		logger: logger.With("system", "sentiment"),
	}
}

func (s *agentSentiment) Label(ctx context.Context, body string) (string, error) {
	a, err := agent.New(&s.agent)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	resp, err := a.Chat(ctx, fmt.Sprintf(sentimentPrompt, body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	parsed, err := formatting.Parse[sentimentResponse](resp.Content())
	if err != nil {
		return "", fmt.Errorf("parse sentiment: %w", err)
	}

	label := strings.ToLower(strings.TrimSpace(parsed.Sentiment))
	if !communications.ValidSentiment(label) {
		s.logger.Warn("model returned unrecognized sentiment", "label", label)
		return communications.SentimentNeutral, nil
	}

	return label, nil
}
