package predict

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/prompts"
)

// System produces case predictions, enriched with a model insight when the
// chat agent is reachable.
type System interface {
	Handler() *Handler

	// ForCase predicts the named case.
	ForCase(ctx context.Context, id string) (*Prediction, error)

	// ForClient predicts the client's most pressing open case. Returns
	// cases.ErrNotFound when the client has no open cases.
	ForClient(ctx context.Context, clientID string) (*Prediction, error)
}

type service struct {
	cases   cases.System
	prompts prompts.System
	agent   gaconfig.AgentConfig
	logger  *slog.Logger
}

func New(
	caseSys cases.System,
	promptSys prompts.System,
	agentCfg gaconfig.AgentConfig,
	logger *slog.Logger,
) System {
	return &service{
		cases:   caseSys,
		prompts: promptSys,
		agent:   agentCfg,
		logger:  logger.With("system", "predict"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) ForCase(ctx context.Context, id string) (*Prediction, error) {
	c, err := s.cases.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.predict(ctx, *c), nil
}

func (s *service) ForClient(ctx context.Context, clientID string) (*Prediction, error) {
	open, err := s.cases.ActiveForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	c, ok := SelectCase(open)
	if !ok {
		return nil, fmt.Errorf("no open cases for client %s: %w", clientID, cases.ErrNotFound)
	}

	return s.predict(ctx, c), nil
}

func (s *service) predict(ctx context.Context, c cases.Case) *Prediction {
	p := Assess(c)
	p.Insight = s.insight(ctx, c, p)
	return &p
}

// insight asks the chat model for a one-sentence narrative. Model failures
// degrade to a templated sentence rather than failing the prediction.
func (s *service) insight(ctx context.Context, c cases.Case, p Prediction) string {
	fallback := fmt.Sprintf(
		"%s's %s case is %s risk in status %q; suggested next step: %s.",
		c.ClientName, c.ProviderName, p.Risk, c.State.Label(), p.RecommendedAction,
	)

	prompt, err := prompts.Compose(ctx, s.prompts, prompts.KindInsight, map[string]any{
		"client_name":        c.ClientName,
		"provider":           c.ProviderName,
		"case_status":        c.State.Label(),
		"days_in_state":      c.DaysInState,
		"sla_days_left":      c.SLADaysRemaining,
		"risk":               p.Risk,
		"risk_reasons":       p.Reasons,
		"recommended_action": p.RecommendedAction,
	})
	if err != nil {
		s.logger.Warn("insight composition failed, using fallback", "error", err)
		return fallback
	}

	a, err := agent.New(&s.agent)
	if err != nil {
		s.logger.Warn("chat agent unavailable for insight, using fallback", "error", err)
		return fallback
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		s.logger.Warn("insight request failed, using fallback", "error", err)
		return fallback
	}

	return resp.Content()
}
