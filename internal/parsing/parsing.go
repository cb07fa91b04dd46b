// Package parsing extracts structured meaning from free-text client and
// provider replies. The chat model does the extraction; when it is
// unreachable a keyword pass produces a usable approximation.
package parsing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/kgnguhan/agentic-chaser/internal/prompts"
	"github.com/kgnguhan/agentic-chaser/pkg/formatting"
)

// Recognized reply intents.
const (
	IntentProvidingInformation = "providing_information"
	IntentAskingQuestion       = "asking_question"
	IntentConfirmingCompletion = "confirming_completion"
	IntentRaisingConcern       = "raising_concern"
	IntentGeneral              = "general"
)

// Parsed is the structured reading of a reply.
type Parsed struct {
	Intent              string   `json:"intent"`
	KeyFacts            []string `json:"key_facts"`
	ActionItems         []string `json:"action_items"`
	ContainsQuestion    bool     `json:"contains_question"`
	IndicatesCompletion bool     `json:"indicates_completion"`
	Summary             string   `json:"summary"`
	Source              string   `json:"source"`
}

// Parser sources: model extraction or the keyword fallback.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// System parses free-text replies.
type System interface {
	Handler() *Handler

	Parse(ctx context.Context, body string) (*Parsed, error)
}

type parser struct {
	prompts prompts.System
	agent   gaconfig.AgentConfig
	logger  *slog.Logger
}

func New(promptSys prompts.System, agentCfg gaconfig.AgentConfig, logger *slog.Logger) System {
	return &parser{
		prompts: promptSys,
		agent:   agentCfg,
		logger:  logger.With("system", "parsing"),
	}
}

func (p *parser) Handler() *Handler {
	return NewHandler(p, p.logger)
}

func (p *parser) Parse(ctx context.Context, body string) (*Parsed, error) {
	parsed, err := p.parseWithModel(ctx, body)
	if err != nil {
		p.logger.Warn("model parse failed, using keyword fallback", "error", err)
		return parseFallback(body), nil
	}

	if !validIntent(parsed.Intent) {
		p.logger.Warn("model returned unrecognized intent", "intent", parsed.Intent)
		parsed.Intent = IntentGeneral
	}

	parsed.Source = SourceModel
	return parsed, nil
}

func (p *parser) parseWithModel(ctx context.Context, body string) (*Parsed, error) {
	prompt, err := prompts.Compose(ctx, p.prompts, prompts.KindParseResponse, map[string]any{
		"message": body,
	})
	if err != nil {
		return nil, err
	}

	a, err := agent.New(&p.agent)
	if err != nil {
		return nil, err
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return nil, err
	}

	parsed, err := formatting.Parse[Parsed](resp.Content())
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func validIntent(intent string) bool {
	switch intent {
	case IntentProvidingInformation,
		IntentAskingQuestion,
		IntentConfirmingCompletion,
		IntentRaisingConcern,
		IntentGeneral:
		return true
	}
	return false
}

var completionPhrases = []string{
	"signed",
	"attached",
	"uploaded",
	"sent it",
	"all done",
	"completed",
	"posted it",
	"returned the form",
}

var concernPhrases = []string{
	"unhappy",
	"frustrated",
	"complaint",
	"taking too long",
	"still waiting",
	"disappointed",
}

// parseFallback approximates the model extraction with keyword checks.
func parseFallback(body string) *Parsed {
	lower := strings.ToLower(body)

	parsed := &Parsed{
		KeyFacts:         []string{},
		ActionItems:      []string{},
		ContainsQuestion: strings.Contains(body, "?"),
		Summary:          summarize(body),
		Source:           SourceFallback,
	}

	for _, phrase := range completionPhrases {
		if strings.Contains(lower, phrase) {
			parsed.IndicatesCompletion = true
			break
		}
	}

	switch {
	case parsed.IndicatesCompletion:
		parsed.Intent = IntentConfirmingCompletion
	case containsAny(lower, concernPhrases):
		parsed.Intent = IntentRaisingConcern
	case parsed.ContainsQuestion:
		parsed.Intent = IntentAskingQuestion
	default:
		parsed.Intent = IntentGeneral
	}

	return parsed
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}

const summaryLimit = 140

// summarize takes the first sentence, truncated to a readable length.
func summarize(body string) string {
	text := strings.Join(strings.Fields(body), " ")

	if idx := strings.IndexAny(text, ".!?"); idx >= 0 {
		text = text[:idx+1]
	}

	if len(text) > summaryLimit {
		text = strings.TrimSpace(text[:summaryLimit]) + "..."
	}

	return text
}
