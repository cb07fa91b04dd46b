package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/clients"
	"github.com/kgnguhan/agentic-chaser/internal/communications"
	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/factfind"
	"github.com/kgnguhan/agentic-chaser/internal/postadvice"
	"github.com/kgnguhan/agentic-chaser/internal/prompts"
)

// System generates outbound messages and records them in the message log.
// Generation runs through the chat model with the active prompt override
// for the kind; when the model is unreachable a plain templated body is
// sent instead so chase cycles keep moving.
type System interface {
	// ChaseClient sends the state-appropriate chase for a client-action case.
	ChaseClient(ctx context.Context, c cases.Case) (*communications.Message, error)

	// NotifyClient tells the client their provider information has arrived.
	NotifyClient(ctx context.Context, c cases.Case) (*communications.Message, error)

	// ChaseProvider sends a provider communication of the given kind.
	ChaseProvider(ctx context.Context, c cases.Case, kind prompts.Kind) (*communications.Message, error)

	// RequestResubmission asks the client to resubmit a document that
	// failed verification, naming the quality issues found.
	RequestResubmission(ctx context.Context, clientID string, caseID *string, doc documents.Document) (*communications.Message, error)

	// RequestFactFindDocuments chases a client for their missing
	// fact-find categories.
	RequestFactFindDocuments(ctx context.Context, entry factfind.QueueEntry) (*communications.Message, error)

	// SendPostAdviceReminder nudges a client about an outstanding
	// post-advice action.
	SendPostAdviceReminder(ctx context.Context, item postadvice.Item) (*communications.Message, error)
}

type service struct {
	prompts  prompts.System
	messages communications.System
	clients  clients.System
	agent    gaconfig.AgentConfig
	logger   *slog.Logger
}

func New(
	promptSys prompts.System,
	messages communications.System,
	clientSys clients.System,
	agentCfg gaconfig.AgentConfig,
	logger *slog.Logger,
) System {
	return &service{
		prompts:  promptSys,
		messages: messages,
		clients:  clientSys,
		agent:    agentCfg,
		logger:   logger.With("system", "messaging"),
	}
}

func clientKindFor(state cases.State) prompts.Kind {
	switch state {
	case cases.StateAwaitingClientSignature:
		return prompts.KindSignatureRequest
	case cases.StateClientDocumentsRejected:
		return prompts.KindDocumentRequest
	default:
		return prompts.KindStatusUpdate
	}
}

func (s *service) ChaseClient(ctx context.Context, c cases.Case) (*communications.Message, error) {
	kind := clientKindFor(c.State)

	payload := map[string]any{
		"client_name":   c.ClientName,
		"provider":      c.ProviderName,
		"case_status":   c.State.Label(),
		"days_in_state": c.DaysInState,
		"sla_days_left": c.SLADaysRemaining,
	}

	fallback := fmt.Sprintf(
		"Dear %s, a quick reminder that your %s pension transfer is waiting on you (%s, %d days). Please get in touch if you need any help.",
		c.ClientName, c.ProviderName, c.State.Label(), c.DaysInState,
	)

	body := s.generate(ctx, kind, payload, fallback)
	return s.record(ctx, c.ClientID, &c.ID, communications.DirectionAdvisorToClient, body)
}

func (s *service) NotifyClient(ctx context.Context, c cases.Case) (*communications.Message, error) {
	payload := map[string]any{
		"client_name": c.ClientName,
		"provider":    c.ProviderName,
		"case_status": c.State.Label(),
	}

	fallback := fmt.Sprintf(
		"Dear %s, good news: we have received the information from %s and will review it with you shortly.",
		c.ClientName, c.ProviderName,
	)

	body := s.generate(ctx, prompts.KindStatusUpdate, payload, fallback)
	return s.record(ctx, c.ClientID, &c.ID, communications.DirectionAdvisorToClient, body)
}

func (s *service) ChaseProvider(ctx context.Context, c cases.Case, kind prompts.Kind) (*communications.Message, error) {
	payload := map[string]any{
		"client_name":   c.ClientName,
		"provider":      c.ProviderName,
		"case_status":   c.State.Label(),
		"days_in_state": c.DaysInState,
		"sla_days_left": c.SLADaysRemaining,
	}

	fallback := fmt.Sprintf(
		"To %s: requesting an update on the letter of authority for %s, outstanding %d days in status %q.",
		c.ProviderName, c.ClientName, c.DaysInState, c.State.Label(),
	)

	body := s.generate(ctx, kind, payload, fallback)
	return s.record(ctx, c.ClientID, &c.ID, communications.DirectionAdvisorToProvider, body)
}

func (s *service) RequestResubmission(
	ctx context.Context,
	clientID string,
	caseID *string,
	doc documents.Document,
) (*communications.Message, error) {
	category := doc.Type
	if idx, ok := factfind.CategoryForType(doc.Type); ok {
		category = factfind.Categories[idx]
	}

	payload := map[string]any{
		"document_type": doc.Type,
		"category":      category,
		"filename":      doc.Filename,
		"issues":        doc.IssueList(),
	}

	fallback := fmt.Sprintf(
		"We could not accept your %s (%s). Please upload a clearer copy.",
		category, documents.JoinedIssues(doc.IssueList()),
	)

	body := s.generate(ctx, prompts.KindDocumentRequest, payload, fallback)
	return s.record(ctx, clientID, caseID, communications.DirectionAdvisorToClient, body)
}

func (s *service) RequestFactFindDocuments(ctx context.Context, entry factfind.QueueEntry) (*communications.Message, error) {
	payload := map[string]any{
		"client_name":       entry.ClientName,
		"missing_documents": entry.Missing,
	}

	fallback := fmt.Sprintf(
		"Dear %s, to complete your fact find we still need %d item(s) from you. Please send them when you can.",
		entry.ClientName, entry.MissingCount,
	)

	body := s.generate(ctx, prompts.KindFactFindRequest, payload, fallback)
	return s.record(ctx, entry.ClientID, nil, communications.DirectionAdvisorToClient, body)
}

func (s *service) SendPostAdviceReminder(ctx context.Context, item postadvice.Item) (*communications.Message, error) {
	payload := map[string]any{
		"client_name":      item.ClientName,
		"action":           item.Description,
		"days_outstanding": item.DaysOutstanding,
	}
	if item.DaysUntilDeadline != nil {
		payload["days_until_deadline"] = *item.DaysUntilDeadline
	}

	fallback := fmt.Sprintf(
		"Dear %s, a reminder about the agreed action: %s (outstanding %d days).",
		item.ClientName, item.Description, item.DaysOutstanding,
	)

	body := s.generate(ctx, prompts.KindPostAdviceReminder, payload, fallback)
	return s.record(ctx, item.ClientID, nil, communications.DirectionAdvisorToClient, body)
}

// generate runs the composed prompt through the chat model, falling back
// to the templated body when composition or the model fails.
func (s *service) generate(ctx context.Context, kind prompts.Kind, payload any, fallback string) string {
	prompt, err := prompts.Compose(ctx, s.prompts, kind, payload)
	if err != nil {
		s.logger.Warn("prompt composition failed, using fallback body", "kind", kind, "error", err)
		return fallback
	}

	a, err := agent.New(&s.agent)
	if err != nil {
		s.logger.Warn("chat agent unavailable, using fallback body", "kind", kind, "error", err)
		return fallback
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		s.logger.Warn("chat request failed, using fallback body", "kind", kind, "error", err)
		return fallback
	}

	return resp.Content()
}

func (s *service) record(
	ctx context.Context,
	clientID string,
	caseID *string,
	direction string,
	body string,
) (*communications.Message, error) {
	return s.messages.Record(ctx, communications.RecordCommand{
		ClientID:  clientID,
		CaseID:    caseID,
		Direction: direction,
		Channel:   s.channelFor(ctx, clientID, direction),
		Body:      body,
	})
}

// channelFor resolves the outbound channel. Client messages go over the
// client's stated preference; provider correspondence is always email.
// An empty return lets the message log apply its own default.
func (s *service) channelFor(ctx context.Context, clientID, direction string) string {
	if direction == communications.DirectionAdvisorToProvider {
		return clients.ChannelEmail
	}

	client, err := s.clients.Find(ctx, clientID)
	if err != nil {
		s.logger.Warn("client lookup failed for channel selection", "client", clientID, "error", err)
		return ""
	}
	return client.CommunicationPreference
}
