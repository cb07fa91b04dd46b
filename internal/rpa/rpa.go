// Package rpa simulates the provider portal interactions a production
// deployment would drive through browser automation. The simulated portal
// accepts every submission and issues deterministic references, which keeps
// the rest of the workflow exercisable without provider credentials.
package rpa

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
)

// Action identifies a portal interaction.
type Action string

const (
	ActionSubmitLOA         Action = "submit_loa"
	ActionCheckStatus       Action = "check_status"
	ActionDownloadDocuments Action = "download_documents"
)

// Result describes the outcome of a portal interaction.
type Result struct {
	Action      Action    `json:"action"`
	CaseID      string    `json:"case_id"`
	Provider    string    `json:"provider"`
	Success     bool      `json:"success"`
	Reference   string    `json:"reference"`
	Detail      string    `json:"detail"`
	CompletedAt time.Time `json:"completed_at"`
}

// System performs provider portal interactions for a case.
type System interface {
	// SubmitLOA submits the signed letter of authority through the
	// provider portal and, on success, advances the case to submitted.
	SubmitLOA(ctx context.Context, c cases.Case) (*Result, error)

	// CheckStatus queries the portal for the current processing status.
	CheckStatus(ctx context.Context, c cases.Case) (*Result, error)

	// DownloadDocuments retrieves any documents the provider has made
	// available for the case.
	DownloadDocuments(ctx context.Context, c cases.Case) (*Result, error)
}

type portal struct {
	cases  cases.System
	logger *slog.Logger
}

// New creates a System backed by the simulated portal.
func New(caseSys cases.System, logger *slog.Logger) System {
	return &portal{
		cases:  caseSys,
		logger: logger.With("system", "rpa"),
	}
}

func reference(prefix string) string {
	return fmt.Sprintf("%s-%.8s", prefix, uuid.New().String())
}

func (p *portal) SubmitLOA(ctx context.Context, c cases.Case) (*Result, error) {
	ref := reference("LOA")

	p.logger.Info("submitting letter of authority",
		"case_id", c.ID,
		"provider", c.ProviderName,
		"reference", ref,
	)

	if _, err := p.cases.MarkSubmitted(ctx, c.ID, ref); err != nil {
		return nil, fmt.Errorf("record submission for case %s: %w", c.ID, err)
	}

	return &Result{
		Action:      ActionSubmitLOA,
		CaseID:      c.ID,
		Provider:    c.ProviderName,
		Success:     true,
		Reference:   ref,
		Detail:      fmt.Sprintf("letter of authority submitted to %s", c.ProviderName),
		CompletedAt: time.Now().UTC(),
	}, nil
}

func (p *portal) CheckStatus(ctx context.Context, c cases.Case) (*Result, error) {
	p.logger.Info("checking provider status",
		"case_id", c.ID,
		"provider", c.ProviderName,
		"days_in_state", c.DaysInState,
	)

	return &Result{
		Action:      ActionCheckStatus,
		CaseID:      c.ID,
		Provider:    c.ProviderName,
		Success:     true,
		Reference:   reference("CHK"),
		Detail:      fmt.Sprintf("%s reports the request as %s", c.ProviderName, c.State.Label()),
		CompletedAt: time.Now().UTC(),
	}, nil
}

func (p *portal) DownloadDocuments(ctx context.Context, c cases.Case) (*Result, error) {
	p.logger.Info("downloading provider documents",
		"case_id", c.ID,
		"provider", c.ProviderName,
	)

	return &Result{
		Action:      ActionDownloadDocuments,
		CaseID:      c.ID,
		Provider:    c.ProviderName,
		Success:     true,
		Reference:   reference("DOC"),
		Detail:      fmt.Sprintf("no new documents available from %s", c.ProviderName),
		CompletedAt: time.Now().UTC(),
	}, nil
}
