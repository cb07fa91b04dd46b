package rpa_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/rpa"
)

type fakeCases struct {
	cases.System
	submitted  []string
	references []string
	submitErr  error
}

func (f *fakeCases) MarkSubmitted(_ context.Context, id, reference string) (*cases.Case, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, id)
	f.references = append(f.references, reference)
	return &cases.Case{ID: id, State: cases.StateSubmittedToProvider, ReferenceNumber: &reference}, nil
}

func TestSubmitLOA(t *testing.T) {
	caseSys := &fakeCases{}
	portal := rpa.New(caseSys, slog.Default())

	result, err := portal.SubmitLOA(context.Background(), cases.Case{
		ID:           "case-1",
		ProviderName: "Aviva",
		State:        cases.StateSignedReadyForProvider,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success {
		t.Error("expected a successful submission")
	}
	if result.Action != rpa.ActionSubmitLOA {
		t.Errorf("action: got %s", result.Action)
	}
	if !strings.HasPrefix(result.Reference, "LOA-") {
		t.Errorf("reference: got %s, want LOA- prefix", result.Reference)
	}
	if len(caseSys.submitted) != 1 || caseSys.submitted[0] != "case-1" {
		t.Errorf("submission not recorded against the case: %v", caseSys.submitted)
	}
	if len(caseSys.references) != 1 || caseSys.references[0] != result.Reference {
		t.Errorf("portal reference not stored on the case: %v", caseSys.references)
	}
}

func TestSubmitLOASurfacesRecordingFailure(t *testing.T) {
	caseSys := &fakeCases{submitErr: errors.New("db down")}
	portal := rpa.New(caseSys, slog.Default())

	if _, err := portal.SubmitLOA(context.Background(), cases.Case{ID: "case-1"}); err == nil {
		t.Fatal("expected the recording failure to surface")
	}
}

func TestCheckStatus(t *testing.T) {
	portal := rpa.New(&fakeCases{}, slog.Default())

	result, err := portal.CheckStatus(context.Background(), cases.Case{
		ID:           "case-1",
		ProviderName: "Scottish Widows",
		State:        cases.StateWithProviderProcessing,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(result.Reference, "CHK-") {
		t.Errorf("reference: got %s, want CHK- prefix", result.Reference)
	}
	if !strings.Contains(result.Detail, "Scottish Widows") {
		t.Errorf("detail should name the provider: %s", result.Detail)
	}
}

func TestDownloadDocuments(t *testing.T) {
	portal := rpa.New(&fakeCases{}, slog.Default())

	result, err := portal.DownloadDocuments(context.Background(), cases.Case{
		ID:           "case-1",
		ProviderName: "Aegon",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Action != rpa.ActionDownloadDocuments {
		t.Errorf("action: got %s", result.Action)
	}
	if !strings.HasPrefix(result.Reference, "DOC-") {
		t.Errorf("reference: got %s, want DOC- prefix", result.Reference)
	}
}
