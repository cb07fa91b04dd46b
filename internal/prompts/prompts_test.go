package prompts_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kgnguhan/agentic-chaser/internal/prompts"
)

type fakeSystem struct {
	prompts.System
	active map[prompts.Kind]*prompts.Prompt
}

func (f *fakeSystem) ActiveForKind(_ context.Context, kind prompts.Kind) (*prompts.Prompt, error) {
	return f.active[kind], nil
}

func TestParseKind(t *testing.T) {
	for _, kind := range prompts.Kinds() {
		parsed, err := prompts.ParseKind(string(kind))
		if err != nil {
			t.Errorf("ParseKind(%s): %v", kind, err)
		}
		if parsed != kind {
			t.Errorf("ParseKind(%s): got %s", kind, parsed)
		}
	}

	if _, err := prompts.ParseKind("marketing_blast"); !errors.Is(err, prompts.ErrInvalidKind) {
		t.Errorf("unknown kind: got %v, want ErrInvalidKind", err)
	}
	if _, err := prompts.ParseKind(""); !errors.Is(err, prompts.ErrInvalidKind) {
		t.Errorf("empty kind: got %v, want ErrInvalidKind", err)
	}
}

func TestKindUnmarshalRejectsUnknown(t *testing.T) {
	var kind prompts.Kind

	if err := json.Unmarshal([]byte(`"signature_request"`), &kind); err != nil {
		t.Fatalf("valid kind: %v", err)
	}
	if kind != prompts.KindSignatureRequest {
		t.Errorf("got %s", kind)
	}

	if err := json.Unmarshal([]byte(`"shouting"`), &kind); !errors.Is(err, prompts.ErrInvalidKind) {
		t.Errorf("unknown kind: got %v, want ErrInvalidKind", err)
	}
}

func TestInstructionsCoverEveryKind(t *testing.T) {
	for _, kind := range prompts.Kinds() {
		text, err := prompts.Instructions(kind)
		if err != nil {
			t.Errorf("Instructions(%s): %v", kind, err)
		}
		if strings.TrimSpace(text) == "" {
			t.Errorf("Instructions(%s): empty", kind)
		}
	}

	if _, err := prompts.Instructions("bogus"); !errors.Is(err, prompts.ErrInvalidKind) {
		t.Errorf("unknown kind: got %v, want ErrInvalidKind", err)
	}
}

func TestComposeUsesDefaults(t *testing.T) {
	text, err := prompts.Compose(context.Background(), &fakeSystem{}, prompts.KindStatusUpdate, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defaults, _ := prompts.Instructions(prompts.KindStatusUpdate)
	if text != defaults {
		t.Error("nil payload should compose the default instructions verbatim")
	}
}

func TestComposePrefersActiveOverride(t *testing.T) {
	sys := &fakeSystem{active: map[prompts.Kind]*prompts.Prompt{
		prompts.KindStatusUpdate: {Instructions: "Keep it to one sentence."},
	}}

	text, err := prompts.Compose(context.Background(), sys, prompts.KindStatusUpdate, map[string]any{
		"client_name": "Margaret Holloway",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(text, "Keep it to one sentence.") {
		t.Errorf("override not applied: %s", text)
	}
	if !strings.Contains(text, `"client_name": "Margaret Holloway"`) {
		t.Errorf("payload not rendered: %s", text)
	}
}

func TestComposeWithoutSystem(t *testing.T) {
	text, err := prompts.Compose(context.Background(), nil, prompts.KindInsight, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		t.Error("expected default instructions")
	}
}
