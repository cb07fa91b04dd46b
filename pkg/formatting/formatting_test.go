package formatting_test

import (
	"errors"
	"testing"

	"github.com/kgnguhan/agentic-chaser/pkg/formatting"
)

type sample struct {
	Intent string `json:"intent"`
	Score  int    `json:"score"`
}

func TestParseRawJSON(t *testing.T) {
	got, err := formatting.Parse[sample](`{"intent": "asking_question", "score": 3}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != "asking_question" || got.Score != 3 {
		t.Errorf("got %+v", got)
	}
}

func TestParseSurroundingWhitespace(t *testing.T) {
	got, err := formatting.Parse[sample]("\n  {\"intent\": \"general\"}  \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != "general" {
		t.Errorf("got %+v", got)
	}
}

func TestParseFencedBlock(t *testing.T) {
	content := "Here is the extraction:\n```json\n{\"intent\": \"raising_concern\", \"score\": 8}\n```\nLet me know if you need more."

	got, err := formatting.Parse[sample](content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != "raising_concern" || got.Score != 8 {
		t.Errorf("got %+v", got)
	}
}

func TestParseBareFence(t *testing.T) {
	content := "```\n{\"intent\": \"general\"}\n```"

	got, err := formatting.Parse[sample](content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != "general" {
		t.Errorf("got %+v", got)
	}
}

func TestParseFailures(t *testing.T) {
	for _, content := range []string{
		"no json here at all",
		"```json\n{\"intent\": unterminated",
		"```json\nnot even json\n```",
	} {
		if _, err := formatting.Parse[sample](content); !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("%q: got %v, want ErrParseFailed", content, err)
		}
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"50MB", 50 << 20},
		{"1GB", 1 << 30},
		{"512kb", 512 << 10},
		{"100B", 100},
		{"1.5MB", int64(1.5 * float64(1<<20))},
		{"  2 MB ", 2 << 20},
		{"1024", 1024},
	}

	for _, tt := range tests {
		got, err := formatting.ParseBytes(tt.input)
		if err != nil {
			t.Errorf("ParseBytes(%q): %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseBytes(%q): got %d, want %d", tt.input, got, tt.expected)
		}
	}

	for _, input := range []string{"", "abc", "12XB"} {
		if _, err := formatting.ParseBytes(input); err == nil {
			t.Errorf("ParseBytes(%q): expected error", input)
		}
	}
}
