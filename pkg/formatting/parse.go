// Package formatting parses structured data from language model output.
package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrParseFailed is returned when content cannot be parsed as the target type.
var ErrParseFailed = errors.New("failed to parse content")

// Parse extracts a value of type T from model output. The content is first
// parsed as raw JSON; if that fails, a fenced ```json block is extracted and
// parsed instead.
func Parse[T any](content string) (T, error) {
	var result T

	trimmed := strings.TrimSpace(content)
	if err := json.Unmarshal([]byte(trimmed), &result); err == nil {
		return result, nil
	}

	fenced, err := extractFenced(trimmed)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	if err := json.Unmarshal([]byte(fenced), &result); err != nil {
		return result, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	return result, nil
}

func extractFenced(content string) (string, error) {
	start := strings.Index(content, "```")
	if start == -1 {
		return "", errors.New("no fenced block found")
	}

	rest := content[start+3:]
	if nl := strings.Index(rest, "\n"); nl != -1 {
		lang := strings.TrimSpace(rest[:nl])
		if lang == "" || lang == "json" {
			rest = rest[nl+1:]
		}
	}

	end := strings.Index(rest, "```")
	if end == -1 {
		return "", errors.New("unterminated fenced block")
	}

	return strings.TrimSpace(rest[:end]), nil
}
