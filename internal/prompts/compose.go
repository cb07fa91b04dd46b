package prompts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Compose builds the full prompt for a communication kind: the active
// override (or the hardcoded default) followed by the context payload
// rendered as JSON. A nil payload composes instructions only.
func Compose(ctx context.Context, sys System, kind Kind, payload any) (string, error) {
	text, err := Instructions(kind)
	if err != nil {
		return "", err
	}

	if sys != nil {
		override, err := sys.ActiveForKind(ctx, kind)
		if err != nil {
			return "", err
		}
		if override != nil {
			text = override.Instructions
		}
	}

	if payload == nil {
		return text, nil
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode prompt context: %w", err)
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\nContext:\n")
	b.Write(encoded)
	return b.String(), nil
}
