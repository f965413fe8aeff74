package translate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agritech/cropscan-api/internal/catalog"
)

// Translation is the typed result of parsing a model's translation reply.
// Fields the model omitted stay empty and fall back to the base language.
type Translation struct {
	Cause      string `json:"cause"`
	Treatment  string `json:"treatment"`
	Prevention string `json:"prevention"`
	Fertilizer string `json:"fertilizer"`
}

// Parse extracts a Translation from the model's free-text reply. Models often
// wrap JSON in a fenced code block; any such fencing is stripped first.
func Parse(raw string) (Translation, error) {
	var tr Translation
	if err := json.Unmarshal([]byte(stripFences(raw)), &tr); err != nil {
		return Translation{}, fmt.Errorf("translation reply is not valid JSON: %w", err)
	}
	return tr, nil
}

// Apply merges the translation over the base record, keeping base text for
// every field the model left empty.
func (t Translation) Apply(base catalog.Record) catalog.Record {
	out := base
	if t.Cause != "" {
		out.Cause = t.Cause
	}
	if t.Treatment != "" {
		out.Treatment = t.Treatment
	}
	if t.Prevention != "" {
		out.Prevention = t.Prevention
	}
	if t.Fertilizer != "" {
		out.Fertilizer = t.Fertilizer
	}
	return out
}

// stripFences removes markdown code fences around a JSON payload.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") && strings.HasSuffix(text, "```") {
		return strings.TrimSpace(text[7 : len(text)-3])
	}
	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		return strings.TrimSpace(text[3 : len(text)-3])
	}
	return text
}
