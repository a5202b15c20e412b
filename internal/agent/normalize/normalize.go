package normalize

import (
	"context"
	"encoding/json"
	"sort"

	"specialist-router/pkg/log"
)

// Parse decodes body and tags it with the first matching shape. It never panics.
func Parse(body []byte) (p Payload) {
	defer func() {
		if recover() != nil {
			p = Payload{Shape: ShapeUnknown}
		}
	}()

	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return Payload{Shape: ShapeUnknown}
	}
	return ParseMap(m)
}

// ParseMap tags an already-decoded body. It never panics.
func ParseMap(body map[string]any) (p Payload) {
	defer func() {
		if recover() != nil {
			p = Payload{Shape: ShapeUnknown}
		}
	}()

	for _, e := range extractors {
		text, ok := e.extract(body)
		if !ok {
			continue
		}
		p = Payload{Shape: e.shape, Text: text}
		if e.shape == ShapeResponseField {
			p.Fields = extraFields(body)
		}
		return p
	}

	return Payload{Shape: ShapeUnknown, Keys: keysOf(body)}
}

// Normalizer turns backend payloads into reply text.
type Normalizer struct {
	l log.Logger
}

// New creates a Normalizer.
func New(l log.Logger) *Normalizer {
	return &Normalizer{l: l}
}

// Text returns the reply text of body, or ClarificationText when no shape matches.
func (n *Normalizer) Text(ctx context.Context, body []byte) (string, Payload) {
	p := Parse(body)
	if !p.Known() {
		n.l.Warn(ctx, "internal.agent.normalize.Text: unexpected payload shape", "keys", p.Keys, "size", len(body))
		return ClarificationText, p
	}
	return p.Text, p
}

func extraFields(body map[string]any) map[string]any {
	out := make(map[string]any, len(body))
	for k, v := range body {
		if k == "response" {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func keysOf(body map[string]any) []string {
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
