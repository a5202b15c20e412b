package normalize

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"specialist-router/pkg/log"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantShape Shape
		wantText  string
	}{
		{
			name:      "nested output list",
			body:      `{"output":{"message":{"content":[{"text":"nested hello"}]}}}`,
			wantShape: ShapeNestedOutput,
			wantText:  "nested hello",
		},
		{
			name:      "nested output string content",
			body:      `{"output":{"message":{"content":"plain nested"}}}`,
			wantShape: ShapeNestedOutput,
			wantText:  "plain nested",
		},
		{
			name:      "flat output text",
			body:      `{"outputText":"flat hello"}`,
			wantShape: ShapeFlatOutputText,
			wantText:  "flat hello",
		},
		{
			name:      "response field",
			body:      `{"response":"backend hello","citations":[1,2]}`,
			wantShape: ShapeResponseField,
			wantText:  "backend hello",
		},
		{
			name:      "nested wins over flat",
			body:      `{"output":{"message":{"content":[{"text":"first"}]}},"outputText":"second"}`,
			wantShape: ShapeNestedOutput,
			wantText:  "first",
		},
		{
			name:      "empty content list falls through",
			body:      `{"output":{"message":{"content":[]}},"outputText":"fallback"}`,
			wantShape: ShapeFlatOutputText,
			wantText:  "fallback",
		},
		{name: "unknown keys", body: `{"answer":"nope"}`, wantShape: ShapeUnknown},
		{name: "wrong types", body: `{"output":{"message":{"content":[42]}}}`, wantShape: ShapeUnknown},
		{name: "blank response", body: `{"response":"   "}`, wantShape: ShapeUnknown},
		{name: "array body", body: `[1,2,3]`, wantShape: ShapeUnknown},
		{name: "not json", body: `<html>502</html>`, wantShape: ShapeUnknown},
		{name: "null", body: `null`, wantShape: ShapeUnknown},
		{name: "empty", body: ``, wantShape: ShapeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse([]byte(tt.body))
			if p.Shape != tt.wantShape {
				t.Fatalf("shape = %s, want %s", p.Shape, tt.wantShape)
			}
			if p.Text != tt.wantText {
				t.Errorf("text = %q, want %q", p.Text, tt.wantText)
			}
		})
	}
}

func TestParseKeepsExtraFields(t *testing.T) {
	p := Parse([]byte(`{"response":"hi","sources":["a.pdf"],"confidence":0.9}`))

	want := map[string]any{"sources": []any{"a.pdf"}, "confidence": 0.9}
	if diff := cmp.Diff(want, p.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestTextUnknownShapeReturnsClarification(t *testing.T) {
	n := New(log.NewNop())

	text, p := n.Text(context.Background(), []byte(`{"weird":{"deep":true}}`))
	if text != ClarificationText {
		t.Errorf("text = %q, want clarification", text)
	}
	if diff := cmp.Diff([]string{"weird"}, p.Keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMapNilNeverPanics(t *testing.T) {
	p := ParseMap(nil)
	if p.Known() {
		t.Errorf("nil body should be unknown, got %s", p.Shape)
	}
}
