package normalize

// Shape is a recognised backend payload layout.
type Shape string

const (
	// ShapeNestedOutput is {"output": {"message": {"content": [{"text": ...}]}}}.
	ShapeNestedOutput Shape = "nested-output"
	// ShapeFlatOutputText is {"outputText": ...}.
	ShapeFlatOutputText Shape = "flat-output-text"
	// ShapeResponseField is the backend contract {"response": ..., ...extra}.
	ShapeResponseField Shape = "response-field"
	ShapeUnknown       Shape = "unknown"
)

// ClarificationText replaces any payload that cannot be read.
const ClarificationText = "I received a reply I couldn't read properly. Could you clarify or rephrase your question?"

// Payload is a decoded backend body tagged with its shape.
type Payload struct {
	Shape  Shape
	Text   string
	Fields map[string]any // extra top-level fields, response-field shape only
	Keys   []string       // top-level keys, kept for diagnosing unknown shapes
}

// Known reports whether the payload matched a recognised shape.
func (p Payload) Known() bool {
	return p.Shape != ShapeUnknown && p.Shape != ""
}
