package normalize

import "strings"

type extractor struct {
	shape   Shape
	extract func(body map[string]any) (string, bool)
}

// extractors are tried in priority order.
var extractors = []extractor{
	{ShapeNestedOutput, extractNestedOutput},
	{ShapeFlatOutputText, extractFlatOutputText},
	{ShapeResponseField, extractResponseField},
}

func extractNestedOutput(body map[string]any) (string, bool) {
	output, ok := body["output"].(map[string]any)
	if !ok {
		return "", false
	}
	message, ok := output["message"].(map[string]any)
	if !ok {
		return "", false
	}

	switch content := message["content"].(type) {
	case string:
		return nonEmpty(content)
	case []any:
		if len(content) == 0 {
			return "", false
		}
		first, ok := content[0].(map[string]any)
		if !ok {
			return "", false
		}
		text, ok := first["text"].(string)
		if !ok {
			return "", false
		}
		return nonEmpty(text)
	}
	return "", false
}

func extractFlatOutputText(body map[string]any) (string, bool) {
	text, ok := body["outputText"].(string)
	if !ok {
		return "", false
	}
	return nonEmpty(text)
}

func extractResponseField(body map[string]any) (string, bool) {
	text, ok := body["response"].(string)
	if !ok {
		return "", false
	}
	return nonEmpty(text)
}

func nonEmpty(s string) (string, bool) {
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
