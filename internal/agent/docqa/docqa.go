package docqa

import (
	"strings"
)

// Analyze detects the sub-intent and filename and rewrites the message.
func Analyze(message string) Analysis {
	intent := Detect(message)
	return Analysis{
		SubIntent: intent,
		Filename:  ExtractFilename(message),
		Message:   Rewrite(message, intent),
	}
}

// Detect returns the first matching sub-intent, or SubIntentNone.
func Detect(message string) SubIntent {
	for _, d := range detectors {
		if d.pattern.MatchString(message) {
			return d.intent
		}
	}
	return SubIntentNone
}

// Rewrite appends the instruction block for intent. Without a sub-intent the
// message is returned unchanged.
func Rewrite(message string, intent SubIntent) string {
	instr, ok := instructions[intent]
	if !ok {
		return message
	}
	return message + "\n\n[Instructions]\n" + instr + "\n" + answerFormat
}

// RefinementPrompt builds the single follow-up question sent when a recipient
// answer named an organisation.
func RefinementPrompt(message string) string {
	return message + "\n\n[Instructions]\n" + refinementInstruction + "\n" + answerFormat
}

// NeedsRefinement reports whether a first answer warrants the follow-up call.
func NeedsRefinement(intent SubIntent, answer string) bool {
	return intent == SubIntentRecipient && LooksLikeOrganization(answer)
}

// LooksLikeOrganization flags legal-entity suffixes or an all-caps word of four or more letters.
func LooksLikeOrganization(answer string) bool {
	padded := " " + strings.ToLower(answer) + " "
	for _, h := range organisationHint {
		if strings.Contains(padded, h) {
			return true
		}
	}
	return allCapsToken.MatchString(answer)
}

// ExtractFilename returns the longest document-like token in message.
func ExtractFilename(message string) string {
	best := ""
	for _, tok := range strings.Fields(message) {
		tok = strings.Trim(tok, "\"'`<>[]{},;:!?")
		tok = strings.TrimRight(tok, ".")
		if filenamePattern.MatchString(tok) && len(tok) > len(best) {
			best = tok
		}
	}
	return best
}
