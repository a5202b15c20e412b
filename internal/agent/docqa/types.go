package docqa

// SubIntent is the kind of entity a document question asks for.
type SubIntent string

const (
	SubIntentNone      SubIntent = ""
	SubIntentRecipient SubIntent = "recipient"
	SubIntentIssuer    SubIntent = "issuer"
	SubIntentSignatory SubIntent = "signatory"
	SubIntentDate      SubIntent = "date"
)

// Analysis is the rewriter's view of one document question.
type Analysis struct {
	SubIntent SubIntent
	Filename  string // best-effort, empty when none found
	Message   string // original message plus instructions, or the original when no sub-intent
}
