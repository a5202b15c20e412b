package docqa

import "regexp"

// EvidenceMaxChars bounds the evidence snippet requested from the document specialist.
const EvidenceMaxChars = 100

// detectors run in order; the first match wins.
var detectors = []struct {
	intent  SubIntent
	pattern *regexp.Regexp
}{
	{SubIntentRecipient, regexp.MustCompile(`(?i)\bwho\b.*\b(is|was|are)\b.*\bfor\b|\baddressed to\b|\bintended for\b|\brecipient\b`)},
	{SubIntentIssuer, regexp.MustCompile(`(?i)\bwho\b.*\b(issued|created|made|authored|wrote|prepared)\b|\bissuer\b|\bauthor\b`)},
	{SubIntentSignatory, regexp.MustCompile(`(?i)\bwho\b.*\bsigned\b|\bsignator(y|ies)\b`)},
	{SubIntentDate, regexp.MustCompile(`(?i)\bwhen\b|\bwhat\s+(is\s+the\s+)?date\b|\bdated\b`)},
}

var instructions = map[SubIntent]string{
	SubIntentRecipient: `Return the PERSON this document is for (the recipient), not an organisation.
Look in fields labelled "Participant", "Client", "Patient", "Recipient", "To" or the salutation line.`,
	SubIntentIssuer: `Return the person or organisation that issued or authored this document.
Look in the letterhead, "From", "Prepared by" or "Issued by" fields.`,
	SubIntentSignatory: `Return the person who signed this document.
Look in the signature block, "Signed by" or "Authorised by" fields.`,
	SubIntentDate: `Return the date the document was issued or signed.
Look in "Date", "Dated", "Issued on" fields or near the signature block.`,
}

const answerFormat = `Answer format:
Answer: <the value only>
Evidence: <a quote from the document of at most 100 characters>`

const refinementInstruction = `Your previous answer named an organisation. Return only the name of an individual PERSON
the document is for (for example the participant, client or patient). If no individual person
is named in the document, answer exactly "Unknown".`

var (
	filenamePattern  = regexp.MustCompile(`(?i)^[\w\-.()]+\.(pdf|docx?|txt|rtf|png|jpe?g|tiff?)$`)
	allCapsToken     = regexp.MustCompile(`\b[A-Z]{4,}\b`)
	organisationHint = []string{" pty ", " ltd", " inc", " llc", " company", "proprietary"}
)
