package docqa

import (
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		message string
		want    SubIntent
	}{
		{"Who is this document for?", SubIntentRecipient},
		{"who is the letter addressed to", SubIntentRecipient},
		{"Who created this report?", SubIntentIssuer},
		{"Who issued the invoice and when?", SubIntentIssuer},
		{"Who signed the service agreement?", SubIntentSignatory},
		{"When does the plan expire?", SubIntentDate},
		{"What is the date on this letter?", SubIntentDate},
		{"Summarise the key points", SubIntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := Detect(tt.message); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestRewriteWithoutSubIntentIsIdentity(t *testing.T) {
	messages := []string{
		"Summarise the key points",
		"",
		"List every medication in the discharge summary.",
	}
	for _, m := range messages {
		a := Analyze(m)
		if a.Message != m {
			t.Errorf("Analyze(%q).Message = %q, want input unchanged", m, a.Message)
		}
		if a.SubIntent != SubIntentNone {
			t.Errorf("Analyze(%q).SubIntent = %q, want none", m, a.SubIntent)
		}
	}
}

func TestRewriteRecipientKeepsOriginal(t *testing.T) {
	msg := "Who is this document for?"
	a := Analyze(msg)

	if a.SubIntent != SubIntentRecipient {
		t.Fatalf("SubIntent = %q, want recipient", a.SubIntent)
	}
	if !strings.HasPrefix(a.Message, msg) {
		t.Errorf("rewritten message lost the original: %q", a.Message)
	}
	for _, want := range []string{"PERSON", "Participant", "Client", "Evidence"} {
		if !strings.Contains(a.Message, want) {
			t.Errorf("rewritten message missing %q", want)
		}
	}
}

func TestLooksLikeOrganization(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"Acme Pty Ltd", true},
		{"Bright Futures Company", true},
		{"Issued to HEALTHCO", true},
		{"Proprietary Holdings", true},
		{"Jane Citizen", false},
		{"Dr. Ann Lee", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikeOrganization(tt.answer); got != tt.want {
			t.Errorf("LooksLikeOrganization(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestNeedsRefinement(t *testing.T) {
	if !NeedsRefinement(SubIntentRecipient, "Answer: Sunrise Care Pty Ltd") {
		t.Error("expected refinement for organisation answer to a recipient question")
	}
	if NeedsRefinement(SubIntentIssuer, "Sunrise Care Pty Ltd") {
		t.Error("issuer questions should never be refined")
	}
	if NeedsRefinement(SubIntentRecipient, "Jane Citizen") {
		t.Error("person answer should not be refined")
	}
}

func TestExtractFilename(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"Who signed service_agreement_2024.pdf?", "service_agreement_2024.pdf"},
		{"compare a.pdf with quarterly-report-final.docx please", "quarterly-report-final.docx"},
		{"what does \"scan.JPG\" show", "scan.JPG"},
		{"no files here", ""},
		{"the pdf is attached", ""},
	}

	for _, tt := range tests {
		if got := ExtractFilename(tt.message); got != tt.want {
			t.Errorf("ExtractFilename(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}
