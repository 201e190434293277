package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEvidence(t *testing.T) {
	text := "Contact jane.doe@example.com or +1 555-123-4567. " +
		"Server 192.168.1.10 logged https://example.com/report?id=4 " +
		"charging $1,200.50 on 12/05/2024 and Jan 3, 2025."

	evidence := ExtractEvidence(text)

	assert.Contains(t, evidence.Emails, "jane.doe@example.com")
	assert.Len(t, evidence.Phones, 1)
	assert.Contains(t, evidence.IPs, "192.168.1.10")
	assert.Contains(t, evidence.URLs, "https://example.com/report?id=4")
	assert.Len(t, evidence.Money, 1)
	assert.Len(t, evidence.Dates, 2)
}

func TestExtractEvidenceEmptyTextYieldsEmptySlices(t *testing.T) {
	evidence := ExtractEvidence("nothing to see here")

	assert.NotNil(t, evidence.Emails)
	assert.Empty(t, evidence.Emails)
	assert.NotNil(t, evidence.Phones)
	assert.NotNil(t, evidence.URLs)
	assert.NotNil(t, evidence.Dates)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		label      string
		confidence float64
	}{
		{"fraud keyword", "please verify your bank account", "Fraud", 0.6},
		{"harassment keyword", "i will hurt you", "Harassment", 0.7},
		{"malware keyword", "the trojan opened a backdoor", "Malware", 0.8},
		{"fraud wins over malware", "transfer the ransom payment", "Fraud", 0.6},
		{"normal", "see you at the meeting tomorrow", "Normal", 0.6},
		{"case insensitive", "VERIFY the PAYMENT", "Fraud", 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			assert.Equal(t, tt.label, got.Label)
			assert.Equal(t, tt.confidence, got.Confidence)
		})
	}
}

func TestAnalyzeTextPriorityScore(t *testing.T) {
	report := AnalyzeText("mail a@b.com and c@d.com, wire $500")

	assert.Equal(t, 3, report.PriorityScore)
	assert.Equal(t, "Found 0 named entities and 3 high-value hits", report.Summary)
	assert.NotNil(t, report.Evidence.Entities)
	assert.Empty(t, report.Evidence.Entities.Person)
}

func TestAnalyzeFile(t *testing.T) {
	content := []byte("line one a@b.com\nline two $40\nline three")

	report := AnalyzeFile("notes.txt", content)

	assert.Equal(t, "notes.txt", report.FileInfo.Filename)
	assert.Equal(t, len(content), report.FileInfo.Size)
	assert.Equal(t, 3, report.FileInfo.Lines)
	assert.Equal(t, 8, report.FileInfo.Words)
	assert.Equal(t, "File contains 3 lines, 8 words, and 2 potential sensitive items", report.Summary)
	assert.Nil(t, report.Evidence.Entities)
}
