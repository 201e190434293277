// Package analysis provides regex based evidence extraction and a
// keyword triggered classifier for free-form text.
package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\-\s]{7,}\d`)
	ipPattern    = regexp.MustCompile(`\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b`)
	urlPattern   = regexp.MustCompile(`https?://[\w./\-_%?=&]+`)
	moneyPattern = regexp.MustCompile(`\$\s?\d[\d,]*(\.\d+)?|\d[\d,]*\s?(?:USD|INR|Rs\.?|₹)`)
	datePattern  = regexp.MustCompile(`\b(?:\d{1,2}[\-/]\d{1,2}[\-/]\d{2,4}|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{4})`)

	fraudPattern      = regexp.MustCompile(`\b(?:transfer|account|withdraw|payment|bank|credit card|password|verify)\b`)
	harassmentPattern = regexp.MustCompile(`\b(?:kill|hurt|threat|attack|harm)\b`)
	malwarePattern    = regexp.MustCompile(`\b(?:malware|c2|exploit|ransom|virus|trojan|backdoor)\b`)
)

// Entities holds named entities grouped by type. No recognizer is
// wired up, so the groups stay empty but keep their place in the
// response shape.
type Entities struct {
	Person []string `json:"PERSON"`
	Org    []string `json:"ORG"`
	GPE    []string `json:"GPE"`
}

// Evidence is the regex extracted material from a piece of text.
type Evidence struct {
	Emails   []string  `json:"emails"`
	Phones   []string  `json:"phones"`
	IPs      []string  `json:"ips"`
	URLs     []string  `json:"urls"`
	Money    []string  `json:"money"`
	Dates    []string  `json:"dates"`
	Entities *Entities `json:"entities,omitempty"`
}

// Classification labels text with a category and fixed confidence.
type Classification struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// TextReport is the response for text analysis.
type TextReport struct {
	Evidence       Evidence       `json:"evidence"`
	Classification Classification `json:"classification"`
	PriorityScore  int            `json:"priority_score"`
	Summary        string         `json:"summary"`
}

// FileInfo describes basic size metrics of an analyzed file.
type FileInfo struct {
	Filename   string `json:"filename"`
	Size       int    `json:"size"`
	Lines      int    `json:"lines"`
	Words      int    `json:"words"`
	Characters int    `json:"characters"`
}

// FileReport is the response for file analysis.
type FileReport struct {
	FileInfo FileInfo `json:"file_info"`
	Evidence Evidence `json:"evidence"`
	Summary  string   `json:"summary"`
}

func matchAll(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// ExtractEvidence pulls emails, phones, IPs, URLs, money amounts and
// date-like strings out of text.
func ExtractEvidence(text string) Evidence {
	return Evidence{
		Emails: matchAll(emailPattern, text),
		Phones: matchAll(phonePattern, text),
		IPs:    matchAll(ipPattern, text),
		URLs:   matchAll(urlPattern, text),
		Money:  matchAll(moneyPattern, text),
		Dates:  matchAll(datePattern, text),
	}
}

// Classify labels text by keyword category. Fraud keywords win over
// harassment, which win over malware; anything else is Normal.
func Classify(text string) Classification {
	lower := strings.ToLower(text)
	switch {
	case fraudPattern.MatchString(lower):
		return Classification{Label: "Fraud", Confidence: 0.6}
	case harassmentPattern.MatchString(lower):
		return Classification{Label: "Harassment", Confidence: 0.7}
	case malwarePattern.MatchString(lower):
		return Classification{Label: "Malware", Confidence: 0.8}
	default:
		return Classification{Label: "Normal", Confidence: 0.6}
	}
}

// AnalyzeText runs extraction and classification over text and scores
// it by the number of high-value hits.
func AnalyzeText(text string) TextReport {
	evidence := ExtractEvidence(text)
	evidence.Entities = &Entities{Person: []string{}, Org: []string{}, GPE: []string{}}

	priority := len(evidence.Emails) + len(evidence.Phones) + len(evidence.Money)
	entityCount := len(evidence.Entities.Person) + len(evidence.Entities.Org) + len(evidence.Entities.GPE)

	return TextReport{
		Evidence:       evidence,
		Classification: Classify(text),
		PriorityScore:  priority,
		Summary:        fmt.Sprintf("Found %d named entities and %d high-value hits", entityCount, priority),
	}
}

// AnalyzeFile runs extraction over a file's text content and reports
// basic size metrics alongside the evidence.
func AnalyzeFile(filename string, content []byte) FileReport {
	text := string(content)
	lines := len(strings.Split(text, "\n"))
	words := len(strings.Fields(text))

	evidence := ExtractEvidence(text)
	sensitive := len(evidence.Emails) + len(evidence.Phones) + len(evidence.Money)

	return FileReport{
		FileInfo: FileInfo{
			Filename:   filename,
			Size:       len(content),
			Lines:      lines,
			Words:      words,
			Characters: len(text),
		},
		Evidence: evidence,
		Summary:  fmt.Sprintf("File contains %d lines, %d words, and %d potential sensitive items", lines, words, sensitive),
	}
}
