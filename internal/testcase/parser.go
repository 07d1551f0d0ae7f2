// Package testcase parses multi-section test-case documents and assembles
// generated script output per section.
package testcase

import (
	"regexp"
	"strings"
)

// Section names a test-case document section.
type Section string

const (
	SectionSummary        Section = "Summary"
	SectionPrecondition   Section = "Precondition"
	SectionSteps          Section = "Steps"
	SectionExpectedResult Section = "Expected Result"
)

// Sections lists the recognized sections in document order.
var Sections = []Section{SectionSummary, SectionPrecondition, SectionSteps, SectionExpectedResult}

// Document is a parsed test case: one phrase list per section.
type Document struct {
	Summary        []string `json:"summary,omitempty"`
	Precondition   []string `json:"precondition,omitempty"`
	Steps          []string `json:"steps,omitempty"`
	ExpectedResult []string `json:"expected_result,omitempty"`
}

// Phrases returns the phrase list for a section.
func (d *Document) Phrases(s Section) []string {
	switch s {
	case SectionSummary:
		return d.Summary
	case SectionPrecondition:
		return d.Precondition
	case SectionSteps:
		return d.Steps
	case SectionExpectedResult:
		return d.ExpectedResult
	}
	return nil
}

// Empty reports whether no section carries any phrases.
func (d *Document) Empty() bool {
	return len(d.Summary)+len(d.Precondition)+len(d.Steps)+len(d.ExpectedResult) == 0
}

var (
	sectionHeaderRe = regexp.MustCompile(`(?i)^\s*(summary|precondition|pre-condition|steps?|expected\s*results?)\s*[:：]?\s*(.*)$`)
	numberedItemRe  = regexp.MustCompile(`^\s*\d+\s*[.)]\s*`)
	bulletRe        = regexp.MustCompile(`^\s*[-*•]\s*`)
)

// Parse splits a raw test-case document into sections. Section headers are
// matched case-insensitively with or without a trailing colon; content may
// follow the header on the same line. Numbered items and bullets are split
// into individual phrases with their markers stripped. Text before any
// header lands in Steps, so a bare list of phrases still parses usefully.
func Parse(text string) Document {
	var doc Document
	current := SectionSteps

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := sectionHeaderRe.FindStringSubmatch(trimmed); m != nil {
			current = canonicalSection(m[1])
			if rest := strings.TrimSpace(m[2]); rest != "" {
				appendPhrase(&doc, current, rest)
			}
			continue
		}

		appendPhrase(&doc, current, trimmed)
	}
	return doc
}

func canonicalSection(header string) Section {
	switch strings.ToLower(strings.Join(strings.Fields(header), "")) {
	case "summary":
		return SectionSummary
	case "precondition", "pre-condition":
		return SectionPrecondition
	case "expectedresult", "expectedresults":
		return SectionExpectedResult
	default:
		return SectionSteps
	}
}

func appendPhrase(doc *Document, s Section, line string) {
	phrase := numberedItemRe.ReplaceAllString(line, "")
	phrase = bulletRe.ReplaceAllString(phrase, "")
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return
	}

	switch s {
	case SectionSummary:
		doc.Summary = append(doc.Summary, phrase)
	case SectionPrecondition:
		doc.Precondition = append(doc.Precondition, phrase)
	case SectionExpectedResult:
		doc.ExpectedResult = append(doc.ExpectedResult, phrase)
	default:
		doc.Steps = append(doc.Steps, phrase)
	}
}
