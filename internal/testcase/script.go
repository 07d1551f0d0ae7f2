package testcase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/kmapd/internal/groovy"
	"github.com/fyrsmithlabs/kmapd/internal/resolver"
)

// sectionRules restricts which actions may appear in each section.
// An empty allowed list admits everything not forbidden. Summary has no
// restrictions.
var sectionRules = map[Section]struct {
	allowed   []string
	forbidden []string
}{
	SectionPrecondition: {
		allowed: []string{
			"Verify Element Present", "Verify Element Visible", "Verify Element Not Visible",
			"Verify Element Clickable", "Verify Element Not Clickable", "Get Text",
			"Get Attribute", "Navigate To Url", "Wait For Element Present",
			"Verify Element Not Present",
		},
		forbidden: []string{"Click", "Set Text", "Upload File", "Submit", "Drag And Drop"},
	},
	SectionSteps: {
		allowed: []string{
			"Click", "Set Text", "Drag And Drop", "Upload File", "Select Option By Label",
			"Check", "Mouse Over", "Scroll To Element", "Navigate To Url", "Submit",
			"Clear Text", "Double Click", "Right Click", "Set Encrypted Text",
			"Refresh", "Back", "Forward", "Delay",
		},
		forbidden: []string{"Verify Element Present", "Verify Element Visible", "Get Text"},
	},
	SectionExpectedResult: {
		allowed: []string{
			"Verify Element Present", "Verify Element Not Present", "Verify Element Visible",
			"Verify Element Not Visible", "Verify Element Text", "Verify Element Attribute Value",
			"Get Text", "Get Attribute", "Verify Element Clickable", "Verify Element Not Clickable",
			"Verify Element Checked", "Verify Element Not Checked", "Verify Upload Not Present",
			"Verify Text Not Present",
		},
		forbidden: []string{"Click", "Set Text", "Upload File", "Drag And Drop", "Submit"},
	},
}

// actionAllowed applies the per-section filter. Unknown sections admit
// everything.
func actionAllowed(action string, s Section) bool {
	rules, ok := sectionRules[s]
	if !ok {
		return true
	}
	for _, f := range rules.forbidden {
		if f == action {
			return false
		}
	}
	if len(rules.allowed) == 0 {
		return true
	}
	for _, a := range rules.allowed {
		if a == action {
			return true
		}
	}
	return false
}

// Generator turns parsed documents into Groovy script text.
type Generator struct {
	resolver *resolver.Resolver
	renderer *groovy.Renderer
	logger   *zap.Logger
}

// NewGenerator builds a Generator. Logger may be nil.
func NewGenerator(r *resolver.Resolver, renderer *groovy.Renderer, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{resolver: r, renderer: renderer, logger: logger}
}

// GenerateSection resolves each phrase of one section and emits a
// commented script block. Unmapped phrases and phrases whose action the
// section filter rejects produce TODO placeholders instead of failing.
// Repeated actions within the section are rendered once and then noted as
// duplicates.
func (g *Generator) GenerateSection(ctx context.Context, s Section, phrases []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// === %s Scripts ===\n", s)

	if len(phrases) == 0 {
		fmt.Fprintf(&b, "// No content found for %s\n\n", s)
		return b.String()
	}

	emitted := make(map[string]bool)
	for i, phrase := range phrases {
		fmt.Fprintf(&b, "// %s %d: %s\n", s, i+1, phrase)

		res := g.resolver.Resolve(ctx, phrase)
		switch {
		case !res.Found:
			b.WriteString(groovy.Placeholder(phrase) + "\n")
		case !actionAllowed(res.Action, s):
			g.logger.Debug("action excluded by section filter",
				zap.String("phrase", phrase),
				zap.String("action", res.Action),
				zap.String("section", string(s)),
			)
			fmt.Fprintf(&b, "// (%s는 %s 섹션에서 제외됨)\n", res.Action, s)
		case emitted[res.Action]:
			fmt.Fprintf(&b, "// (중복 액션 생략: %s)\n", res.Action)
		default:
			emitted[res.Action] = true
			b.WriteString(g.scriptFor(res, phrase) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (g *Generator) scriptFor(res resolver.Resolution, phrase string) string {
	if res.Script != "" {
		return res.Script
	}
	if script, ok := g.renderer.Render(res.Action, phrase); ok {
		return script
	}
	return groovy.Placeholder(phrase)
}

// GenerateIntegrated assembles all four sections into a single runnable
// test method wrapped in try/catch/finally.
func (g *Generator) GenerateIntegrated(ctx context.Context, doc Document) string {
	var body strings.Builder
	for _, s := range Sections {
		body.WriteString(indent(g.GenerateSection(ctx, s, doc.Phrases(s))))
	}

	var b strings.Builder
	b.WriteString("// ========================================\n")
	b.WriteString("// Katalon Mapping Script Generated\n")
	fmt.Fprintf(&b, "// Generated at: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString("// ========================================\n\n")
	b.WriteString("@Test\ndef testCase() {\n    try {\n")
	b.WriteString(body.String())
	b.WriteString("\n    } catch (Exception e) {\n")
	b.WriteString("        WebUI.comment(\"Test failed: \" + e.getMessage())\n")
	b.WriteString("        throw e\n")
	b.WriteString("    } finally {\n")
	b.WriteString("        WebUI.closeBrowser()\n")
	b.WriteString("    }\n}\n")
	return b.String()
}

func indent(script string) string {
	lines := strings.Split(script, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = "        " + line
		}
	}
	return strings.Join(lines, "\n")
}

// Report summarizes mapping coverage for a document.
type Report struct {
	TotalPhrases    int                 `json:"total_phrases"`
	Mapped          int                 `json:"mapped"`
	Unmapped        int                 `json:"unmapped"`
	MappingRate     float64             `json:"mapping_rate"`
	UnmappedPhrases []string            `json:"unmapped_phrases,omitempty"`
	BySection       map[Section]int     `json:"by_section"`
	Suggestions     map[string][]string `json:"suggestions,omitempty"`
}

// Analyze resolves every phrase in the document without generating script
// and reports coverage, listing unmapped phrases with their top suggested
// keywords.
func (g *Generator) Analyze(ctx context.Context, doc Document) Report {
	report := Report{
		BySection:   make(map[Section]int),
		Suggestions: make(map[string][]string),
	}

	for _, s := range Sections {
		phrases := doc.Phrases(s)
		report.BySection[s] = len(phrases)
		for _, phrase := range phrases {
			report.TotalPhrases++
			res := g.resolver.Resolve(ctx, phrase)
			if res.Found {
				report.Mapped++
				continue
			}
			report.Unmapped++
			report.UnmappedPhrases = append(report.UnmappedPhrases, phrase)
			for _, sug := range res.Suggestions {
				report.Suggestions[phrase] = append(report.Suggestions[phrase], sug.Keyword)
			}
			if len(res.Suggestions) == 0 {
				// Fall back to the phrase's own candidate keywords so the
				// report still tells the author what to add to the table.
				if kws := ExtractKeywords(phrase); len(kws) > 0 {
					report.Suggestions[phrase] = kws
				}
			}
		}
	}

	if report.TotalPhrases > 0 {
		report.MappingRate = float64(report.Mapped) / float64(report.TotalPhrases)
	}
	return report
}
