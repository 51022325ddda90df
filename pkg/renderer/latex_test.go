package renderer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tailorcv/tailorcv/pkg/career"
	"github.com/tailorcv/tailorcv/pkg/jd"
	"github.com/tailorcv/tailorcv/pkg/tailor"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"A&B", `A\&B`},
		{"100%", `100\%`},
		{"$5", `\$5`},
		{"C# and F#", `C\# and F\#`},
		{"snake_case", `snake\_case`},
		{"{braces}", `\{braces\}`},
		{"~", `\textasciitilde{}`},
		{"^", `\textasciicircum{}`},
		{"50% of $10M & more", `50\% of \$10M \& more`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			escaped := Escape(tt.input)
			if escaped != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, escaped)
			}
		})
	}
}

func TestLinkLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://www.linkedin.com/in/alex-carter/", "linkedin.com/in/alex-carter"},
		{"https://github.com/acarter", "github.com/acarter"},
		{"http://example.com/", "example.com"},
		{"example.com", "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			label := linkLabel(tt.input)
			if label != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, label)
			}
		})
	}
}

func testDocument() (doc tailor.Document) {
	doc = tailor.Document{
		Profile: career.Profile{
			Name:     "Alex Carter",
			Phone:    "+1 (555) 010-0000",
			Email:    "alex.carter@example.com",
			LinkedIn: "https://www.linkedin.com/in/alex-carter/",
			GitHub:   "https://github.com/acarter",
			Location: "Portland, OR",
		},
		Summary: "Senior engineer focused on 100% uptime",
		Experiences: []tailor.TailoredExperience{
			{
				Company:  "AT&T",
				Role:     "Staff Engineer",
				Duration: "2020 - Present",
				JobType:  "Remote",
				Bullets:  []string{"Cut costs by 50%", "Scaled the platform", "Led the migration"},
			},
		},
		Projects: []tailor.TailoredProject{
			{
				Name:      "Switchboard",
				TechStack: "Go | PostgreSQL",
				Bullets:   []string{"Built the core", "Shipped it"},
			},
		},
		Skills: tailor.Skills{
			Languages:  []string{"Go", "Python"},
			Frameworks: []string{"Fiber"},
		},
		Analysis: jd.Profile{RoleType: "backend"},
	}

	return doc
}

func TestRender(t *testing.T) {
	renderer := NewLaTeX()

	document, err := renderer.Render(testDocument())
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if !strings.HasPrefix(document, `\documentclass[letterpaper,11pt]{article}`) {
		t.Error("Expected document to start with the class declaration")
	}

	if !strings.HasSuffix(strings.TrimSpace(document), `\end{document}`) {
		t.Error("Expected document to end with \\end{document}")
	}

	checks := []string{
		`{\Large \scshape Alex Carter}`,
		`\faPhone\ {+1 (555) 010-0000}`,
		`\href{https://www.linkedin.com/in/alex-carter/}{linkedin.com/in/alex-carter}`,
		`Senior engineer focused on 100\% uptime`,
		`{AT\&T}{2020 - Present}`,
		`{Staff Engineer}{Remote}`,
		`\resumeItem{Cut costs by 50\%}`,
		`{\textbf{Switchboard} $|$ \emph{Go | PostgreSQL}}{}`,
		`\resumeItem{Built the core}`,
	}

	for _, check := range checks {
		if !strings.Contains(document, check) {
			t.Errorf("Expected document to contain '%s'", check)
		}
	}

	if strings.Contains(document, "AT&T") {
		t.Error("Expected raw ampersand to be escaped")
	}
}

func TestRenderSkillLabels(t *testing.T) {
	tests := []struct {
		role     string
		expected string
	}{
		{"backend", `\textbf{Programming Languages:} Go, Python`},
		{"mobile", `\textbf{Languages:} Go, Python`},
		{"ai-ml", `\textbf{Programming Languages:} Go, Python`},
		{"qa", `\textbf{Languages:} Go, Python`},
	}

	renderer := NewLaTeX()

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			doc := testDocument()
			doc.Analysis = jd.Profile{RoleType: tt.role}

			document, err := renderer.Render(doc)
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}

			if !strings.Contains(document, tt.expected) {
				t.Errorf("Expected document to contain '%s'", tt.expected)
			}
		})
	}
}

func TestRenderEscapesSkillLabels(t *testing.T) {
	renderer := NewLaTeX()

	doc := testDocument()
	doc.Analysis = jd.Profile{RoleType: "mobile"}
	doc.Skills = tailor.Skills{Cloud: []string{"AWS"}}

	document, err := renderer.Render(doc)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if !strings.Contains(document, `\textbf{Cloud \& Backend:} AWS`) {
		t.Error("Expected ampersand in label to be escaped")
	}
}

func TestRenderSkipsEmptySkillCategories(t *testing.T) {
	renderer := NewLaTeX()

	doc := testDocument()
	doc.Analysis = jd.Profile{}
	doc.Skills = tailor.Skills{Languages: []string{"Go"}}

	document, err := renderer.Render(doc)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if !strings.Contains(document, `\textbf{Languages:} Go \\`) {
		t.Error("Expected the languages line to be present")
	}

	if strings.Contains(document, "Frameworks:") || strings.Contains(document, "Cloud \\& DevOps:") {
		t.Error("Expected empty categories to be skipped")
	}
}

func TestRenderCapsSkillsPerLine(t *testing.T) {
	renderer := NewLaTeX()

	doc := testDocument()
	doc.Analysis = jd.Profile{}
	doc.Skills = tailor.Skills{
		Languages: []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"},
	}

	document, err := renderer.Render(doc)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if !strings.Contains(document, "One, Two, Three, Four, Five, Six") {
		t.Error("Expected the first six skills to be listed")
	}

	if strings.Contains(document, "Seven") {
		t.Error("Expected the seventh skill to be dropped")
	}
}

func TestRenderPartialContacts(t *testing.T) {
	renderer := NewLaTeX()

	doc := testDocument()
	doc.Profile = career.Profile{Name: "Alex Carter", Email: "alex.carter@example.com"}

	document, err := renderer.Render(doc)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if !strings.Contains(document, `{\faEnvelope\ {alex.carter@example.com}}`) {
		t.Error("Expected the email entry to be present")
	}

	if strings.Contains(document, `\faPhone`) || strings.Contains(document, `\faGithub`) {
		t.Error("Expected missing contact fields to be omitted")
	}
}

// Every environment the template opens must close, including the tabular*
// pairs inside the resume macros.
func TestRenderBalancedEnvironments(t *testing.T) {
	renderer := NewLaTeX()

	document, err := renderer.Render(testDocument())
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	environments := []string{"tabular*", "itemize", "center", "document"}
	for _, env := range environments {
		begins := strings.Count(document, `\begin{`+env+`}`)
		ends := strings.Count(document, `\end{`+env+`}`)

		if begins == 0 {
			t.Errorf("Expected at least one %s environment", env)
		}

		if begins != ends {
			t.Errorf("Expected balanced %s environments, got %d begins and %d ends", env, begins, ends)
		}
	}
}

// Contact groups must close the braces they open or the header swallows the
// rest of the line.
func TestContactLineBalancedBraces(t *testing.T) {
	doc := testDocument()
	line := buildContactLine(doc.Profile)

	depth := 0
	for _, char := range line {
		switch char {
		case '{':
			depth++
		case '}':
			depth--
		}
	}

	if depth != 0 {
		t.Errorf("Expected balanced braces in contact line, got net depth %d", depth)
	}
}

func TestWriteDocument(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "out", "cv.tex")

	err := WriteDocument("\\documentclass{article}", outputPath)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Errorf("Expected output file to exist, got %v", err)
	}

	if string(content) != "\\documentclass{article}" {
		t.Errorf("Expected document content written, got '%s'", string(content))
	}
}
