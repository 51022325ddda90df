package tailor

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/tailorcv/tailorcv/pkg/career"
	"github.com/tailorcv/tailorcv/pkg/llm"
)

// stubRenderer implements Renderer for tests.
type stubRenderer struct {
	document string
	err      error
	lastDoc  Document
}

func (s *stubRenderer) Render(doc Document) (document string, err error) {
	s.lastDoc = doc

	if s.err != nil {
		err = s.err
		return document, err
	}

	document = s.document
	return document, err
}

func TestRunWithNullGateway(t *testing.T) {
	renderer := &stubRenderer{document: "\\documentclass{article}"}
	engine := NewEngine(llm.NullGateway{}, career.Sample(), renderer)

	result, err := engine.Run(context.Background(), "Senior fullstack engineer wanted")
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if result.Message != "CV generated successfully" {
		t.Errorf("Expected success message, got '%s'", result.Message)
	}

	if result.LaTeX != "\\documentclass{article}" {
		t.Errorf("Expected rendered document in result, got '%s'", result.LaTeX)
	}

	if result.Analysis.RoleType != "fullstack" {
		t.Errorf("Expected default profile role, got '%s'", result.Analysis.RoleType)
	}

	if result.Summary != FallbackSummary("fullstack") {
		t.Errorf("Expected fullstack fallback summary, got '%s'", result.Summary)
	}

	if len(result.Experiences) != 4 {
		t.Errorf("Expected 4 experiences, got %d", len(result.Experiences))
	}

	for _, exp := range result.Experiences {
		if len(exp.Bullets) != 4 {
			t.Errorf("Expected 4 fallback bullets for %s, got %d", exp.Company, len(exp.Bullets))
		}
	}

	if len(result.Projects) != 5 {
		t.Errorf("Expected 5 projects, got %d", len(result.Projects))
	}

	for _, project := range result.Projects {
		if len(project.Bullets) != 2 {
			t.Errorf("Expected 2 bullets for %s, got %d", project.Name, len(project.Bullets))
		}

		if project.TechStack != FallbackTechStack("fullstack") {
			t.Errorf("Expected fullstack tech stack for %s, got '%s'", project.Name, project.TechStack)
		}
	}

	info := result.SelectionInfo
	if info.TotalExperiences != 4 || info.SelectedExperiences != 4 {
		t.Errorf("Expected 4/4 experiences, got %d/%d", info.SelectedExperiences, info.TotalExperiences)
	}

	if info.TotalProjects != 12 || info.SelectedProjects != 5 {
		t.Errorf("Expected 5/12 projects, got %d/%d", info.SelectedProjects, info.TotalProjects)
	}
}

func TestRunPassesDocumentToRenderer(t *testing.T) {
	renderer := &stubRenderer{document: "doc"}
	data := career.Sample()
	engine := NewEngine(llm.NullGateway{}, data, renderer)

	_, err := engine.Run(context.Background(), "Backend role")
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if renderer.lastDoc.Profile.Name != data.Profile.Name {
		t.Errorf("Expected profile '%s' handed to renderer, got '%s'", data.Profile.Name, renderer.lastDoc.Profile.Name)
	}

	if renderer.lastDoc.Summary == "" {
		t.Error("Expected summary handed to renderer")
	}

	if len(renderer.lastDoc.Experiences) != 4 {
		t.Errorf("Expected 4 experiences handed to renderer, got %d", len(renderer.lastDoc.Experiences))
	}
}

func TestRunRenderFailure(t *testing.T) {
	renderer := &stubRenderer{err: errors.New("bad template")}
	engine := NewEngine(llm.NullGateway{}, career.Sample(), renderer)

	_, err := engine.Run(context.Background(), "Backend role")
	if err == nil {
		t.Error("Expected an error when rendering fails")
	}

	if !strings.Contains(err.Error(), "failed to assemble document") {
		t.Errorf("Expected wrapped assembly error, got '%s'", err.Error())
	}
}

func TestRunJobTypeDefault(t *testing.T) {
	data := career.Data{
		Experiences: []career.Experience{
			{Company: "Acme", Role: "Engineer", Duration: "2024 - Present"},
		},
	}

	renderer := &stubRenderer{document: "doc"}
	engine := NewEngine(llm.NullGateway{}, data, renderer)

	result, err := engine.Run(context.Background(), "Backend role")
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if len(result.Experiences) != 1 {
		t.Errorf("Expected 1 experience, got %d", len(result.Experiences))
	}

	if result.Experiences[0].JobType != "Remote" {
		t.Errorf("Expected job type to default to 'Remote', got '%s'", result.Experiences[0].JobType)
	}
}
