package tailor

import (
	"github.com/tailorcv/tailorcv/pkg/career"
	"github.com/tailorcv/tailorcv/pkg/jd"
)

// TailoredExperience is a work experience rewritten for one job posting.
type TailoredExperience struct {
	Company  string   `json:"company"`
	Role     string   `json:"role"`
	Duration string   `json:"duration"`
	JobType  string   `json:"job_type"`
	Bullets  []string `json:"bullets"`
}

// TailoredProject is a project rewritten for one job posting.
type TailoredProject struct {
	Name      string   `json:"name"`
	TechStack string   `json:"tech_stack"`
	Bullets   []string `json:"bullets"`
}

// Skills groups CV skills into the categories the rendered document prints.
type Skills struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
	Cloud      []string `json:"cloud"`
	Other      []string `json:"other"`
}

// SelectionInfo reports how much source material survived selection.
type SelectionInfo struct {
	TotalExperiences    int `json:"total_experiences"`
	SelectedExperiences int `json:"selected_experiences"`
	TotalProjects       int `json:"total_projects"`
	SelectedProjects    int `json:"selected_projects"`
}

// Result is the complete output of one tailoring run.
type Result struct {
	LaTeX         string               `json:"latex"`
	Summary       string               `json:"summary"`
	Experiences   []TailoredExperience `json:"experiences"`
	Projects      []TailoredProject    `json:"projects"`
	Analysis      jd.Profile           `json:"jd_analysis"`
	Skills        Skills               `json:"skills"`
	Message       string               `json:"message"`
	SelectionInfo SelectionInfo        `json:"selection_info"`
}

// Document bundles everything the assembler needs for one CV.
type Document struct {
	Profile     career.Profile
	Summary     string
	Experiences []TailoredExperience
	Projects    []TailoredProject
	Skills      Skills
	Analysis    jd.Profile
}

// Renderer turns a tailored document into final document source.
type Renderer interface {
	Render(doc Document) (document string, err error)
}
