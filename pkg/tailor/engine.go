package tailor

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tailorcv/tailorcv/pkg/career"
	"github.com/tailorcv/tailorcv/pkg/jd"
	"github.com/tailorcv/tailorcv/pkg/llm"
	"github.com/tailorcv/tailorcv/pkg/scorer"
)

// Engine runs the full tailoring pipeline for one job description.
type Engine struct {
	analyzer  *jd.Analyzer
	generator *Generator
	renderer  Renderer
	data      career.Data
}

// NewEngine wires the pipeline around a single gateway, the candidate's
// career history, and a document renderer.
func NewEngine(gateway llm.Gateway, data career.Data, renderer Renderer) (engine *Engine) {
	engine = &Engine{
		analyzer:  jd.NewAnalyzer(gateway),
		generator: NewGenerator(gateway),
		renderer:  renderer,
		data:      data,
	}

	return engine
}

// Run tailors the career history to the given job description and renders
// the final document. Generation failures are absorbed by fallbacks, so the
// only failure left is document assembly.
func (e *Engine) Run(ctx context.Context, jobDescription string) (result Result, err error) {
	logrus.Info("Analyzing job description")
	profile := e.analyzer.Analyze(ctx, jobDescription)

	logrus.WithFields(logrus.Fields{
		"role":     profile.RoleType,
		"industry": profile.IndustryContext,
	}).Info("Posting analyzed")

	experiences := scorer.TopExperiences(e.data.Experiences, profile)
	projects := scorer.TopProjects(e.data.Projects, profile)

	logrus.WithFields(logrus.Fields{
		"experiences": len(experiences),
		"projects":    len(projects),
	}).Info("Selected relevant history")

	summary := e.generator.Summary(ctx, profile)

	tailoredExperiences := make([]TailoredExperience, 0, len(experiences))
	for _, exp := range experiences {
		logrus.WithField("company", exp.Company).Debug("Processing experience")

		jobType := exp.JobType
		if jobType == "" {
			jobType = "Remote"
		}

		tailoredExperiences = append(tailoredExperiences, TailoredExperience{
			Company:  exp.Company,
			Role:     exp.Role,
			Duration: exp.Duration,
			JobType:  jobType,
			Bullets:  e.generator.ExperienceBullets(ctx, exp, profile),
		})
	}

	tailoredProjects := make([]TailoredProject, 0, len(projects))
	for _, project := range projects {
		logrus.WithField("project", project.Name).Debug("Processing project")

		tailoredProjects = append(tailoredProjects, TailoredProject{
			Name:      project.Name,
			TechStack: e.generator.TechStack(ctx, project, profile),
			Bullets:   e.generator.ProjectBullets(ctx, project, profile),
		})
	}

	skills := e.generator.Skills(ctx, e.data, profile)

	document, err := e.renderer.Render(Document{
		Profile:     e.data.Profile,
		Summary:     summary,
		Experiences: tailoredExperiences,
		Projects:    tailoredProjects,
		Skills:      skills,
		Analysis:    profile,
	})
	if err != nil {
		err = errors.Wrap(err, "failed to assemble document")
		return result, err
	}

	logrus.Info("CV generation completed")

	result = Result{
		LaTeX:       document,
		Summary:     summary,
		Experiences: tailoredExperiences,
		Projects:    tailoredProjects,
		Analysis:    profile,
		Skills:      skills,
		Message:     "CV generated successfully",
		SelectionInfo: SelectionInfo{
			TotalExperiences:    len(e.data.Experiences),
			SelectedExperiences: len(experiences),
			TotalProjects:       len(e.data.Projects),
			SelectedProjects:    len(projects),
		},
	}

	return result, err
}
