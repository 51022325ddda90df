package tailor

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tailorcv/tailorcv/pkg/career"
	"github.com/tailorcv/tailorcv/pkg/jd"
	"github.com/tailorcv/tailorcv/pkg/llm"
)

const (
	experienceMaxTokens = 800
	projectMaxTokens    = 500
	techStackMaxTokens  = 120
	summaryMaxTokens    = 180
	skillsMaxTokens     = 600

	experienceTemperature = 0.4
	projectTemperature    = 0.4
	techStackTemperature  = 0.2
	summaryTemperature    = 0.3
	skillsTemperature     = 0.3

	minBullets = 3
	maxBullets = 4

	projectBulletCount = 2

	techStackMaxLength = 120
	summaryMinLength   = 30
	descriptionBudget  = 400
	combinedBudget     = 2000
)

//nolint:gochecknoglobals // Static lookup table
var healthcareCompanies = []string{"bicyclehealth", "midato health", "midato healt"}

//nolint:gochecknoglobals // Static lookup table
var healthcareDescriptionMarkers = []string{"health", "medical", "patient", "hipaa", "telemedicine"}

//nolint:gochecknoglobals // Static lookup table
var healthcareBulletMarkers = []string{"healthcare", "patient", "medical", "hipaa", "clinical", "health"}

// Generator produces tailored CV content, substituting deterministic copy
// whenever the model is unavailable or returns something unusable.
type Generator struct {
	gateway llm.Gateway
}

// NewGenerator creates a Generator backed by the given gateway.
func NewGenerator(gateway llm.Gateway) (generator *Generator) {
	generator = &Generator{
		gateway: gateway,
	}

	return generator
}

// Summary writes the professional summary paragraph for the CV header.
func (g *Generator) Summary(ctx context.Context, profile jd.Profile) (summary string) {
	prompt := buildSummaryPrompt(profile)

	raw, err := g.gateway.Complete(ctx, summarySystemMessage, prompt, summaryMaxTokens, summaryTemperature)
	if err != nil {
		logrus.WithField("error", err).Warn("Summary generation failed, using fallback")
		summary = FallbackSummary(profile.RoleType)
		return summary
	}

	summary = strings.TrimSpace(raw)
	summary = strings.Trim(summary, `"`)
	summary = strings.Trim(summary, "'")

	if len(summary) <= summaryMinLength {
		summary = FallbackSummary(profile.RoleType)
	}

	return summary
}

// ExperienceBullets writes 3-4 bullet points for one work experience.
// Bullets claiming healthcare work the source record does not back up are
// dropped and replaced with neutral filler.
func (g *Generator) ExperienceBullets(ctx context.Context, exp career.Experience, profile jd.Profile) (bullets []string) {
	healthcareCompany := containsAnyKeyword(strings.ToLower(exp.Company), healthcareCompanies)
	healthcareDescription := containsAnyKeyword(strings.ToLower(exp.Description), healthcareDescriptionMarkers)

	prompt := buildExperiencePrompt(exp, profile, healthcareCompany, healthcareDescription)

	raw, err := g.gateway.Complete(ctx, experienceSystemMessage, prompt, experienceMaxTokens, experienceTemperature)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company": exp.Company,
			"error":   err,
		}).Warn("Bullet generation failed, using fallback")

		bullets = FallbackBullets(exp.Company)
		return bullets
	}

	var generated []string
	if !llm.Normalize(raw, &generated) {
		bullets = FallbackBullets(exp.Company)
		return bullets
	}

	if !healthcareCompany && !healthcareDescription {
		generated = dropHealthcareClaims(generated, exp.Company)
	}

	bullets = clampBullets(generated, exp.Company)

	return bullets
}

// ProjectBullets writes exactly 2 bullet points for one project.
func (g *Generator) ProjectBullets(ctx context.Context, project career.Project, profile jd.Profile) (bullets []string) {
	metrics := VariedMetrics()
	prompt := buildProjectPrompt(project, profile, metrics)

	raw, err := g.gateway.Complete(ctx, projectSystemMessage, prompt, projectMaxTokens, projectTemperature)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"project": project.Name,
			"error":   err,
		}).Warn("Project bullet generation failed, using fallback")

		bullets = FallbackProjectBullets(project.Name)
		return bullets
	}

	var generated []string
	if llm.Normalize(raw, &generated) && len(generated) >= projectBulletCount {
		bullets = generated[:projectBulletCount]
		return bullets
	}

	bullets = FallbackProjectBullets(project.Name)

	return bullets
}

// TechStack condenses a project description into a short pipe-separated
// technology list.
func (g *Generator) TechStack(ctx context.Context, project career.Project, profile jd.Profile) (stack string) {
	prompt := buildTechStackPrompt(project, profile)

	raw, err := g.gateway.Complete(ctx, techStackSystemMessage, prompt, techStackMaxTokens, techStackTemperature)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"project": project.Name,
			"error":   err,
		}).Warn("Tech stack extraction failed, using fallback")

		stack = FallbackTechStack(profile.RoleType)
		return stack
	}

	stack = strings.TrimSpace(raw)
	if !strings.Contains(stack, "|") || len(stack) >= techStackMaxLength {
		stack = FallbackTechStack(profile.RoleType)
	}

	return stack
}

// Skills builds the categorized skills section from the full career history.
func (g *Generator) Skills(ctx context.Context, data career.Data, profile jd.Profile) (skills Skills) {
	prompt := buildSkillsPrompt(data, profile)

	raw, err := g.gateway.Complete(ctx, skillsSystemMessage, prompt, skillsMaxTokens, skillsTemperature)
	if err != nil {
		logrus.WithField("error", err).Warn("Skills generation failed, using fallback")
		skills = FallbackSkills(profile.RoleType)
		return skills
	}

	var generated Skills
	if !llm.Normalize(raw, &generated) {
		skills = FallbackSkills(profile.RoleType)
		return skills
	}

	skills = generated

	return skills
}

// dropHealthcareClaims removes bullets that mention healthcare work for a
// record that has no healthcare context of its own.
func dropHealthcareClaims(bullets []string, company string) (kept []string) {
	kept = make([]string, 0, len(bullets))

	for _, bullet := range bullets {
		if containsAnyKeyword(strings.ToLower(bullet), healthcareBulletMarkers) {
			logrus.WithField("company", company).Warn("Removed healthcare reference from generated bullet")
			continue
		}

		kept = append(kept, bullet)
	}

	return kept
}

// clampBullets backfills with filler below the minimum count and trims
// above the maximum.
func clampBullets(bullets []string, company string) (clamped []string) {
	clamped = bullets

	for len(clamped) < minBullets {
		clamped = append(clamped, fmt.Sprintf("Delivered high-performance solutions at %s with measurable business impact", company))
	}

	if len(clamped) > maxBullets {
		clamped = clamped[:maxBullets]
	}

	return clamped
}

func containsAnyKeyword(s string, keywords []string) (found bool) {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			found = true
			return found
		}
	}

	return found
}
