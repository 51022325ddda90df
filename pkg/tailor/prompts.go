package tailor

import (
	"fmt"
	"strings"

	"github.com/tailorcv/tailorcv/pkg/career"
	"github.com/tailorcv/tailorcv/pkg/jd"
)

const experienceSystemMessage = `You are a professional CV writer. Create 3-4 compelling bullet points that align with the job requirements.
IMPORTANT: DO NOT falsify or change the industry context of the experience. If the company didn't work in healthcare,
DO NOT add healthcare-related claims. Respond with ONLY a JSON array of strings.`

const experiencePromptTemplate = `
Create 3-4 professional bullet points for this experience. Return ONLY a JSON array:

Company: %s
Role: %s
Description: %s

Job Requirements:
- Role type: %s
- Seniority: %s
- Key skills: %s
- Technologies: %s
- Focus areas: %s
- Industry: %s

CRITICAL Instructions:
1. Extract technologies and achievements from the ACTUAL description provided
2. DO NOT add healthcare/medical/patient/HIPAA references unless they are already in the description
3. For non-healthcare companies (Facebook, Microsoft, HelloGov), focus on:
   - Technical skills that transfer to healthcare (scalability, security, real-time systems)
   - Architecture and system design experience
   - Mobile/web development skills
   - Team leadership and project management
   - Performance optimization and reliability
4. Use strong action verbs (architected, engineered, implemented, optimized, led)
5. Include quantifiable achievements with varied metrics
6. Highlight transferable skills without changing the industry context

Is this actually a healthcare company? %t
Does the description mention healthcare? %t

If this is NOT a healthcare company, focus on transferable technical skills only.

Format: ["bullet 1", "bullet 2", "bullet 3", "bullet 4"]
Maximum 4 bullets, minimum 3.
`

const projectSystemMessage = `You are a CV expert. Create 2 impactful project bullet points. Respond with ONLY a JSON array.`

const projectPromptTemplate = `
Create 2 bullet points for this project. Return ONLY a JSON array:

Project: %s
Description: %s

Job Requirements:
- Role type: %s
- Technologies: %s
- Focus areas: %s
- Industry: %s

Instructions:
1. Extract and emphasize tech stack from description that matches job requirements
2. Highlight technical achievements and business impact
3. Use metrics like %d%%, %s, or %d%% where relevant
4. Make it ATS-friendly with job-relevant keywords
5. Focus on complexity and scale appropriate for the role

Format: ["bullet 1", "bullet 2"]
`

const techStackSystemMessage = `Extract the main technologies from the description. Return ONLY a pipe-separated list of 3-4 technologies that are most relevant.`

const techStackPromptTemplate = `
From this description, extract 3-4 main technologies prioritizing those relevant to %s:

%s

Job Role: %s
Preferred Technologies: %s

Return format: Tech1 | Tech2 | Tech3 | Tech4
Example: React Native | Node.js | PostgreSQL | AWS
`

const summarySystemMessage = `You are a CV writer. Create a compelling 2-3 line professional summary.
Be truthful about the candidate's experience. Respond with ONLY the summary text (no JSON).`

const summaryPromptTemplate = `
Create a professional summary for:
Role: %s %s
Key skills: %s
Industry: %s
Background: 10+ years at Microsoft and Facebook (NOT healthcare companies)
Current: Leading AI/full-stack development projects
%s

Make it specific to %s role. If it's a healthcare role, mention the ACTUAL healthcare
projects (BicycleHealth, Midato) but don't falsely claim all experience is healthcare.
Return ONLY the summary text (no quotes, no JSON).
`

const healthcareSummaryContext = `
The candidate has ACTUAL healthcare experience in:
- BicycleHealth: Telemedicine app for opioid use disorder treatment
- Midato Health: HIPAA-compliant consent management platform
But also strong technical experience from Facebook, Microsoft, and other non-healthcare companies.
`

const skillsSystemMessage = `Extract and categorize skills based on job requirements. Return ONLY a JSON object with skill categories.`

const skillsPromptTemplate = `
Based on the job requirements and experience, create a skills section. Return ONLY JSON:

Job Requirements:
- Role type: %s
- Primary skills: %s
- Technologies: %s
- Industry: %s

Experience descriptions:
%s

Return format appropriate for %s role:
{
    "languages": ["lang1", "lang2", "lang3", "lang4"],
    "frameworks": ["framework1", "framework2", "framework3", "framework4"],
    "tools": ["tool1", "tool2", "tool3", "tool4"],
    "cloud": ["cloud1", "cloud2", "cloud3"],
    "other": ["skill1", "skill2", "skill3", "skill4"]
}

PRIORITIZE skills mentioned in job requirements. Adapt categories to role type.
`

func buildExperiencePrompt(exp career.Experience, profile jd.Profile, healthcareCompany, healthcareDescription bool) (prompt string) {
	prompt = fmt.Sprintf(experiencePromptTemplate,
		exp.Company,
		exp.Role,
		exp.Description,
		profile.RoleType,
		profile.SeniorityLevel,
		joinFirst(profile.PrimarySkills, 4),
		joinFirst(profile.KeyTechnologies, 4),
		strings.Join(profile.FocusAreas, ", "),
		profile.IndustryContext,
		healthcareCompany,
		healthcareDescription,
	)

	return prompt
}

func buildProjectPrompt(project career.Project, profile jd.Profile, metrics Metrics) (prompt string) {
	prompt = fmt.Sprintf(projectPromptTemplate,
		project.Name,
		project.Description,
		profile.RoleType,
		joinFirst(profile.KeyTechnologies, 4),
		strings.Join(profile.FocusAreas, ", "),
		profile.IndustryContext,
		metrics.Performance,
		metrics.Uptime,
		metrics.Reduction,
	)

	return prompt
}

func buildTechStackPrompt(project career.Project, profile jd.Profile) (prompt string) {
	prompt = fmt.Sprintf(techStackPromptTemplate,
		profile.RoleType,
		truncate(project.Description, descriptionBudget),
		profile.RoleType,
		joinFirst(profile.KeyTechnologies, 5),
	)

	return prompt
}

func buildSummaryPrompt(profile jd.Profile) (prompt string) {
	healthcareContext := ""
	if profile.IndustryContext == "healthcare" {
		healthcareContext = healthcareSummaryContext
	}

	prompt = fmt.Sprintf(summaryPromptTemplate,
		profile.SeniorityLevel,
		profile.RoleType,
		joinFirst(profile.PrimarySkills, 4),
		profile.IndustryContext,
		healthcareContext,
		profile.RoleType,
	)

	return prompt
}

func buildSkillsPrompt(data career.Data, profile jd.Profile) (prompt string) {
	prompt = fmt.Sprintf(skillsPromptTemplate,
		profile.RoleType,
		strings.Join(profile.PrimarySkills, ", "),
		strings.Join(profile.KeyTechnologies, ", "),
		profile.IndustryContext,
		combinedDescriptions(data),
		profile.RoleType,
	)

	return prompt
}

// combinedDescriptions joins every experience and project description into
// one bounded text block for the skills prompt.
func combinedDescriptions(data career.Data) (combined string) {
	parts := make([]string, 0, len(data.Experiences)+len(data.Projects))
	for _, exp := range data.Experiences {
		parts = append(parts, exp.Description)
	}

	for _, project := range data.Projects {
		parts = append(parts, project.Description)
	}

	combined = truncate(strings.Join(parts, " "), combinedBudget)

	return combined
}

func joinFirst(items []string, limit int) (joined string) {
	if len(items) > limit {
		items = items[:limit]
	}

	joined = strings.Join(items, ", ")

	return joined
}

func truncate(s string, limit int) (out string) {
	out = s
	if len(out) > limit {
		out = out[:limit]
	}

	return out
}
