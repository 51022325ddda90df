package scorer

import (
	"sort"
	"strings"

	"github.com/tailorcv/tailorcv/pkg/career"
	"github.com/tailorcv/tailorcv/pkg/jd"
)

const (
	// ExperienceLimit is the number of experiences kept on the tailored CV.
	ExperienceLimit = 4

	// ProjectLimit is the number of projects kept on the tailored CV.
	ProjectLimit = 5
)

// ScoreExperience rates how well a work experience matches the analyzed posting.
func ScoreExperience(exp career.Experience, profile jd.Profile) (score int) {
	desc := strings.ToLower(exp.Description)

	// Technology matches weigh double
	for _, tech := range profile.KeyTechnologies {
		if strings.Contains(desc, strings.ToLower(tech)) {
			score += 2
		}
	}

	for _, skill := range profile.PrimarySkills {
		if strings.Contains(desc, strings.ToLower(skill)) {
			score++
		}
	}

	score += recencyBonus(exp.Duration)

	if keywords, ok := experienceRoleKeywords[profile.Role()]; ok && containsAny(desc, keywords) {
		score += 3
	}

	return score
}

// ScoreProject rates how well a project matches the analyzed posting.
func ScoreProject(project career.Project, profile jd.Profile) (score int) {
	desc := strings.ToLower(project.Description)

	// Technology matches weigh double
	for _, tech := range profile.KeyTechnologies {
		if strings.Contains(desc, strings.ToLower(tech)) {
			score += 2
		}
	}

	for _, skill := range profile.PrimarySkills {
		if strings.Contains(desc, strings.ToLower(skill)) {
			score++
		}
	}

	if keywords, ok := industryKeywords[strings.ToLower(profile.IndustryContext)]; ok && containsAny(desc, keywords) {
		score += 3
	}

	if bonus, ok := projectRoleBonuses[profile.Role()]; ok && containsAny(desc, bonus.keywords) {
		score += bonus.points
	}

	return score
}

// TopExperiences returns the highest scoring experiences in descending score
// order. Equal scores keep their original order, so untouched lists stay
// chronological.
func TopExperiences(experiences []career.Experience, profile jd.Profile) (selected []career.Experience) {
	ranked := make([]rankedExperience, 0, len(experiences))
	for _, exp := range experiences {
		ranked = append(ranked, rankedExperience{
			experience: exp,
			score:      ScoreExperience(exp, profile),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	limit := ExperienceLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}

	selected = make([]career.Experience, 0, limit)
	for _, entry := range ranked[:limit] {
		selected = append(selected, entry.experience)
	}

	return selected
}

// TopProjects returns the highest scoring projects in descending score order.
// Equal scores keep their original order.
func TopProjects(projects []career.Project, profile jd.Profile) (selected []career.Project) {
	ranked := make([]rankedProject, 0, len(projects))
	for _, project := range projects {
		ranked = append(ranked, rankedProject{
			project: project,
			score:   ScoreProject(project, profile),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	limit := ProjectLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}

	selected = make([]career.Project, 0, limit)
	for _, entry := range ranked[:limit] {
		selected = append(selected, entry.project)
	}

	return selected
}

type rankedExperience struct {
	experience career.Experience
	score      int
}

type rankedProject struct {
	project career.Project
	score   int
}

// recencyBonus rewards current and recent roles.
func recencyBonus(duration string) (bonus int) {
	duration = strings.ToLower(duration)

	switch {
	case strings.Contains(duration, "present"):
		bonus = 3
	case containsAny(duration, recentYears):
		bonus = 2
	case containsAny(duration, olderYears):
		bonus = 1
	}

	return bonus
}

func containsAny(s string, keywords []string) (found bool) {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			found = true
			return found
		}
	}

	return found
}
