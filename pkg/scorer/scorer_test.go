package scorer

import (
	"testing"

	"github.com/tailorcv/tailorcv/pkg/career"
	"github.com/tailorcv/tailorcv/pkg/jd"
)

func TestScoreExperience(t *testing.T) {
	tests := []struct {
		name     string
		profile  jd.Profile
		exp      career.Experience
		expected int
	}{
		{
			name: "strong backend match",
			profile: jd.Profile{
				RoleType:        "backend",
				KeyTechnologies: []string{"PostgreSQL", "Docker"},
				PrimarySkills:   []string{"Python", "Kubernetes"},
			},
			exp: career.Experience{
				Description: "Built Python services backed by PostgreSQL and Docker deployments",
				Duration:    "Jan 2024 - Present",
			},
			// 2+2 technologies, 1 skill, 3 recency, 3 role affinity
			expected: 11,
		},
		{
			name: "no overlap",
			profile: jd.Profile{
				RoleType:        "backend",
				KeyTechnologies: []string{"PostgreSQL"},
				PrimarySkills:   []string{"Python"},
			},
			exp: career.Experience{
				Description: "Managed retail storefronts",
				Duration:    "Oct 2012 - Jun 2017",
			},
			expected: 0,
		},
		{
			name: "role affinity only",
			profile: jd.Profile{
				RoleType: "mobile",
			},
			exp: career.Experience{
				Description: "Shipped iOS releases",
				Duration:    "Oct 2012 - Jun 2017",
			},
			expected: 3,
		},
		{
			name: "empty search term matches any description",
			profile: jd.Profile{
				KeyTechnologies: []string{""},
			},
			exp:      career.Experience{},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ScoreExperience(tt.exp, tt.profile)
			if score != tt.expected {
				t.Errorf("Expected score %d, got %d", tt.expected, score)
			}
		})
	}
}

func TestRecencyTiers(t *testing.T) {
	tests := []struct {
		duration string
		expected int
	}{
		{"Sep 2023 - Present", 3},
		{"CURRENTLY PRESENT", 3},
		{"Mar 2020 - Sep 2023", 2},
		{"Jan 2020 - Dec 2021", 1},
		{"Oct 2012 - Jun 2017", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			exp := career.Experience{Duration: tt.duration}
			score := ScoreExperience(exp, jd.Profile{})
			if score != tt.expected {
				t.Errorf("Expected score %d for '%s', got %d", tt.expected, tt.duration, score)
			}
		})
	}
}

func TestScoreProject(t *testing.T) {
	tests := []struct {
		name     string
		profile  jd.Profile
		project  career.Project
		expected int
	}{
		{
			name: "healthcare mobile match",
			profile: jd.Profile{
				RoleType:        "mobile",
				IndustryContext: "Healthcare",
				KeyTechnologies: []string{"React Native"},
				PrimarySkills:   []string{"TypeScript"},
			},
			project: career.Project{
				Description: "React Native mobile app for patient intake with TypeScript",
			},
			// 2 technology, 1 skill, 3 industry, 4 role affinity
			expected: 10,
		},
		{
			name: "fintech blockchain match",
			profile: jd.Profile{
				RoleType:        "blockchain",
				IndustryContext: "fintech",
			},
			project: career.Project{
				Description: "Ethereum smart contract platform for payments",
			},
			expected: 7,
		},
		{
			name: "substring keyword match",
			profile: jd.Profile{
				RoleType: "ai-ml",
			},
			project: career.Project{
				Description: "Maintained batch pipelines",
			},
			expected: 4,
		},
		{
			name:     "no overlap",
			profile:  jd.Profile{RoleType: "devops"},
			project:  career.Project{Description: "Painted murals"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ScoreProject(tt.project, tt.profile)
			if score != tt.expected {
				t.Errorf("Expected score %d, got %d", tt.expected, score)
			}
		})
	}
}

// Adding a matched technology term to a description must never lower the
// record's score.
func TestScoreMonotonicAcrossMatches(t *testing.T) {
	profile := jd.Profile{
		RoleType:        "backend",
		KeyTechnologies: []string{"PostgreSQL", "Redis"},
		PrimarySkills:   []string{"Go"},
	}

	t.Run("experience", func(t *testing.T) {
		base := career.Experience{
			Description: "Built Go services with PostgreSQL",
			Duration:    "Jan 2023 - Present",
		}
		richer := base
		richer.Description += " and Redis caching"

		baseScore := ScoreExperience(base, profile)
		richerScore := ScoreExperience(richer, profile)
		if richerScore < baseScore {
			t.Errorf("Expected score of at least %d after adding a matched term, got %d", baseScore, richerScore)
		}
	})

	t.Run("project", func(t *testing.T) {
		base := career.Project{Description: "Go service backed by PostgreSQL"}
		richer := base
		richer.Description += " and Redis caching"

		baseScore := ScoreProject(base, profile)
		richerScore := ScoreProject(richer, profile)
		if richerScore < baseScore {
			t.Errorf("Expected score of at least %d after adding a matched term, got %d", baseScore, richerScore)
		}
	})
}

func TestTopExperiencesStableOrder(t *testing.T) {
	experiences := []career.Experience{
		{Company: "A"},
		{Company: "B"},
		{Company: "C"},
		{Company: "D"},
		{Company: "E"},
	}

	// Nothing matches, so every score ties at zero
	selected := TopExperiences(experiences, jd.Profile{})

	if len(selected) != ExperienceLimit {
		t.Errorf("Expected %d experiences, got %d", ExperienceLimit, len(selected))
	}

	expected := []string{"A", "B", "C", "D"}
	for i, company := range expected {
		if selected[i].Company != company {
			t.Errorf("Expected company '%s' at position %d, got '%s'", company, i, selected[i].Company)
		}
	}
}

func TestTopExperiencesRanking(t *testing.T) {
	experiences := []career.Experience{
		{Company: "A", Description: "Ran a print shop"},
		{Company: "B", Description: "Wrote Go microservices"},
		{Company: "C", Description: "Organized events"},
	}

	profile := jd.Profile{KeyTechnologies: []string{"Go"}}

	selected := TopExperiences(experiences, profile)

	if len(selected) != 3 {
		t.Errorf("Expected 3 experiences, got %d", len(selected))
	}

	if selected[0].Company != "B" {
		t.Errorf("Expected 'B' first, got '%s'", selected[0].Company)
	}

	if selected[1].Company != "A" || selected[2].Company != "C" {
		t.Errorf("Expected ties to keep input order, got '%s' then '%s'", selected[1].Company, selected[2].Company)
	}
}

func TestTopProjectsRanking(t *testing.T) {
	projects := []career.Project{
		{Name: "Alpha", Description: "Marketing site"},
		{Name: "Beta", Description: "Patient portal for a medical group"},
		{Name: "Gamma", Description: "Game engine"},
	}

	profile := jd.Profile{IndustryContext: "healthcare"}

	selected := TopProjects(projects, profile)

	if len(selected) != 3 {
		t.Errorf("Expected 3 projects, got %d", len(selected))
	}

	if selected[0].Name != "Beta" {
		t.Errorf("Expected 'Beta' first, got '%s'", selected[0].Name)
	}
}

func TestTopProjectsLimit(t *testing.T) {
	data := career.Sample()

	selected := TopProjects(data.Projects, jd.Profile{RoleType: "fullstack"})
	if len(selected) != ProjectLimit {
		t.Errorf("Expected %d projects, got %d", ProjectLimit, len(selected))
	}

	selected = TopProjects(nil, jd.Profile{})
	if len(selected) != 0 {
		t.Errorf("Expected no projects, got %d", len(selected))
	}
}
