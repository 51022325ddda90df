package scorer

import (
	"github.com/tailorcv/tailorcv/pkg/jd"
)

// roleBonus pairs description keywords with the points a match awards.
type roleBonus struct {
	keywords []string
	points   int
}

// experienceRoleKeywords maps a role category to the description keywords
// that earn an experience the role affinity bonus.
//
//nolint:gochecknoglobals // Scoring configuration constants
var experienceRoleKeywords = map[jd.RoleCategory][]string{
	jd.RoleMobile:   {"react native", "ios", "android", "mobile"},
	jd.RoleAIML:     {"ai", "ml", "machine learning", "nlp", "tensorflow"},
	jd.RoleBackend:  {"node.js", "python", "api", "database", "server"},
	jd.RoleFrontend: {"react", "vue", "angular", "frontend", "ui"},
}

// projectRoleBonuses maps a role category to the description keywords that
// earn a project the role affinity bonus. Specialist roles award more points
// than generalist ones.
//
//nolint:gochecknoglobals // Scoring configuration constants
var projectRoleBonuses = map[jd.RoleCategory]roleBonus{
	jd.RoleMobile:     {keywords: []string{"react native", "ios", "android", "mobile app"}, points: 4},
	jd.RoleAIML:       {keywords: []string{"ai", "ml", "machine learning", "nlp", "openai", "llm"}, points: 4},
	jd.RoleBlockchain: {keywords: []string{"blockchain", "web3", "ethereum", "smart contract"}, points: 4},
	jd.RoleBackend:    {keywords: []string{"api", "database", "server", "microservices"}, points: 3},
	jd.RoleFrontend:   {keywords: []string{"react", "vue", "angular", "frontend", "ui/ux"}, points: 3},
}

// industryKeywords maps an industry context to the project description
// keywords that earn the domain bonus.
//
//nolint:gochecknoglobals // Scoring configuration constants
var industryKeywords = map[string][]string{
	"healthcare": {"health", "medical", "hipaa", "patient"},
	"fintech":    {"payment", "financial", "stripe", "blockchain"},
	"ecommerce":  {"ecommerce", "shopping", "marketplace", "retail"},
}

//nolint:gochecknoglobals // Scoring configuration constants
var recentYears = []string{"2023", "2024", "2025"}

//nolint:gochecknoglobals // Scoring configuration constants
var olderYears = []string{"2020", "2021", "2022"}
