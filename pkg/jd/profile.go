package jd

// RoleCategory is the closed set of role classifications the analyzer can
// produce. Unrecognized strings map to RoleUnknown, which earns no scoring
// bonuses and selects the generic fallbacks.
type RoleCategory int

// Role categories.
const (
	RoleUnknown RoleCategory = iota
	RoleFrontend
	RoleBackend
	RoleFullstack
	RoleMobile
	RoleAIML
	RoleDataEngineer
	RoleDevOps
	RoleCloud
	RoleQA
	RoleProduct
	RoleBlockchain
)

//nolint:gochecknoglobals // Static lookup table
var roleNames = map[RoleCategory]string{
	RoleFrontend:     "frontend",
	RoleBackend:      "backend",
	RoleFullstack:    "fullstack",
	RoleMobile:       "mobile",
	RoleAIML:         "ai-ml",
	RoleDataEngineer: "data-engineer",
	RoleDevOps:       "devops",
	RoleCloud:        "cloud",
	RoleQA:           "qa",
	RoleProduct:      "product",
	RoleBlockchain:   "blockchain",
}

// String returns the wire name of the role category.
func (r RoleCategory) String() (name string) {
	name = roleNames[r]
	if name == "" {
		name = "unknown"
	}
	return name
}

// ParseRole maps a role string to its category.
func ParseRole(role string) (category RoleCategory) {
	for cat, name := range roleNames {
		if name == role {
			category = cat
			return category
		}
	}
	category = RoleUnknown
	return category
}

// Profile represents the structured requirement profile extracted from a
// job description.
type Profile struct {
	RoleType        string   `json:"role_type"`
	SeniorityLevel  string   `json:"seniority_level"`
	PrimarySkills   []string `json:"primary_skills"`
	KeyTechnologies []string `json:"key_technologies"`
	ATSKeywords     []string `json:"ats_keywords"`
	FocusAreas      []string `json:"focus_areas"`
	IndustryContext string   `json:"industry_context"`
}

// Role returns the closed role category for the profile's role type.
func (p *Profile) Role() (category RoleCategory) {
	category = ParseRole(p.RoleType)
	return category
}

// DefaultProfile returns the static profile substituted whenever analysis
// fails or produces an unusable shape.
func DefaultProfile() (profile Profile) {
	profile = Profile{
		RoleType:        "fullstack",
		SeniorityLevel:  "senior",
		PrimarySkills:   []string{"JavaScript", "React", "Node.js", "Python", "AWS"},
		KeyTechnologies: []string{"React Native", "TypeScript", "PostgreSQL", "Docker", "GraphQL"},
		ATSKeywords:     []string{"software engineer", "development", "full-stack", "scalable", "agile"},
		FocusAreas:      []string{"scalability", "performance", "user experience"},
		IndustryContext: "enterprise",
	}
	return profile
}

// applyDefaults fills the per-field defaults the prompts rely on. Lists
// stay as delivered; only scalar fields get substitutes.
func (p *Profile) applyDefaults() {
	if p.SeniorityLevel == "" {
		p.SeniorityLevel = "senior"
	}
	if p.IndustryContext == "" {
		p.IndustryContext = "technology"
	}
}
