package tailor

import (
	"fmt"
	"strings"
)

//nolint:gochecknoglobals // Static lookup table
var fallbackTechStacks = map[string]string{
	"mobile":        "React Native | TypeScript | Node.js",
	"ai-ml":         "Python | TensorFlow | Machine Learning",
	"frontend":      "React.js | TypeScript | CSS3",
	"backend":       "Node.js | PostgreSQL | REST APIs",
	"fullstack":     "React | Node.js | PostgreSQL",
	"blockchain":    "Solidity | Web3.js | Ethereum",
	"devops":        "AWS | Docker | Kubernetes",
	"data-engineer": "Python | Apache Spark | SQL",
}

//nolint:gochecknoglobals // Static lookup table
var fallbackSummaries = map[string]string{
	"mobile":     "Senior Mobile Engineer with 10+ years at Microsoft and Facebook, specializing in React Native and cross-platform mobile development, with experience delivering healthcare solutions through projects like BicycleHealth telemedicine platform.",
	"ai-ml":      "Senior AI/ML Engineer with 10+ years at Microsoft and Facebook, expert in machine learning, NLP, and AI systems, with healthcare domain experience through telemedicine and consent management platforms.",
	"frontend":   "Senior Frontend Engineer with 10+ years at Microsoft and Facebook, specializing in React.js and modern web technologies, with proven experience building HIPAA-compliant healthcare applications.",
	"backend":    "Senior Backend Engineer with 10+ years at Microsoft and Facebook, expert in scalable systems, APIs, and microservices architecture, with healthcare platform experience including telemedicine solutions.",
	"fullstack":  "Senior Full-Stack Engineer with 10+ years at Microsoft and Facebook, expert in modern web technologies and scalable systems, with hands-on experience developing healthcare platforms including BicycleHealth and Midato Health.",
	"blockchain": "Senior Blockchain Engineer with 10+ years at Microsoft and Facebook, specializing in Web3 technologies, smart contracts, and decentralized applications.",
	"devops":     "Senior DevOps Engineer with 10+ years at Microsoft and Facebook, expert in cloud infrastructure, automation, and scalable deployment pipelines.",
}

//nolint:gochecknoglobals // Static lookup table
var fallbackSkills = map[string]Skills{
	"mobile": {
		Languages:  []string{"JavaScript", "TypeScript", "Swift", "Kotlin"},
		Frameworks: []string{"React Native", "React.js", "Node.js", "Express.js"},
		Tools:      []string{"Xcode", "Android Studio", "Firebase", "GraphQL"},
		Cloud:      []string{"AWS", "Google Cloud", "Azure", "Heroku"},
		Other:      []string{"iOS Development", "Android Development", "Mobile UI/UX", "App Store Optimization"},
	},
	"ai-ml": {
		Languages:  []string{"Python", "JavaScript", "R", "SQL"},
		Frameworks: []string{"TensorFlow", "PyTorch", "Scikit-learn", "OpenAI"},
		Tools:      []string{"Jupyter", "Docker", "Git", "MLflow"},
		Cloud:      []string{"AWS", "Google Cloud", "Azure", "Databricks"},
		Other:      []string{"Machine Learning", "NLP", "Deep Learning", "Data Science"},
	},
	"frontend": {
		Languages:  []string{"JavaScript", "TypeScript", "HTML5", "CSS3"},
		Frameworks: []string{"React.js", "Vue.js", "Next.js", "Angular"},
		Tools:      []string{"Webpack", "Vite", "ESLint", "Jest"},
		Cloud:      []string{"AWS", "Vercel", "Netlify", "CloudFlare"},
		Other:      []string{"Responsive Design", "UI/UX", "Accessibility", "Performance Optimization"},
	},
	"backend": {
		Languages:  []string{"JavaScript", "Python", "Java", "Go"},
		Frameworks: []string{"Node.js", "Express.js", "Django", "Spring"},
		Tools:      []string{"PostgreSQL", "MongoDB", "Redis", "GraphQL"},
		Cloud:      []string{"AWS", "Docker", "Kubernetes", "Azure"},
		Other:      []string{"API Design", "Microservices", "Database Design", "System Architecture"},
	},
}

// FallbackBullets returns deterministic bullets for an experience when no
// usable generated content is available. Known employers get curated copy,
// everything else gets a generic set.
func FallbackBullets(company string) (bullets []string) {
	metrics := VariedMetrics()
	lowered := strings.ToLower(company)

	switch {
	case strings.Contains(lowered, "hellogov"):
		bullets = []string{
			fmt.Sprintf("Led full-stack development for AI-powered government services platform, achieving %d%% improvement in document processing efficiency", metrics.Performance),
			"Built comprehensive passport application portal with machine learning validation, reducing processing errors and improving user experience",
			"Implemented SEO-optimized marketing website generating significant revenue through strategic optimization and conversion tracking",
			fmt.Sprintf("Developed scalable architecture supporting government API integrations with %s reliability", metrics.Uptime),
		}
	case strings.Contains(lowered, "facebook"):
		bullets = []string{
			fmt.Sprintf("Developed Oculus VR ecosystem serving 2.8B+ users, implementing real-time streaming with %d%% performance improvement", metrics.Performance),
			"Built scalable News Feed backend services optimizing content delivery for billions of daily active users",
			fmt.Sprintf("Architected GraphQL live query systems reducing content loading latency by %d%%", metrics.Reduction),
			"Led cross-platform development initiatives with focus on performance and reliability",
		}
	case strings.Contains(lowered, "microsoft"):
		bullets = []string{
			fmt.Sprintf("Developed enterprise communication applications for 300M+ Skype users with %s availability", metrics.Uptime),
			fmt.Sprintf("Led Android Remote Desktop Client development reducing connection failures by %d%%", metrics.Reduction),
			"Implemented comprehensive telemetry systems improving application stability and user satisfaction",
			"Built cross-platform solutions with focus on enterprise security and scalability",
		}
	default:
		bullets = []string{
			fmt.Sprintf("Developed scalable applications at %s using modern frameworks and architectural patterns", company),
			fmt.Sprintf("Implemented performance optimizations improving system efficiency by %d%% and enhancing user experience", metrics.Performance),
			"Led technical initiatives and collaborated with cross-functional teams for successful project delivery",
			fmt.Sprintf("Delivered high-quality solutions with measurable business impact and %s reliability", metrics.Uptime),
		}
	}

	return bullets
}

// FallbackProjectBullets returns the deterministic bullet pair for a project.
func FallbackProjectBullets(name string) (bullets []string) {
	metrics := VariedMetrics()

	bullets = []string{
		fmt.Sprintf("Engineered %s with modern technologies and scalable architecture for optimal performance", name),
		fmt.Sprintf("Delivered high-impact solution improving system efficiency by %d%% with measurable business results", metrics.Performance),
	}

	return bullets
}

// FallbackTechStack returns the default tech stack line for a role type.
func FallbackTechStack(roleType string) (stack string) {
	stack, ok := fallbackTechStacks[roleType]
	if !ok {
		stack = "Full-Stack Development"
	}

	return stack
}

// FallbackSummary returns the default professional summary for a role type.
// Healthcare-flavored role names map to the fullstack summary.
func FallbackSummary(roleType string) (summary string) {
	if strings.Contains(strings.ToLower(roleType), "healthcare") {
		summary = fallbackSummaries["fullstack"]
		return summary
	}

	summary, ok := fallbackSummaries[roleType]
	if !ok {
		summary = fmt.Sprintf("Senior %s with 10+ years at Microsoft and Facebook, expert in scalable systems and modern technologies, with experience in healthcare applications through BicycleHealth and Midato Health projects.", roleType)
	}

	return summary
}

// FallbackSkills returns the default skills taxonomy for a role type.
func FallbackSkills(roleType string) (skills Skills) {
	skills, ok := fallbackSkills[roleType]
	if !ok {
		skills = Skills{
			Languages:  []string{"JavaScript", "TypeScript", "Python", "Java"},
			Frameworks: []string{"React.js", "Node.js", "Express.js", "Next.js"},
			Tools:      []string{"Git", "Docker", "PostgreSQL", "GraphQL"},
			Cloud:      []string{"AWS", "Azure", "Google Cloud", "Heroku"},
			Other:      []string{"Agile", "REST APIs", "CI/CD", "Testing"},
		}
	}

	return skills
}
