package jd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/tailorcv/tailorcv/pkg/llm"
)

const (
	// analyzeCharBudget bounds how much of the posting goes into the prompt.
	analyzeCharBudget = 2500
	analyzeMaxTokens  = 1200
	analyzeTemp       = 0.2
)

const analyzeSystemMessage = `You are an expert ATS analyst. Extract job requirements and respond with ONLY valid JSON. Analyze the role type carefully.`

const analyzePromptTemplate = `
Analyze this job description and return ONLY a JSON object:

%s

Required JSON format:
{
    "role_type": "frontend/backend/fullstack/mobile/ai-ml/data-engineer/devops/cloud/qa/product/blockchain",
    "seniority_level": "junior/mid/senior/lead/principal/staff/director",
    "primary_skills": ["skill1", "skill2", "skill3", "skill4", "skill5"],
    "key_technologies": ["tech1", "tech2", "tech3", "tech4", "tech5"],
    "ats_keywords": ["keyword1", "keyword2", "keyword3", "keyword4", "keyword5"],
    "focus_areas": ["area1", "area2", "area3"],
    "industry_context": "healthcare/fintech/ecommerce/enterprise/startup/government/education/gaming/social"
}

Guidelines:
- role_type: Be specific (mobile for React Native/iOS/Android, ai-ml for ML/AI roles, etc.)
- Extract 5 skills and technologies each for better matching
- Include industry-specific keywords if mentioned
- Consider remote/onsite preferences if specified

Return ONLY the JSON object.
`

// Analyzer classifies job postings into requirement profiles.
type Analyzer struct {
	gateway llm.Gateway
}

// NewAnalyzer creates an analyzer backed by the given gateway.
func NewAnalyzer(gateway llm.Gateway) (analyzer *Analyzer) {
	analyzer = &Analyzer{
		gateway: gateway,
	}
	return analyzer
}

// Analyze extracts a requirement profile from a job description. It never
// fails: gateway errors and malformed output both yield the default
// profile.
func (a *Analyzer) Analyze(ctx context.Context, jobText string) (profile Profile) {
	prompt := buildAnalyzePrompt(jobText)

	responseText, err := a.gateway.Complete(ctx, analyzeSystemMessage, prompt, analyzeMaxTokens, analyzeTemp)
	if err != nil {
		logrus.WithField("reason", err.Error()).Warn("job analysis unavailable, using default profile")
		profile = DefaultProfile()
		return profile
	}

	extracted := llm.ExtractJSON(responseText)

	// The result must be a keyed record carrying a role_type; anything
	// else is discarded wholesale.
	parsed := gjson.Parse(extracted)
	if !gjson.Valid(extracted) || !parsed.IsObject() || !parsed.Get("role_type").Exists() {
		logrus.Debug("analysis response missing role_type, using default profile")
		profile = DefaultProfile()
		return profile
	}

	err = json.Unmarshal([]byte(extracted), &profile)
	if err != nil {
		logrus.WithField("reason", err.Error()).Debug("analysis response shape mismatch, using default profile")
		profile = DefaultProfile()
		return profile
	}

	profile.applyDefaults()

	return profile
}

// buildAnalyzePrompt truncates the posting and embeds it in the extraction
// prompt.
func buildAnalyzePrompt(jobText string) (prompt string) {
	truncated := jobText
	if len(truncated) > analyzeCharBudget {
		truncated = truncated[:analyzeCharBudget]
	}

	prompt = fmt.Sprintf(analyzePromptTemplate, truncated)
	return prompt
}
