package jd

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// mockGateway implements llm.Gateway for tests.
type mockGateway struct {
	response      string
	err           error
	lastSystem    string
	lastPrompt    string
	lastMaxTokens int
	lastTemp      float64
	calls         int
}

func (m *mockGateway) Complete(_ context.Context, system, prompt string, maxTokens int, temperature float64) (text string, err error) {
	m.calls++
	m.lastSystem = system
	m.lastPrompt = prompt
	m.lastMaxTokens = maxTokens
	m.lastTemp = temperature

	if m.err != nil {
		err = m.err
		return text, err
	}

	text = m.response
	return text, err
}

func TestAnalyze(t *testing.T) {
	gw := &mockGateway{
		response: `{
			"role_type": "mobile",
			"seniority_level": "lead",
			"primary_skills": ["React Native", "TypeScript"],
			"key_technologies": ["iOS", "Android"],
			"ats_keywords": ["mobile engineer"],
			"focus_areas": ["performance"],
			"industry_context": "healthcare"
		}`,
	}

	analyzer := NewAnalyzer(gw)
	profile := analyzer.Analyze(context.Background(), "Mobile engineer wanted")

	if profile.RoleType != "mobile" {
		t.Errorf("Expected role_type 'mobile', got '%s'", profile.RoleType)
	}

	if profile.SeniorityLevel != "lead" {
		t.Errorf("Expected seniority 'lead', got '%s'", profile.SeniorityLevel)
	}

	if len(profile.PrimarySkills) != 2 {
		t.Errorf("Expected 2 primary skills, got %d", len(profile.PrimarySkills))
	}

	if profile.IndustryContext != "healthcare" {
		t.Errorf("Expected industry 'healthcare', got '%s'", profile.IndustryContext)
	}

	if gw.lastMaxTokens != 1200 {
		t.Errorf("Expected max tokens 1200, got %d", gw.lastMaxTokens)
	}

	if gw.lastTemp != 0.2 {
		t.Errorf("Expected temperature 0.2, got %v", gw.lastTemp)
	}
}

func TestAnalyzeWithCodeFences(t *testing.T) {
	gw := &mockGateway{
		response: "```json\n{\"role_type\":\"frontend\"}\n```",
	}

	analyzer := NewAnalyzer(gw)
	profile := analyzer.Analyze(context.Background(), "Frontend role")

	if profile.RoleType != "frontend" {
		t.Errorf("Expected role_type 'frontend', got '%s'", profile.RoleType)
	}
}

func TestAnalyzeGatewayError(t *testing.T) {
	gw := &mockGateway{
		err: errors.New("transport failure"),
	}

	analyzer := NewAnalyzer(gw)
	profile := analyzer.Analyze(context.Background(), "Some job")

	expected := DefaultProfile()
	if profile.RoleType != expected.RoleType {
		t.Errorf("Expected default role_type '%s', got '%s'", expected.RoleType, profile.RoleType)
	}

	if len(profile.PrimarySkills) != len(expected.PrimarySkills) {
		t.Errorf("Expected %d default skills, got %d", len(expected.PrimarySkills), len(profile.PrimarySkills))
	}
}

func TestAnalyzeMissingRoleType(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{
			name:     "object without role_type",
			response: `{"seniority_level": "mid"}`,
		},
		{
			name:     "array instead of object",
			response: `["frontend", "backend"]`,
		},
		{
			name:     "plain prose",
			response: "This posting is for a frontend engineer.",
		},
		{
			name:     "empty response",
			response: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &mockGateway{response: tt.response}
			analyzer := NewAnalyzer(gw)

			profile := analyzer.Analyze(context.Background(), "Some job")
			if profile.RoleType != "fullstack" {
				t.Errorf("Expected default profile, got role_type '%s'", profile.RoleType)
			}
		})
	}
}

func TestAnalyzeAppliesDefaults(t *testing.T) {
	gw := &mockGateway{
		response: `{"role_type": "backend"}`,
	}

	analyzer := NewAnalyzer(gw)
	profile := analyzer.Analyze(context.Background(), "Backend role")

	if profile.RoleType != "backend" {
		t.Errorf("Expected role_type 'backend', got '%s'", profile.RoleType)
	}

	if profile.SeniorityLevel != "senior" {
		t.Errorf("Expected default seniority 'senior', got '%s'", profile.SeniorityLevel)
	}

	if profile.IndustryContext != "technology" {
		t.Errorf("Expected default industry 'technology', got '%s'", profile.IndustryContext)
	}
}

func TestAnalyzeTruncatesPosting(t *testing.T) {
	gw := &mockGateway{
		response: `{"role_type": "backend"}`,
	}

	longPosting := strings.Repeat("x", 10000)
	analyzer := NewAnalyzer(gw)
	analyzer.Analyze(context.Background(), longPosting)

	if strings.Contains(gw.lastPrompt, strings.Repeat("x", 2501)) {
		t.Error("Expected posting to be truncated to the character budget")
	}

	if !strings.Contains(gw.lastPrompt, strings.Repeat("x", 2500)) {
		t.Error("Expected the first 2500 characters to be present")
	}
}
