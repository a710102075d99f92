package services

import (
	"testing"

	"talent-service/internal/classify"
	"talent-service/internal/extract"
	"talent-service/internal/models"
)

func TestHeuristicAssessment(t *testing.T) {
	cvText := "Backend developer working with Python, Docker and Postgresql daily."
	result := heuristicAssessment(cvText, "fallback@example.com")

	if len(result.TechnicalSkills) != 3 {
		t.Fatalf("expected 3 detected skills, got %v", result.TechnicalSkills)
	}
	if result.Role != "Software Engineer" {
		t.Errorf("unexpected default role %q", result.Role)
	}
	if result.ExperienceLevel != "intermediate" {
		t.Errorf("unexpected default experience level %q", result.ExperienceLevel)
	}
	if result.ContactInfo.Email != "fallback@example.com" {
		t.Errorf("expected fallback email, got %q", result.ContactInfo.Email)
	}
}

func TestHeuristicAssessmentPrefersEmailFromCV(t *testing.T) {
	cvText := "Reach me at jane.smith@corp.example.\nPython enthusiast."
	result := heuristicAssessment(cvText, "fallback@example.com")

	if result.ContactInfo.Email != "jane.smith@corp.example" {
		t.Errorf("expected CV email to win, got %q", result.ContactInfo.Email)
	}
}

// Addresses returned by the assessment are authoritative even when they match
// none of the extraction patterns; extraction only fills in when the
// assessment returned nothing.
func TestResolveAddress(t *testing.T) {
	cvText := "Jane Smith\nCasablanca, Morocco\nPython developer."

	tests := []struct {
		name     string
		assessed string
		expected string
	}{
		{"assessed address outside known patterns", "Berlin, Germany", "Berlin, Germany"},
		{"assessed address is trimmed", "  12 Rue de la Paix, Paris  ", "12 Rue de la Paix, Paris"},
		{"empty assessment falls back to extraction", "", "Casablanca, Morocco"},
		{"blank assessment falls back to extraction", "   ", "Casablanca, Morocco"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveAddress(tc.assessed, cvText); got != tc.expected {
				t.Errorf("resolveAddress(%q) = %q, expected %q", tc.assessed, got, tc.expected)
			}
		})
	}
}

// The full extraction pipeline over a realistic CV, with no model available.
func TestOnboardingPipelineHeuristicPath(t *testing.T) {
	cvText := "Jane Smith\nCasablanca, Morocco\nSenior backend engineer.\nSkills: Python, Postgresql, Docker"
	email := "jane.smith@example.com"

	result := heuristicAssessment(cvText, email)

	name := extract.ExtractName(result.Summary, result.ContactInfo, cvText, email)
	if name != "Jane Smith" {
		t.Errorf("extracted name %q, expected %q", name, "Jane Smith")
	}

	address := extract.ExtractAddress(cvText)
	if address != "Casablanca, Morocco" {
		t.Errorf("extracted address %q, expected %q", address, "Casablanca, Morocco")
	}

	expectedCategories := map[string]models.SkillCategory{
		"Python":     models.CategoryProgrammingLanguages,
		"Postgresql": models.CategoryDatabases,
		"Docker":     models.CategoryDevOpsCloud,
	}
	for _, skill := range result.TechnicalSkills {
		expected, ok := expectedCategories[skill.Name]
		if !ok {
			t.Errorf("unexpected detected skill %q", skill.Name)
			continue
		}
		if got := classify.CategorizeSkill(skill.Name); got != expected {
			t.Errorf("CategorizeSkill(%q) = %q, expected %q", skill.Name, got, expected)
		}
		if got := classify.NormalizeLevel(skill.Level); got != models.LevelIntermediate {
			t.Errorf("unlabeled skill %q normalized to %q, expected intermediate", skill.Name, got)
		}
	}
}
