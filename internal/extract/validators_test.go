package extract

import "testing"

func TestIsValidAddress(t *testing.T) {
	testCases := []struct {
		candidate string
		expected  bool
	}{
		{"12 Main Street", true},
		{"Tunis, Tunisia", true},
		{"Apt 4B, Building 7", true},
		{"Gouvernorat de Sousse", true},
		{"M5V 2T6", true},                // Canadian postal code
		{"Springfield 62704", true},      // US zip
		{"Python, Postgresql", false},    // skills line
		{"React, Angular, Docker", false},
		{"ab", false}, // too short
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.candidate, func(t *testing.T) {
			got := IsValidAddress(tc.candidate)
			if got != tc.expected {
				t.Errorf("IsValidAddress(%q) = %v, expected %v", tc.candidate, got, tc.expected)
			}
		})
	}
}

func TestIsLikelyPersonName(t *testing.T) {
	testCases := []struct {
		candidate string
		expected  bool
	}{
		{"Jane Smith", true},
		{"Mohamed Ali Ben Salah", true},
		{"Acme Solutions", false},       // business entity
		{"Data Engineering", false},     // department
		{"Senior Developer", false},     // job title
		{"Marketing Operations", false}, // business function
		{"Jane", false},                 // single word
		{"One Two Three Four Five", false},
		{"jane smith", false}, // not capitalized
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.candidate, func(t *testing.T) {
			got := IsLikelyPersonName(tc.candidate)
			if got != tc.expected {
				t.Errorf("IsLikelyPersonName(%q) = %v, expected %v", tc.candidate, got, tc.expected)
			}
		})
	}
}

func TestDetectTechSkills(t *testing.T) {
	cvText := "Built services in Python and Golang, deployed with Docker on AWS.\nData in PostgreSQL."
	skills := DetectTechSkills(cvText)

	want := map[string]bool{"Python": true, "Golang": true, "Docker": true, "Aws": true, "Postgresql": true}
	if len(skills) != len(want) {
		t.Fatalf("DetectTechSkills found %v, expected %d skills", skills, len(want))
	}
	for _, skill := range skills {
		if !want[skill] {
			t.Errorf("unexpected skill %q", skill)
		}
	}
}

func TestDetectTechSkillsEmpty(t *testing.T) {
	if skills := DetectTechSkills("Managed a bakery for ten years."); len(skills) != 0 {
		t.Errorf("expected no skills, got %v", skills)
	}
}
