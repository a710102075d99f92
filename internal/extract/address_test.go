package extract

import "testing"

func TestExtractAddress(t *testing.T) {
	testCases := []struct {
		name     string
		cvText   string
		expected string
	}{
		{
			name:     "labeled address line",
			cvText:   "Jane Smith\nAddress: 12 Rue de la Paix, Tunis\nSkills: Python, Django",
			expected: "12 Rue de la Paix, Tunis",
		},
		{
			name:     "french labeled line",
			cvText:   "Adresse: Immeuble Azur, Sousse\nExperience: backend",
			expected: "Immeuble Azur, Sousse",
		},
		{
			name:     "city country fragment",
			cvText:   "Senior engineer living in Casablanca, Morocco with ten years of experience.",
			expected: "Casablanca, Morocco",
		},
		{
			name:     "postal code line",
			cvText:   "Contact\nSpringfield 62704\nEducation",
			expected: "Springfield 62704",
		},
		{
			name:     "nothing extractable",
			cvText:   "Built billing pipelines and mentored juniors.",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractAddress(tc.cvText)
			if got != tc.expected {
				t.Errorf("ExtractAddress = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestExtractAddressSkipsSkillLines(t *testing.T) {
	// "Python, PostgreSQL" matches the City, Country shape but must be
	// rejected as a skills line; the real location must win
	cvText := "Skills\nPython, Postgresql\nLocation line follows\nTunis, Tunisia"
	got := ExtractAddress(cvText)
	if got != "Tunis, Tunisia" {
		t.Errorf("ExtractAddress = %q, expected %q", got, "Tunis, Tunisia")
	}
}

func TestIsolateContactSection(t *testing.T) {
	cvText := "Summary of profile\nContact\njane@example.com\n12 Main Street\nExperience\nBackend work"
	section := isolateContactSection(cvText)
	if section != "jane@example.com\n12 Main Street" {
		t.Errorf("isolateContactSection = %q", section)
	}
}
