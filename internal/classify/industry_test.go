package classify

import (
	"testing"

	"talent-service/internal/models"
)

func TestClassifyField(t *testing.T) {
	testCases := []struct {
		name     string
		skills   []string
		expected string
	}{
		{
			name:     "fintech stack",
			skills:   []string{"payment gateways", "banking systems", "fraud detection"},
			expected: "fintech",
		},
		{
			name:     "healthcare stack",
			skills:   []string{"HL7", "patient records", "clinical trials"},
			expected: "healthcare",
		},
		{
			name:     "data stack",
			skills:   []string{"Spark", "Hadoop", "ETL pipelines"},
			expected: "data-analytics",
		},
		{
			name:     "no industry signal",
			skills:   []string{"Python", "Git"},
			expected: DefaultField,
		},
		{
			name:     "empty skills",
			skills:   nil,
			expected: DefaultField,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyField(tc.skills, nil)
			if got != tc.expected {
				t.Errorf("ClassifyField(%v) = %q, expected %q", tc.skills, got, tc.expected)
			}
		})
	}
}

func TestClassifyFieldTieBreaksToFirstDeclared(t *testing.T) {
	// "5g" scores telecom, "streaming" scores media, one point each; telecom
	// is declared earlier so it must win, and keep winning
	skills := []string{"5g", "streaming"}
	first := ClassifyField(skills, nil)
	if first != "telecom" {
		t.Fatalf("ClassifyField(%v) = %q, expected %q", skills, first, "telecom")
	}
	for i := 0; i < 10; i++ {
		if got := ClassifyField(skills, nil); got != first {
			t.Fatalf("tie-break is unstable: %q then %q", first, got)
		}
	}
}

func TestRelevantCategories(t *testing.T) {
	fintech := RelevantCategories("fintech")
	if len(fintech) == 0 {
		t.Fatal("expected categories for fintech")
	}
	if fintech[0] != models.TrendBlockchain {
		t.Errorf("expected fintech to lead with %q, got %q", models.TrendBlockchain, fintech[0])
	}

	unknown := RelevantCategories("basket-weaving")
	fallback := RelevantCategories(DefaultField)
	if len(unknown) != len(fallback) {
		t.Errorf("unknown field should get the %q defaults", DefaultField)
	}
}

func TestRelevantCategoriesReturnsACopy(t *testing.T) {
	first := RelevantCategories("fintech")
	first[0] = models.TrendQuantumComputing

	second := RelevantCategories("fintech")
	if second[0] == models.TrendQuantumComputing {
		t.Error("mutating the returned slice leaked into the shared table")
	}
}
