package classify

import (
	"testing"

	"talent-service/internal/models"
)

func TestCategorizeSkill(t *testing.T) {
	testCases := []struct {
		skill    string
		expected models.SkillCategory
	}{
		{"Python", models.CategoryProgrammingLanguages},
		{"TypeScript", models.CategoryProgrammingLanguages},
		{"R", models.CategoryProgrammingLanguages},
		{"Go", models.CategoryProgrammingLanguages},
		{"React", models.CategoryFrontendFrameworks},
		{"Tailwind CSS", models.CategoryFrontendFrameworks},
		{"Django", models.CategoryBackendFrameworks},
		{"Spring Boot", models.CategoryBackendFrameworks},
		{"Docker", models.CategoryDevOpsCloud},
		{"Kubernetes", models.CategoryDevOpsCloud},
		{"PostgreSQL", models.CategoryDatabases},
		{"MongoDB", models.CategoryDatabases},
		{"SEO", models.CategoryBusinessMarketing},
		{"Scrum", models.CategoryBusinessMarketing},
		{"Underwater Welding", models.CategoryOther},
		{"", models.CategoryOther},
	}

	for _, tc := range testCases {
		t.Run(tc.skill, func(t *testing.T) {
			got := CategorizeSkill(tc.skill)
			if got != tc.expected {
				t.Errorf("CategorizeSkill(%q) = %q, expected %q", tc.skill, got, tc.expected)
			}
		})
	}
}

func TestCategorizeSkillShortKeywordsDoNotFireInsideLongerNames(t *testing.T) {
	// "Docker" contains "r" and "MongoDB" contains "go"; neither is a
	// programming language
	if got := CategorizeSkill("Docker"); got == models.CategoryProgrammingLanguages {
		t.Errorf("Docker misclassified as %q", got)
	}
	if got := CategorizeSkill("MongoDB"); got == models.CategoryProgrammingLanguages {
		t.Errorf("MongoDB misclassified as %q", got)
	}
}

func TestCategorizeSkillDeterministic(t *testing.T) {
	skills := []string{"Python", "React", "Docker", "PostgreSQL", "Scrum", "Figma"}
	for _, skill := range skills {
		first := CategorizeSkill(skill)
		for i := 0; i < 5; i++ {
			if got := CategorizeSkill(skill); got != first {
				t.Fatalf("CategorizeSkill(%q) changed between calls: %q then %q", skill, first, got)
			}
		}
	}
}
