package classify

import (
	"testing"

	"talent-service/internal/models"
)

func TestNormalizeLevel(t *testing.T) {
	testCases := []struct {
		raw      string
		expected models.ProficiencyLevel
	}{
		{"expert", models.LevelExpert},
		{"Expert level", models.LevelExpert},
		{"advanced", models.LevelConfirmed},
		{"Proficient", models.LevelConfirmed},
		{"experienced", models.LevelConfirmed},
		{"confirmed", models.LevelConfirmed},
		{"intermediate", models.LevelIntermediate},
		{"beginner", models.LevelBeginner},
		{"Basic knowledge", models.LevelBeginner},
		{"", models.LevelIntermediate},
		{"ninja rockstar", models.LevelIntermediate}, // unknown descriptor defaults
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got := NormalizeLevel(tc.raw)
			if got != tc.expected {
				t.Errorf("NormalizeLevel(%q) = %q, expected %q", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestNormalizeLevelIdempotent(t *testing.T) {
	// Canonical labels must map to themselves
	levels := []models.ProficiencyLevel{
		models.LevelBeginner, models.LevelIntermediate,
		models.LevelConfirmed, models.LevelExpert,
	}
	for _, level := range levels {
		if got := NormalizeLevel(string(level)); got != level {
			t.Errorf("NormalizeLevel(%q) = %q, expected the same level back", level, got)
		}
	}
}
