package classify

import (
	"strings"

	"talent-service/internal/models"
)

// levelRule maps a substring hint to a canonical proficiency level; rules are
// checked in order and the first hit wins
type levelRule struct {
	hint  string
	level models.ProficiencyLevel
}

var levelRules = []levelRule{
	{"expert", models.LevelExpert},
	{"advanced", models.LevelConfirmed},
	{"proficient", models.LevelConfirmed},
	{"experienced", models.LevelConfirmed},
	{"confirmed", models.LevelConfirmed},
	{"intermediate", models.LevelIntermediate},
	{"beginner", models.LevelBeginner},
	{"basic", models.LevelBeginner},
}

// NormalizeLevel maps a free-text proficiency descriptor to one of the four
// canonical levels. Unknown or empty input maps to intermediate; that is the
// documented default, not a failure.
func NormalizeLevel(raw string) models.ProficiencyLevel {
	lower := strings.ToLower(raw)
	for _, rule := range levelRules {
		if strings.Contains(lower, rule.hint) {
			return rule.level
		}
	}
	return models.LevelIntermediate
}
