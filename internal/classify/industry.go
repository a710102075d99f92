package classify

import (
	"strings"

	"talent-service/internal/models"
)

// DefaultField is returned when no industry scores above zero
const DefaultField = "technology"

// industryRule holds the keyword patterns for one industry; declaration order
// is the tie-break order for equal scores
type industryRule struct {
	name     string
	keywords []string
}

var industryRules = []industryRule{
	{"fintech", []string{"payment", "banking", "finance", "trading", "blockchain", "crypto", "stripe", "fraud detection"}},
	{"healthcare", []string{"health", "medical", "hipaa", "clinical", "patient", "pharma", "hl7"}},
	{"ecommerce", []string{"ecommerce", "e-commerce", "shopify", "magento", "woocommerce", "retail", "marketplace"}},
	{"gaming", []string{"game", "unity", "unreal", "3d", "graphics", "shader"}},
	{"automotive", []string{"automotive", "autosar", "can bus", "vehicle", "adas"}},
	{"telecom", []string{"telecom", "5g", "voip", "networking", "cisco"}},
	{"education", []string{"education", "edtech", "e-learning", "lms", "moodle"}},
	{"media", []string{"media", "streaming", "video", "cms", "wordpress", "advertising"}},
	{"cybersecurity", []string{"security", "penetration testing", "siem", "encryption", "firewall", "owasp"}},
	{"data-analytics", []string{"data", "analytics", "spark", "hadoop", "etl", "tableau", "machine learning"}},
	{"iot", []string{"iot", "embedded", "arduino", "raspberry", "sensor", "mqtt"}},
	{"enterprise-software", []string{"erp", "sap", "salesforce", "crm", "sharepoint"}},
}

// ClassifyField scores a skill list against the industry keyword tables and
// returns the best-matching professional field. Matching is deliberately
// permissive: a pair counts when either string contains the other, so
// multi-keyword industries can double-count. Ties resolve to the industry
// declared first; a zero score everywhere yields the technology default.
//
// The profile argument is unused today and retained for future signals
// (education, employers) feeding the same classification.
func ClassifyField(skills []string, profile map[string]any) string {
	_ = profile

	bestField := DefaultField
	bestScore := 0

	for _, rule := range industryRules {
		score := 0
		for _, keyword := range rule.keywords {
			for _, skill := range skills {
				skillLower := strings.ToLower(strings.TrimSpace(skill))
				if skillLower == "" {
					continue
				}
				if strings.Contains(skillLower, keyword) || strings.Contains(keyword, skillLower) {
					score++
				}
			}
		}
		if score > bestScore {
			bestScore = score
			bestField = rule.name
		}
	}

	return bestField
}

// relevantCategories maps each professional field onto the trend categories
// worth surfacing for it
var relevantCategories = map[string][]models.TrendCategory{
	"fintech": {
		models.TrendBlockchain, models.TrendBackendDevelopment,
		models.TrendAIMachineLearning, models.TrendCybersecurity,
	},
	"healthcare": {
		models.TrendAIMachineLearning, models.TrendDataEngineering,
		models.TrendBackendDevelopment, models.TrendCybersecurity,
	},
	"ecommerce": {
		models.TrendFrontendDevelopment, models.TrendBackendDevelopment,
		models.TrendAIMachineLearning, models.TrendMobileDevelopment, models.TrendLowCode,
	},
	"gaming": {
		models.TrendFrontendDevelopment, models.TrendMobileDevelopment,
		models.TrendAIMachineLearning,
	},
	"automotive": {
		models.TrendAIMachineLearning, models.TrendDataEngineering, models.TrendCybersecurity,
	},
	"telecom": {
		models.TrendDevOpsCloud, models.TrendCybersecurity, models.TrendDataEngineering,
	},
	"education": {
		models.TrendFrontendDevelopment, models.TrendAIMachineLearning,
		models.TrendMobileDevelopment, models.TrendLowCode,
	},
	"media": {
		models.TrendFrontendDevelopment, models.TrendAIMachineLearning,
		models.TrendDataEngineering, models.TrendLowCode,
	},
	"cybersecurity": {
		models.TrendCybersecurity, models.TrendDevOpsCloud,
		models.TrendAIMachineLearning, models.TrendBlockchain,
	},
	"data-analytics": {
		models.TrendDataEngineering, models.TrendAIMachineLearning,
		models.TrendDevOpsCloud, models.TrendQuantumComputing,
	},
	"iot": {
		models.TrendDevOpsCloud, models.TrendDataEngineering,
		models.TrendCybersecurity, models.TrendAIMachineLearning,
	},
	"enterprise-software": {
		models.TrendBackendDevelopment, models.TrendDevOpsCloud,
		models.TrendLowCode, models.TrendDataEngineering,
	},
	DefaultField: {
		models.TrendAIMachineLearning, models.TrendFrontendDevelopment,
		models.TrendBackendDevelopment, models.TrendDevOpsCloud,
		models.TrendDataEngineering, models.TrendCybersecurity,
	},
}

// RelevantCategories returns the ordered trend categories applicable to a
// professional field; unknown fields get the technology defaults.
func RelevantCategories(field string) []models.TrendCategory {
	if categories, ok := relevantCategories[field]; ok {
		out := make([]models.TrendCategory, len(categories))
		copy(out, categories)
		return out
	}
	out := make([]models.TrendCategory, len(relevantCategories[DefaultField]))
	copy(out, relevantCategories[DefaultField])
	return out
}
