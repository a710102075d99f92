package classify

import (
	"strings"

	"talent-service/internal/models"
)

// categoryRule pairs a keyword list with the category it implies; rules are
// evaluated in declaration order and the first list with a match wins
type categoryRule struct {
	category models.SkillCategory
	keywords []string
}

var categoryRules = []categoryRule{
	{
		category: models.CategoryProgrammingLanguages,
		keywords: []string{
			"python", "javascript", "typescript", "java", "c++", "c#", "go",
			"golang", "ruby", "php", "swift", "kotlin", "scala", "rust", "r",
			"perl", "dart", "elixir",
		},
	},
	{
		category: models.CategoryFrontendFrameworks,
		keywords: []string{
			"react", "angular", "vue", "svelte", "next.js", "nextjs", "nuxt",
			"ember", "jquery", "html", "css", "sass", "tailwind", "bootstrap",
		},
	},
	{
		category: models.CategoryBackendFrameworks,
		keywords: []string{
			"node", "express", "django", "flask", "fastapi", "spring",
			"laravel", "rails", "nest", "gin", "fiber", ".net", "asp.net",
			"symfony",
		},
	},
	{
		category: models.CategoryDevOpsCloud,
		keywords: []string{
			"docker", "kubernetes", "terraform", "ansible", "jenkins", "aws",
			"azure", "gcp", "cloud", "ci/cd", "devops", "helm", "prometheus",
			"grafana", "linux",
		},
	},
	{
		category: models.CategoryDatabases,
		keywords: []string{
			"sql", "mysql", "postgresql", "postgres", "mongodb", "redis",
			"cassandra", "elasticsearch", "oracle", "sqlite", "dynamodb",
			"mariadb", "supabase",
		},
	},
	{
		category: models.CategoryBusinessMarketing,
		keywords: []string{
			"marketing", "seo", "sales", "crm", "salesforce", "analytics",
			"excel", "powerpoint", "management", "communication", "scrum",
			"agile", "jira",
		},
	},
}

// CategorizeSkill maps a free-text skill name to exactly one category.
// Unmatched skills fall into the Other bucket.
func CategorizeSkill(name string) models.SkillCategory {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if keywordMatches(lower, keyword) {
				return rule.category
			}
		}
	}
	return models.CategoryOther
}

// keywordMatches compares a lowercased skill name against a keyword. Keywords
// of one or two characters ("r", "go", "c#") require an exact match so they do
// not fire inside longer names like "docker" or "mongodb".
func keywordMatches(skill, keyword string) bool {
	if len(keyword) <= 2 {
		return skill == keyword
	}
	return strings.Contains(skill, keyword)
}
