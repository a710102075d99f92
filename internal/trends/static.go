package trends

import "talent-service/internal/models"

// StaticSampleTrends is the hand-authored fallback catalog served when the AI
// catalog and the sibling endpoint are both unavailable
var StaticSampleTrends = []models.Trend{
	{
		ID:          "generative-ai-engineering",
		Name:        "Generative AI Engineering",
		Category:    models.TrendAIMachineLearning,
		Popularity:  "exploding",
		Skills:      []string{"Python", "LangChain", "Prompt Engineering", "Vector Databases", "PyTorch"},
		JobOpenings: 48000,
		SalaryRange: "$130k - $210k",
		GrowthRate:  "+62% YoY",
		TimeToLearn: "4-6 months",
	},
	{
		ID:          "platform-engineering",
		Name:        "Platform Engineering",
		Category:    models.TrendDevOpsCloud,
		Popularity:  "rising",
		Skills:      []string{"Kubernetes", "Terraform", "Go", "ArgoCD", "Observability"},
		JobOpenings: 31000,
		SalaryRange: "$120k - $190k",
		GrowthRate:  "+41% YoY",
		TimeToLearn: "5-8 months",
	},
	{
		ID:          "modern-data-stack",
		Name:        "Modern Data Stack",
		Category:    models.TrendDataEngineering,
		Popularity:  "established",
		Skills:      []string{"SQL", "dbt", "Airflow", "Snowflake", "Spark"},
		JobOpenings: 27000,
		SalaryRange: "$110k - $175k",
		GrowthRate:  "+28% YoY",
		TimeToLearn: "3-5 months",
	},
	{
		ID:          "edge-serverless",
		Name:        "Edge & Serverless Computing",
		Category:    models.TrendBackendDevelopment,
		Popularity:  "rising",
		Skills:      []string{"TypeScript", "Cloudflare Workers", "AWS Lambda", "Deno", "WebAssembly"},
		JobOpenings: 15000,
		SalaryRange: "$105k - $165k",
		GrowthRate:  "+35% YoY",
		TimeToLearn: "2-4 months",
	},
	{
		ID:          "zero-trust-security",
		Name:        "Zero Trust Security",
		Category:    models.TrendCybersecurity,
		Popularity:  "rising",
		Skills:      []string{"IAM", "OAuth2", "Network Security", "SIEM", "Compliance"},
		JobOpenings: 19000,
		SalaryRange: "$115k - $185k",
		GrowthRate:  "+33% YoY",
		TimeToLearn: "4-7 months",
	},
}

// StaticTrendsByCategory filters the static catalog; an empty filter returns
// the full list
func StaticTrendsByCategory(categories []models.TrendCategory) []models.Trend {
	if len(categories) == 0 {
		out := make([]models.Trend, len(StaticSampleTrends))
		copy(out, StaticSampleTrends)
		return out
	}

	var out []models.Trend
	for _, trend := range StaticSampleTrends {
		for _, category := range categories {
			if trend.Category == category {
				out = append(out, trend)
				break
			}
		}
	}
	return out
}
