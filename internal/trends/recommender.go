package trends

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"talent-service/internal/classify"
	"talent-service/internal/llm"
	"talent-service/internal/models"
)

// RecommendationInput carries everything the assembler knows about the
// engineer being recommended to
type RecommendationInput struct {
	Skills      []string
	Field       string
	Goals       []string
	WeeklyHours int
}

// Recommender assembles ranked trend recommendations through a three-stage
// degradation chain: LLM scoring, deterministic overlap ranking, static
// samples. Persistence is the caller's concern.
type Recommender struct {
	catalogClient *CatalogClient
	llmClient     *llm.Client
	max           int
}

func NewRecommender(catalogClient *CatalogClient, llmClient *llm.Client, max int) *Recommender {
	if max <= 0 {
		max = 5
	}
	return &Recommender{
		catalogClient: catalogClient,
		llmClient:     llmClient,
		max:           max,
	}
}

// Assemble produces up to max ranked recommendations. LLM and catalog
// failures degrade silently; only an impossible state (no static data) could
// yield an empty result.
func (r *Recommender) Assemble(input RecommendationInput) []models.TrendRecommendation {
	catalog := r.resolveCatalog(input)

	if recs := r.llmRecommendations(input, catalog); len(recs) > 0 {
		return recs
	}

	recs := RankCatalog(catalog, input.Skills, r.max)
	if len(recs) > 0 {
		return recs
	}

	return staticRecommendations()
}

// resolveCatalog fetches the sibling catalog filtered by the field's relevant
// categories, falling back to the static sample list when the fetch fails or
// filters everything out.
func (r *Recommender) resolveCatalog(input RecommendationInput) []models.Trend {
	categories := classify.RelevantCategories(input.Field)

	if r.catalogClient != nil {
		if catalog := r.catalogClient.FetchTrends(categories, input.Skills, input.Field); len(catalog) > 0 {
			return catalog
		}
	}

	out := make([]models.Trend, len(StaticSampleTrends))
	copy(out, StaticSampleTrends)
	return out
}

// llmRecommendation is the JSON element shape requested from the model
type llmRecommendation struct {
	TrendID               string   `json:"trend_id"`
	TrendName             string   `json:"trend_name"`
	Category              string   `json:"category"`
	RelevanceScore        int      `json:"relevance_score"`
	MarketAlignmentScore  int      `json:"market_alignment_score"`
	CareerImpactScore     int      `json:"career_impact_score"`
	MatchingSkills        []string `json:"matching_skills"`
	MissingSkills         []string `json:"missing_skills"`
	EstimatedLearningTime string   `json:"estimated_learning_time"`
	Reasoning             string   `json:"reasoning"`
}

func (r *Recommender) llmRecommendations(input RecommendationInput, catalog []models.Trend) []models.TrendRecommendation {
	if r.llmClient == nil {
		return nil
	}

	catalogJSON, err := json.Marshal(catalog)
	if err != nil {
		return nil
	}

	systemPrompt := "You are a career development advisor for software engineers. Respond with JSON only."
	userPrompt := fmt.Sprintf(`Rank the best learning investments for this engineer.

Current skills: %s
Professional field: %s
Goals: %s
Weekly learning budget: %d hours

Candidate trends (JSON): %s

Return ONLY a JSON array of at most %d objects, each shaped as:
{"trend_id": string, "trend_name": string, "category": string,
"relevance_score": number, "market_alignment_score": number,
"career_impact_score": number, "matching_skills": [string],
"missing_skills": [string], "estimated_learning_time": string,
"reasoning": string}`,
		strings.Join(input.Skills, ", "), input.Field,
		strings.Join(input.Goals, ", "), input.WeeklyHours,
		string(catalogJSON), r.max)

	raw, err := r.llmClient.Complete(systemPrompt, userPrompt, nil, nil)
	if err != nil {
		log.Printf("LLM recommendation call failed, using deterministic ranking: %v", err)
		return nil
	}

	var parsed []llmRecommendation
	if err := json.Unmarshal([]byte(llm.StripJSONFences(raw)), &parsed); err != nil {
		log.Printf("LLM recommendation response is not valid JSON, using deterministic ranking: %v", err)
		return nil
	}
	if len(parsed) == 0 {
		return nil
	}
	if len(parsed) > r.max {
		parsed = parsed[:r.max]
	}

	recs := make([]models.TrendRecommendation, 0, len(parsed))
	for i, p := range parsed {
		recs = append(recs, models.TrendRecommendation{
			TrendID:               p.TrendID,
			TrendName:             p.TrendName,
			Category:              models.TrendCategory(p.Category),
			RelevanceScore:        p.RelevanceScore,
			MarketAlignmentScore:  p.MarketAlignmentScore,
			CareerImpactScore:     p.CareerImpactScore,
			MatchingSkills:        p.MatchingSkills,
			MissingSkills:         p.MissingSkills,
			EstimatedLearningTime: p.EstimatedLearningTime,
			Reasoning:             p.Reasoning,
			Rank:                  i + 1,
		})
	}
	return recs
}

// SkillOverlap counts trend skills matched by the engineer's skills using a
// case-insensitive substring test in both directions
func SkillOverlap(trendSkills, engineerSkills []string) int {
	overlap := 0
	for _, trendSkill := range trendSkills {
		trendLower := strings.ToLower(strings.TrimSpace(trendSkill))
		if trendLower == "" {
			continue
		}
		for _, engineerSkill := range engineerSkills {
			engineerLower := strings.ToLower(strings.TrimSpace(engineerSkill))
			if engineerLower == "" {
				continue
			}
			if strings.Contains(trendLower, engineerLower) || strings.Contains(engineerLower, trendLower) {
				overlap++
				break
			}
		}
	}
	return overlap
}

// RankCatalog is the deterministic fallback scorer: trends keep catalog
// order, scores derive from position and skill overlap.
func RankCatalog(catalog []models.Trend, skills []string, max int) []models.TrendRecommendation {
	if max <= 0 {
		max = 5
	}

	recs := make([]models.TrendRecommendation, 0, max)
	for i, trend := range catalog {
		if i >= max {
			break
		}

		overlap := SkillOverlap(trend.Skills, skills)
		matching, missing := splitSkills(trend.Skills, skills)

		relevance := 90 - 8*i + 5*overlap
		if relevance < 50 {
			relevance = 50
		}
		market := 60 + 5*i + 10*overlap
		if market > 90 {
			market = 90
		}
		career := 85 - 5*i
		if career < 70 {
			career = 70
		}

		recs = append(recs, models.TrendRecommendation{
			TrendID:               trend.ID,
			TrendName:             trend.Name,
			Category:              trend.Category,
			RelevanceScore:        relevance,
			MarketAlignmentScore:  market,
			CareerImpactScore:     career,
			MatchingSkills:        matching,
			MissingSkills:         missing,
			EstimatedLearningTime: trend.TimeToLearn,
			Rank:                  i + 1,
		})
	}
	return recs
}

// staticRecommendations is the terminal fallback: the first three static
// sample trends with decreasing fixed scores
func staticRecommendations() []models.TrendRecommendation {
	recs := make([]models.TrendRecommendation, 0, 3)
	for i, trend := range StaticSampleTrends {
		if i >= 3 {
			break
		}
		recs = append(recs, models.TrendRecommendation{
			TrendID:               trend.ID,
			TrendName:             trend.Name,
			Category:              trend.Category,
			RelevanceScore:        75 - 5*i,
			MarketAlignmentScore:  70 - 5*i,
			CareerImpactScore:     75 - 3*i,
			MissingSkills:         trend.Skills,
			EstimatedLearningTime: trend.TimeToLearn,
			Rank:                  i + 1,
		})
	}
	return recs
}

func splitSkills(trendSkills, engineerSkills []string) (matching, missing []string) {
	for _, trendSkill := range trendSkills {
		trendLower := strings.ToLower(strings.TrimSpace(trendSkill))
		matched := false
		for _, engineerSkill := range engineerSkills {
			engineerLower := strings.ToLower(strings.TrimSpace(engineerSkill))
			if engineerLower == "" || trendLower == "" {
				continue
			}
			if strings.Contains(trendLower, engineerLower) || strings.Contains(engineerLower, trendLower) {
				matched = true
				break
			}
		}
		if matched {
			matching = append(matching, trendSkill)
		} else {
			missing = append(missing, trendSkill)
		}
	}
	return matching, missing
}
