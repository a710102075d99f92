package trends

import (
	"testing"

	"talent-service/internal/models"
)

func sampleCatalog(n int) []models.Trend {
	catalog := make([]models.Trend, 0, n)
	names := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta"}
	for i := 0; i < n && i < len(names); i++ {
		catalog = append(catalog, models.Trend{
			ID:       names[i],
			Name:     names[i],
			Category: models.TrendBackendDevelopment,
			Skills:   []string{"Go", "Kubernetes"},
		})
	}
	return catalog
}

func TestRankCatalogScoreBounds(t *testing.T) {
	recs := RankCatalog(sampleCatalog(7), []string{"Go", "Kubernetes", "Python"}, 5)

	if len(recs) != 5 {
		t.Fatalf("expected 5 recommendations, got %d", len(recs))
	}

	for i, rec := range recs {
		if rec.Rank != i+1 {
			t.Errorf("rec %d has rank %d", i, rec.Rank)
		}
		if rec.RelevanceScore < 50 || rec.RelevanceScore > 100 {
			t.Errorf("rec %d relevance %d out of range", i, rec.RelevanceScore)
		}
		if rec.MarketAlignmentScore > 90 {
			t.Errorf("rec %d market score %d above cap", i, rec.MarketAlignmentScore)
		}
		if rec.CareerImpactScore < 70 || rec.CareerImpactScore > 85 {
			t.Errorf("rec %d career score %d out of range", i, rec.CareerImpactScore)
		}
	}
}

func TestRankCatalogScoreFormula(t *testing.T) {
	catalog := sampleCatalog(2)
	recs := RankCatalog(catalog, []string{"Go"}, 5)

	// first trend: overlap 1 (Go matches Go; Kubernetes does not)
	if recs[0].RelevanceScore != 95 {
		t.Errorf("expected relevance 90+5*1 = 95, got %d", recs[0].RelevanceScore)
	}
	if recs[0].MarketAlignmentScore != 70 {
		t.Errorf("expected market 60+10*1 = 70, got %d", recs[0].MarketAlignmentScore)
	}
	if recs[0].CareerImpactScore != 85 {
		t.Errorf("expected career 85, got %d", recs[0].CareerImpactScore)
	}

	// second trend drops by position
	if recs[1].RelevanceScore != 87 {
		t.Errorf("expected relevance 90-8+5 = 87, got %d", recs[1].RelevanceScore)
	}
	if recs[1].CareerImpactScore != 80 {
		t.Errorf("expected career 85-5 = 80, got %d", recs[1].CareerImpactScore)
	}
}

func TestRankCatalogMatchingAndMissingSkills(t *testing.T) {
	recs := RankCatalog(sampleCatalog(1), []string{"Go"}, 5)

	if len(recs[0].MatchingSkills) != 1 || recs[0].MatchingSkills[0] != "Go" {
		t.Errorf("unexpected matching skills: %v", recs[0].MatchingSkills)
	}
	if len(recs[0].MissingSkills) != 1 || recs[0].MissingSkills[0] != "Kubernetes" {
		t.Errorf("unexpected missing skills: %v", recs[0].MissingSkills)
	}
}

func TestRankCatalogEmptyCatalog(t *testing.T) {
	if recs := RankCatalog(nil, []string{"Go"}, 5); len(recs) != 0 {
		t.Errorf("expected no recommendations from an empty catalog, got %d", len(recs))
	}
}

func TestStaticRecommendations(t *testing.T) {
	recs := staticRecommendations()

	if len(recs) != 3 {
		t.Fatalf("expected 3 static recommendations, got %d", len(recs))
	}

	expectedRelevance := []int{75, 70, 65}
	for i, rec := range recs {
		if rec.RelevanceScore != expectedRelevance[i] {
			t.Errorf("static rec %d relevance %d, expected %d", i, rec.RelevanceScore, expectedRelevance[i])
		}
		if rec.Rank != i+1 {
			t.Errorf("static rec %d rank %d", i, rec.Rank)
		}
		if rec.TrendID == "" || rec.TrendName == "" {
			t.Errorf("static rec %d missing identity", i)
		}
	}
}

func TestSkillOverlap(t *testing.T) {
	testCases := []struct {
		name           string
		trendSkills    []string
		engineerSkills []string
		expected       int
	}{
		{
			name:           "exact matches",
			trendSkills:    []string{"Go", "Kubernetes"},
			engineerSkills: []string{"go", "kubernetes"},
			expected:       2,
		},
		{
			name:           "substring both directions",
			trendSkills:    []string{"PostgreSQL administration"},
			engineerSkills: []string{"PostgreSQL"},
			expected:       1,
		},
		{
			name:           "no overlap",
			trendSkills:    []string{"Rust"},
			engineerSkills: []string{"Excel"},
			expected:       0,
		},
		{
			name:           "empty inputs",
			trendSkills:    nil,
			engineerSkills: []string{"Go"},
			expected:       0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SkillOverlap(tc.trendSkills, tc.engineerSkills)
			if got != tc.expected {
				t.Errorf("SkillOverlap = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestAssembleFallsBackToStatic(t *testing.T) {
	// no catalog client and no LLM: the static chain terminus must produce
	// something rather than an empty set
	r := NewRecommender(nil, nil, 5)
	recs := r.Assemble(RecommendationInput{Skills: []string{"Go"}, Field: "technology"})

	if len(recs) == 0 {
		t.Fatal("expected fallback recommendations")
	}
	if len(recs) > 5 {
		t.Errorf("expected at most 5 recommendations, got %d", len(recs))
	}
	for i, rec := range recs {
		if rec.Rank != i+1 {
			t.Errorf("rec %d has rank %d", i, rec.Rank)
		}
	}
}
