package services

import (
	"testing"
	"time"

	"talent-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func focusAt(trendID string, createdAt time.Time) *models.TrendFocus {
	return &models.TrendFocus{
		ID:        bson.NewObjectID(),
		TrendID:   trendID,
		CreatedAt: createdAt,
	}
}

func TestDuplicateFocusIDs(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	oldest := focusAt("platform-engineering", base)
	second := focusAt("platform-engineering", base.Add(time.Hour))
	third := focusAt("platform-engineering", base.Add(2*time.Hour))
	other := focusAt("zero-trust-security", base.Add(30*time.Minute))

	// input ordered by creation time ascending, as the repository returns it
	duplicates := DuplicateFocusIDs([]*models.TrendFocus{oldest, other, second, third})

	if len(duplicates) != 2 {
		t.Fatalf("expected 2 duplicates, got %d", len(duplicates))
	}
	if duplicates[0] != second.ID || duplicates[1] != third.ID {
		t.Error("expected the two newer focuses to be flagged, keeping the oldest")
	}
}

func TestDuplicateFocusIDsNoDuplicates(t *testing.T) {
	base := time.Now()
	focuses := []*models.TrendFocus{
		focusAt("a", base),
		focusAt("b", base.Add(time.Minute)),
	}
	if duplicates := DuplicateFocusIDs(focuses); len(duplicates) != 0 {
		t.Errorf("expected no duplicates, got %d", len(duplicates))
	}
}

func TestDuplicateFocusIDsEmpty(t *testing.T) {
	if duplicates := DuplicateFocusIDs(nil); len(duplicates) != 0 {
		t.Errorf("expected no duplicates for empty input, got %d", len(duplicates))
	}
}

func TestClampPercent(t *testing.T) {
	testCases := []struct {
		value    int
		expected int
	}{
		{-10, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{140, 100},
	}

	for _, tc := range testCases {
		if got := ClampPercent(tc.value); got != tc.expected {
			t.Errorf("ClampPercent(%d) = %d, expected %d", tc.value, got, tc.expected)
		}
	}
}

func TestBuildSkillChart(t *testing.T) {
	skills := []*models.EngineerSkill{
		{SkillName: "Python"},
		{SkillName: "Go"},
		{SkillName: "PostgreSQL"},
		{SkillName: "Docker"},
		{SkillName: "Interpretive Dance"},
	}

	chart := buildSkillChart(skills)

	counts := make(map[models.SkillCategory]int)
	for _, entry := range chart {
		counts[entry.Category] = entry.SkillCount
	}

	if counts[models.CategoryProgrammingLanguages] != 2 {
		t.Errorf("expected 2 programming languages, got %d", counts[models.CategoryProgrammingLanguages])
	}
	if counts[models.CategoryDatabases] != 1 {
		t.Errorf("expected 1 database skill, got %d", counts[models.CategoryDatabases])
	}
	if counts[models.CategoryDevOpsCloud] != 1 {
		t.Errorf("expected 1 devops skill, got %d", counts[models.CategoryDevOpsCloud])
	}
	if counts[models.CategoryOther] != 1 {
		t.Errorf("expected 1 other skill, got %d", counts[models.CategoryOther])
	}

	// chart follows category declaration order and omits empty buckets
	if len(chart) != 4 {
		t.Errorf("expected 4 chart entries, got %d", len(chart))
	}
	if chart[0].Category != models.CategoryProgrammingLanguages {
		t.Errorf("expected chart to lead with programming languages, got %q", chart[0].Category)
	}
}

func TestBuildSkillChartEmpty(t *testing.T) {
	if chart := buildSkillChart(nil); len(chart) != 0 {
		t.Errorf("expected empty chart, got %v", chart)
	}
}
