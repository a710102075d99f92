package trends

import (
	"testing"
	"time"

	"talent-service/internal/models"
)

func TestCatalogCache(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCatalogCache(time.Hour, func() time.Time { return current })

	trends := []models.Trend{
		{ID: "platform-engineering", Name: "Platform Engineering", Category: models.TrendDevOpsCloud},
	}

	if got, _ := cache.Get("all"); got != nil {
		t.Fatalf("expected empty cache, got %v", got)
	}

	cache.Put("all", trends)

	got, stale := cache.Get("all")
	if len(got) != 1 || got[0].ID != "platform-engineering" {
		t.Fatalf("unexpected cached value: %v", got)
	}
	if stale {
		t.Error("fresh entry reported as stale")
	}

	// within TTL
	current = current.Add(59 * time.Minute)
	if _, stale := cache.Get("all"); stale {
		t.Error("entry reported stale before TTL elapsed")
	}

	// past TTL the value is still served, flagged stale
	current = current.Add(2 * time.Minute)
	got, stale = cache.Get("all")
	if got == nil {
		t.Fatal("stale entry should still be returned")
	}
	if !stale {
		t.Error("entry past TTL not reported as stale")
	}

	cache.Invalidate()
	if got, _ := cache.Get("all"); got != nil {
		t.Errorf("expected nil after invalidation, got %v", got)
	}
}

func TestCatalogCachePutResetsAge(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCatalogCache(time.Hour, func() time.Time { return current })

	cache.Put("all", []models.Trend{{ID: "a"}})
	current = current.Add(2 * time.Hour)
	cache.Put("all", []models.Trend{{ID: "b"}})

	got, stale := cache.Get("all")
	if stale {
		t.Error("re-put entry reported as stale")
	}
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("expected refreshed value, got %v", got)
	}
}

func TestCatalogCacheReturnsACopy(t *testing.T) {
	cache := NewCatalogCache(time.Hour, nil)
	cache.Put("all", []models.Trend{{ID: "a", Name: "original"}})

	got, _ := cache.Get("all")
	got[0].Name = "mutated"

	again, _ := cache.Get("all")
	if again[0].Name != "original" {
		t.Error("mutating a Get result leaked into the cache")
	}
}
