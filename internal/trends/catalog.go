package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"talent-service/internal/config"
	"talent-service/internal/llm"
	"talent-service/internal/models"
	"talent-service/internal/repository"
)

const redisCatalogKeyPrefix = "trends:catalog:"

// CatalogService produces the trend catalog served by the /trends endpoint.
// Resolution order: in-memory cache, redis, LLM generation, static fallback.
type CatalogService struct {
	cache     *CatalogCache
	redisRepo *repository.RedisRepo
	llmClient *llm.Client
	redisTTL  time.Duration
}

func NewCatalogService(cache *CatalogCache, redisRepo *repository.RedisRepo, llmClient *llm.Client) *CatalogService {
	return &CatalogService{
		cache:     cache,
		redisRepo: redisRepo,
		llmClient: llmClient,
		redisTTL:  config.ServiceConfig.Trends.RedisCacheExpiry,
	}
}

// GetTrends returns the catalog for a category ("" means all categories),
// optionally reordered by overlap with the caller's skills. Failures never
// propagate; the static catalog is the terminal fallback.
func (s *CatalogService) GetTrends(ctx context.Context, category string, personalized bool, skills []string) []models.Trend {
	key := category
	if key == "" {
		key = "all"
	}

	catalog, stale := s.cache.Get(key)
	if catalog == nil || stale {
		if fresh := s.loadCatalog(ctx, key, category); fresh != nil {
			catalog = fresh
		}
	}
	if catalog == nil {
		catalog = s.staticForCategory(category)
	}

	if personalized && len(skills) > 0 {
		catalog = rankBySkillOverlap(catalog, skills)
	}
	return catalog
}

// InvalidateCatalog drops all cached catalogs, forcing regeneration
func (s *CatalogService) InvalidateCatalog(ctx context.Context, category string) {
	s.cache.Invalidate()
	if s.redisRepo != nil {
		key := category
		if key == "" {
			key = "all"
		}
		if err := s.redisRepo.DeleteKey(ctx, redisCatalogKeyPrefix+key); err != nil {
			log.Printf("Failed to drop redis catalog key: %v", err)
		}
	}
}

func (s *CatalogService) loadCatalog(ctx context.Context, key, category string) []models.Trend {
	// redis first, so one instance's generation feeds the rest
	if s.redisRepo != nil {
		var cached []models.Trend
		if err := s.redisRepo.GetStructCached(ctx, redisCatalogKeyPrefix+key, &cached); err == nil && len(cached) > 0 {
			s.cache.Put(key, cached)
			return cached
		}
	}

	generated, err := s.generateCatalog(category)
	if err != nil {
		log.Printf("Trend catalog generation failed, serving fallback: %v", err)
		return nil
	}

	s.cache.Put(key, generated)
	if s.redisRepo != nil {
		if err := s.redisRepo.SaveStructCached(ctx, redisCatalogKeyPrefix+key, generated, s.redisTTL); err != nil {
			log.Printf("Failed to cache catalog in redis: %v", err)
		}
	}
	return generated
}

func (s *CatalogService) generateCatalog(category string) ([]models.Trend, error) {
	if s.llmClient == nil {
		return nil, fmt.Errorf("LLM client not configured")
	}

	scope := "across all technology areas"
	if category != "" {
		scope = fmt.Sprintf("in the %q category", category)
	}

	systemPrompt := "You are a technology market analyst. Respond with JSON only."
	userPrompt := fmt.Sprintf(`List the 8 most significant current IT trends %s.
Return ONLY a JSON array, each element shaped as:
{"id": "kebab-case-slug", "name": string, "category": string, "popularity": string,
"skills": [string], "job_openings": number, "salary_range": string,
"growth_rate": string, "time_to_learn": string}
The category must be one of: %s.`, scope, strings.Join(allTrendCategoryNames(), ", "))

	raw, err := s.llmClient.Complete(systemPrompt, userPrompt, nil, nil)
	if err != nil {
		return nil, err
	}

	var generated []models.Trend
	if err := json.Unmarshal([]byte(llm.StripJSONFences(raw)), &generated); err != nil {
		return nil, fmt.Errorf("LLM catalog response is not valid JSON: %w", err)
	}
	if len(generated) == 0 {
		return nil, fmt.Errorf("LLM catalog response is empty")
	}
	return generated, nil
}

func (s *CatalogService) staticForCategory(category string) []models.Trend {
	if category == "" {
		return StaticTrendsByCategory(nil)
	}
	filtered := StaticTrendsByCategory([]models.TrendCategory{models.TrendCategory(category)})
	if len(filtered) == 0 {
		return StaticTrendsByCategory(nil)
	}
	return filtered
}

func allTrendCategoryNames() []string {
	return []string{
		string(models.TrendAIMachineLearning), string(models.TrendFrontendDevelopment),
		string(models.TrendBackendDevelopment), string(models.TrendDevOpsCloud),
		string(models.TrendDataEngineering), string(models.TrendMobileDevelopment),
		string(models.TrendCybersecurity), string(models.TrendBlockchain),
		string(models.TrendLowCode), string(models.TrendQuantumComputing),
	}
}

// rankBySkillOverlap reorders trends by descending overlap with the caller's
// skills; the sort is stable so catalog order breaks ties
func rankBySkillOverlap(catalog []models.Trend, skills []string) []models.Trend {
	out := make([]models.Trend, len(catalog))
	copy(out, catalog)
	sort.SliceStable(out, func(i, j int) bool {
		return SkillOverlap(out[i].Skills, skills) > SkillOverlap(out[j].Skills, skills)
	})
	return out
}

// CatalogClient fetches trends from the sibling catalog endpoint. Every
// failure mode (transport error, non-2xx, bad JSON, empty result) returns nil
// so the caller can fall through to the static catalog.
type CatalogClient struct {
	HTTPClient *http.Client
	// ResolveBaseURL returns the catalog endpoint; typically backed by consul
	// with the configured URL as fallback.
	ResolveBaseURL func() string
}

func NewCatalogClient(resolve func() string) *CatalogClient {
	return &CatalogClient{
		HTTPClient:     &http.Client{Timeout: 10 * time.Second},
		ResolveBaseURL: resolve,
	}
}

// FetchTrends queries the catalog endpoint and keeps only the requested
// categories.
func (c *CatalogClient) FetchTrends(categories []models.TrendCategory, skills []string, industry string) []models.Trend {
	base := c.ResolveBaseURL()
	if base == "" {
		return nil
	}

	params := url.Values{}
	if len(categories) > 0 {
		names := make([]string, len(categories))
		for i, cat := range categories {
			names[i] = string(cat)
		}
		params.Set("category", strings.Join(names, ","))
	}
	if len(skills) > 0 {
		params.Set("skills", strings.Join(skills, ","))
		params.Set("personalized", "true")
	}
	if industry != "" {
		params.Set("industry", industry)
	}

	resp, err := c.HTTPClient.Get(base + "?" + params.Encode())
	if err != nil {
		log.Printf("Trend catalog fetch failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Trend catalog endpoint returned status %d", resp.StatusCode)
		return nil
	}

	var payload models.CatalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Trend catalog response is not valid JSON: %v", err)
		return nil
	}

	if len(categories) == 0 {
		return payload.Trends
	}

	var filtered []models.Trend
	for _, trend := range payload.Trends {
		for _, category := range categories {
			if trend.Category == category {
				filtered = append(filtered, trend)
				break
			}
		}
	}
	return filtered
}
