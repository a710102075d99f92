package handlers

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"talent-service/internal/classify"
	"talent-service/internal/middleware"
	"talent-service/internal/models"
	"talent-service/internal/services"
	"talent-service/internal/trends"

	"github.com/gofiber/fiber/v3"
)

type TrendsHandler struct {
	trendService    *services.TrendService
	activityService *services.ActivityService
	catalogService  *trends.CatalogService
}

func NewTrendsHandler(
	trendService *services.TrendService,
	activityService *services.ActivityService,
	catalogService *trends.CatalogService,
) *TrendsHandler {
	return &TrendsHandler{
		trendService:    trendService,
		activityService: activityService,
		catalogService:  catalogService,
	}
}

func (h *TrendsHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/trends", h.GetCatalog)
	app.Get("/trends/dashboard/:engineerID", h.GetDashboard)
	app.Post("/trends/focus", h.AddFocus)
	app.Patch("/trends/focus/:focusID", h.UpdateFocus)
	app.Post("/trends/focus/cleanup/:engineerID", h.CleanupFocuses)
	app.Post("/trends/recommendations/:engineerID", h.RegenerateRecommendations)
	app.Post("/activities", h.LogActivity)
}

func (h *TrendsHandler) GetCatalog(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	category := c.Query("category")
	personalized := c.Query("personalized") == "true"

	var skills []string
	if raw := c.Query("skills"); raw != "" {
		for _, skill := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(skill); trimmed != "" {
				skills = append(skills, trimmed)
			}
		}
	}

	catalog := h.catalogService.GetTrends(ctx, category, personalized, skills)

	// with no explicit category, an industry narrows the catalog to the
	// categories relevant to that field
	if category == "" {
		if industry := c.Query("industry"); industry != "" {
			catalog = filterByCategories(catalog, classify.RelevantCategories(industry))
		}
	}

	return c.JSON(models.CatalogResponse{Trends: catalog})
}

func filterByCategories(catalog []models.Trend, categories []models.TrendCategory) []models.Trend {
	allowed := make(map[models.TrendCategory]bool, len(categories))
	for _, category := range categories {
		allowed[category] = true
	}

	filtered := make([]models.Trend, 0, len(catalog))
	for _, trend := range catalog {
		if allowed[trend.Category] {
			filtered = append(filtered, trend)
		}
	}
	return filtered
}

// canAccessEngineer enforces gateway-forwarded ownership: with no forwarded
// identity the gateway is trusted to have checked already
func canAccessEngineer(c fiber.Ctx, engineerID string) bool {
	currentUserID := c.Get("X-User-ID")
	if currentUserID == "" {
		return true
	}
	permissions := c.Get("X-User-Permissions")
	if strings.Contains(permissions, middleware.AdminPermission) || strings.Contains(permissions, middleware.ManagerPermission) {
		return true
	}
	return currentUserID == engineerID
}

func forbidden(c fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": "You can only access your own data",
	})
}

func (h *TrendsHandler) GetDashboard(c fiber.Ctx) error {
	if !canAccessEngineer(c, c.Params("engineerID")) {
		return forbidden(c)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	dashboard, err := h.trendService.GetDashboard(ctx, c.Params("engineerID"))
	if err != nil {
		return h.mapServiceError(c, err, "Failed to load dashboard")
	}
	return c.JSON(dashboard)
}

func (h *TrendsHandler) AddFocus(c fiber.Ctx) error {
	var req models.AddFocusRequest

	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.EngineerID == "" || req.TrendID == "" || req.TrendName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "engineer_id, trend_id and trend_name are required",
		})
	}
	if !canAccessEngineer(c, req.EngineerID) {
		return forbidden(c)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	focus, err := h.trendService.AddFocus(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateFocus) {
			return c.Status(fiber.StatusConflict).JSON(duplicateFocusBody(focus))
		}
		return h.mapServiceError(c, err, "Failed to add trend focus")
	}

	return c.Status(fiber.StatusCreated).JSON(focus)
}

func (h *TrendsHandler) UpdateFocus(c fiber.Ctx) error {
	var req models.UpdateFocusRequest

	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	focus, err := h.trendService.UpdateFocus(ctx, c.Params("focusID"), &req)
	if err != nil {
		if strings.Contains(err.Error(), "unknown focus status") || strings.Contains(err.Error(), "nothing to update") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return h.mapServiceError(c, err, "Failed to update trend focus")
	}

	return c.JSON(focus)
}

func (h *TrendsHandler) CleanupFocuses(c fiber.Ctx) error {
	if !canAccessEngineer(c, c.Params("engineerID")) {
		return forbidden(c)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	removed, err := h.trendService.CleanupDuplicateFocuses(ctx, c.Params("engineerID"))
	if err != nil {
		return h.mapServiceError(c, err, "Failed to clean up trend focuses")
	}

	return c.JSON(fiber.Map{
		"removed": removed,
	})
}

func (h *TrendsHandler) RegenerateRecommendations(c fiber.Ctx) error {
	if !canAccessEngineer(c, c.Params("engineerID")) {
		return forbidden(c)
	}

	// Recommendation assembly may round-trip to the model
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	recommendations, err := h.trendService.RegenerateRecommendations(ctx, c.Params("engineerID"))
	if err != nil {
		return h.mapServiceError(c, err, "Failed to regenerate recommendations")
	}

	return c.JSON(fiber.Map{
		"recommendations": recommendations,
	})
}

func (h *TrendsHandler) LogActivity(c fiber.Ctx) error {
	var req models.ActivityRequest

	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.EngineerID == "" || req.ActivityType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "engineer_id and activity_type are required",
		})
	}
	if req.DurationMinutes < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "duration_minutes must not be negative",
		})
	}
	if !canAccessEngineer(c, req.EngineerID) {
		return forbidden(c)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	activity, err := h.activityService.LogActivity(ctx, &req)
	if err != nil {
		return h.mapServiceError(c, err, "Failed to log activity")
	}

	return c.Status(fiber.StatusCreated).JSON(activity)
}

func (h *TrendsHandler) mapServiceError(c fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Engineer not found",
		})
	default:
		log.Printf("%s: %v", message, err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody(message, err))
	}
}

// duplicateFocusBody carries the already-active focus so clients can show it
// instead of retrying
func duplicateFocusBody(existing *models.TrendFocus) fiber.Map {
	body := fiber.Map{
		"error": "An active focus already exists for this trend",
	}
	if existing != nil {
		body["trend_focus"] = existing
	}
	return body
}

func errorBody(message string, err error) fiber.Map {
	body := fiber.Map{
		"error": message,
	}
	if err != nil {
		body["details"] = err.Error()
	}
	return body
}
