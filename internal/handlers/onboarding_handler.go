package handlers

import (
	"context"
	"log"
	"time"

	"talent-service/internal/models"
	"talent-service/internal/services"

	"github.com/gofiber/fiber/v3"
)

type OnboardingHandler struct {
	onboardingService *services.OnboardingService
}

func NewOnboardingHandler(onboardingService *services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
	}
}

func (h *OnboardingHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/onboarding/cv", h.ProcessCV)
}

func (h *OnboardingHandler) ProcessCV(c fiber.Ctx) error {
	var req models.OnboardingRequest

	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.CVText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cv_text is required",
		})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email is required",
		})
	}

	// Generous timeout: the assessment step may round-trip to the model
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	response, err := h.onboardingService.ProcessCV(ctx, &req)
	if err != nil {
		log.Printf("Failed to process CV for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody("Failed to process CV", err))
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}
