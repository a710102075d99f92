package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"talent-service/internal/classify"
	"talent-service/internal/event"
	"talent-service/internal/extract"
	"talent-service/internal/llm"
	"talent-service/internal/models"
	"talent-service/internal/repository"
)

// OnboardingService turns a raw CV submission into a persisted engineer
// profile with categorized skills
type OnboardingService struct {
	engineerRepo      *repository.EngineerRepository
	skillRepo         *repository.SkillRepository
	engineerSkillRepo *repository.EngineerSkillRepository
	llmClient         *llm.Client
	publisher         event.Publisher
}

func NewOnboardingService(
	engineerRepo *repository.EngineerRepository,
	skillRepo *repository.SkillRepository,
	engineerSkillRepo *repository.EngineerSkillRepository,
	llmClient *llm.Client,
	publisher event.Publisher,
) *OnboardingService {
	return &OnboardingService{
		engineerRepo:      engineerRepo,
		skillRepo:         skillRepo,
		engineerSkillRepo: engineerSkillRepo,
		llmClient:         llmClient,
		publisher:         publisher,
	}
}

// assessment is the normalized result of the CV assessment step, whether it
// came from the model or from the keyword heuristic
type assessment struct {
	Summary          string                 `json:"summary"`
	Role             string                 `json:"role"`
	ExperienceLevel  string                 `json:"experienceLevel"`
	TechnicalSkills  []models.AssessedSkill `json:"technicalSkills"`
	SoftSkills       []string               `json:"softSkills"`
	Strengths        []string               `json:"strengths"`
	ImprovementAreas []string               `json:"improvementAreas"`
	ContactInfo      models.ContactInfo     `json:"extractedContactInfo"`
}

// ProcessCV assesses the CV, extracts identity fields, upserts the engineer
// keyed by email and replaces their skill associations.
func (s *OnboardingService) ProcessCV(ctx context.Context, req *models.OnboardingRequest) (*models.OnboardingResponse, error) {
	result := s.assessWithLLM(req.CVText)
	if result == nil {
		log.Println("AI assessment unavailable, falling back to keyword heuristics")
		result = heuristicAssessment(req.CVText, req.Email)
	}

	name := req.Name
	if name == "" {
		name = extract.ExtractName(result.Summary, result.ContactInfo, req.CVText, req.Email)
	}

	address := resolveAddress(result.ContactInfo.Address, req.CVText)

	skillNames := make([]string, 0, len(result.TechnicalSkills))
	for _, skill := range result.TechnicalSkills {
		if skill.Name != "" {
			skillNames = append(skillNames, skill.Name)
		}
	}
	field := classify.ClassifyField(skillNames, nil)

	engineer, err := s.engineerRepo.UpsertByEmail(ctx, &models.Engineer{
		Name:              name,
		Email:             req.Email,
		ResidenceAddress:  address,
		PrimaryRole:       result.Role,
		ExperienceLevel:   result.ExperienceLevel,
		ProfessionalField: field,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert engineer: %w", err)
	}

	// Resubmission replaces the whole skill set
	if err := s.engineerSkillRepo.DeleteByEngineer(ctx, engineer.ID); err != nil {
		return nil, fmt.Errorf("failed to clear engineer skills: %w", err)
	}

	skillsCount := 0
	for _, assessed := range result.TechnicalSkills {
		if assessed.Name == "" {
			continue
		}

		category := classify.CategorizeSkill(assessed.Name)
		skill, created, err := s.skillRepo.EnsureSkill(ctx, assessed.Name, category)
		if err != nil {
			log.Printf("Skipping skill %q: %v", assessed.Name, err)
			continue
		}
		if created && s.publisher != nil {
			err := s.publisher.PublishSkillEvent(&event.SkillEvent{
				EventType: event.EventTypeSkillCreated,
				SkillID:   skill.ID.Hex(),
				Name:      skill.Name,
				Category:  string(skill.Category),
				Timestamp: time.Now().Unix(),
			})
			if err != nil {
				log.Printf("Failed to publish skill event for %q: %v", skill.Name, err)
			}
		}

		level := classify.NormalizeLevel(assessed.Level)
		if err := s.engineerSkillRepo.Upsert(ctx, engineer.ID, skill.ID, skill.Name, level); err != nil {
			log.Printf("Skipping skill association %q: %v", assessed.Name, err)
			continue
		}
		skillsCount++
	}

	if s.publisher != nil {
		err := s.publisher.PublishEngineerEvent(&event.EngineerEvent{
			EventType:         event.EventTypeEngineerOnboarded,
			EngineerID:        engineer.ID.Hex(),
			Email:             engineer.Email,
			Name:              engineer.Name,
			ProfessionalField: engineer.ProfessionalField,
			SkillsCount:       skillsCount,
			Timestamp:         time.Now().Unix(),
		})
		if err != nil {
			log.Printf("Failed to publish onboarding event: %v", err)
		}
	}

	return &models.OnboardingResponse{
		Success: true,
		Message: "CV processed and engineer profile saved",
		Employee: models.EmployeeSummary{
			ID:               engineer.ID.Hex(),
			Name:             engineer.Name,
			Email:            engineer.Email,
			Role:             engineer.PrimaryRole,
			ExperienceLevel:  engineer.ExperienceLevel,
			ResidenceAddress: engineer.ResidenceAddress,
			SkillsCount:      skillsCount,
		},
		AssessmentSummary: result.Summary,
		AssessmentData: models.AssessmentData{
			TechnicalSkills:      result.TechnicalSkills,
			SoftSkills:           result.SoftSkills,
			Strengths:            result.Strengths,
			ImprovementAreas:     result.ImprovementAreas,
			ExtractedContactInfo: result.ContactInfo,
		},
	}, nil
}

// assessWithLLM runs the model assessment; any failure returns nil so the
// caller can fall back to heuristics
func (s *OnboardingService) assessWithLLM(cvText string) *assessment {
	if s.llmClient == nil {
		return nil
	}

	systemPrompt := "You are an expert technical recruiter assessing CVs. Respond with JSON only."
	userPrompt := fmt.Sprintf(`Assess the following CV.

Return ONLY a JSON object shaped as:
{"summary": string, "role": string, "experienceLevel": string,
"technicalSkills": [{"name": string, "level": string}],
"softSkills": [string], "strengths": [string], "improvementAreas": [string],
"extractedContactInfo": {"name": string, "email": string, "phone": string, "address": string}}

The summary must start with the candidate's full name followed by a verb,
e.g. "Jane Smith is a senior backend engineer...".
Skill levels must be one of: beginner, intermediate, confirmed, expert.

CV:
%s`, cvText)

	raw, err := s.llmClient.Complete(systemPrompt, userPrompt, nil, nil)
	if err != nil {
		log.Printf("CV assessment call failed: %v", err)
		return nil
	}

	var result assessment
	if err := json.Unmarshal([]byte(llm.StripJSONFences(raw)), &result); err != nil {
		log.Printf("CV assessment response is not valid JSON: %v", err)
		return nil
	}
	if len(result.TechnicalSkills) == 0 && result.Summary == "" {
		return nil
	}
	return &result
}

// resolveAddress trusts any address the assessment returned; pattern
// extraction from the raw CV text only fills the gap when it returned none
func resolveAddress(assessed, cvText string) string {
	if trimmed := strings.TrimSpace(assessed); trimmed != "" {
		return trimmed
	}
	return extract.ExtractAddress(cvText)
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// heuristicAssessment builds a minimal assessment from keyword scanning when
// the model is unavailable
func heuristicAssessment(cvText, fallbackEmail string) *assessment {
	detected := extract.DetectTechSkills(cvText)
	skills := make([]models.AssessedSkill, 0, len(detected))
	for _, name := range detected {
		skills = append(skills, models.AssessedSkill{Name: name})
	}

	contactEmail := fallbackEmail
	if match := emailPattern.FindString(cvText); match != "" {
		contactEmail = match
	}

	return &assessment{
		Summary:          fmt.Sprintf("Automated keyword assessment identified %d technical skills.", len(skills)),
		Role:             "Software Engineer",
		ExperienceLevel:  "intermediate",
		TechnicalSkills:  skills,
		SoftSkills:       []string{},
		Strengths:        []string{},
		ImprovementAreas: []string{},
		ContactInfo: models.ContactInfo{
			Email: contactEmail,
		},
	}
}
