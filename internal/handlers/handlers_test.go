package handlers

import (
	"errors"
	"testing"

	"talent-service/internal/models"
)

func TestDuplicateFocusBodyCarriesExistingFocus(t *testing.T) {
	existing := &models.TrendFocus{
		TrendID:   "platform-engineering",
		TrendName: "Platform Engineering",
		Status:    models.FocusActive,
	}

	body := duplicateFocusBody(existing)

	if body["error"] != "An active focus already exists for this trend" {
		t.Errorf("unexpected error message %v", body["error"])
	}
	if body["trend_focus"] != existing {
		t.Errorf("expected the existing focus in trend_focus, got %v", body["trend_focus"])
	}
}

func TestDuplicateFocusBodyWithoutLookup(t *testing.T) {
	body := duplicateFocusBody(nil)

	if body["error"] == nil {
		t.Error("expected an error message")
	}
	if _, ok := body["trend_focus"]; ok {
		t.Error("a failed lookup should not serialize a null trend_focus")
	}
}

func TestErrorBodyIncludesDetails(t *testing.T) {
	body := errorBody("Failed to log activity", errors.New("connection refused"))

	if body["error"] != "Failed to log activity" {
		t.Errorf("unexpected error message %v", body["error"])
	}
	if body["details"] != "connection refused" {
		t.Errorf("expected underlying error in details, got %v", body["details"])
	}
}

func TestErrorBodyWithoutCause(t *testing.T) {
	body := errorBody("Failed to log activity", nil)

	if _, ok := body["details"]; ok {
		t.Error("no cause should mean no details field")
	}
}
