package extract

import (
	"testing"

	"talent-service/internal/models"
)

func TestExtractNameFromSummary(t *testing.T) {
	testCases := []struct {
		name     string
		summary  string
		expected string
	}{
		{
			name:     "biography opener",
			summary:  "Jane Smith is a Senior Backend Engineer based in Casablanca, Morocco.",
			expected: "Jane Smith",
		},
		{
			name:     "three word name",
			summary:  "Mohamed Ali Ben has ten years of experience in telecom.",
			expected: "Mohamed Ali Ben",
		},
		{
			name:     "verb case insensitive",
			summary:  "Omar Haddad WORKS as a data engineer.",
			expected: "Omar Haddad",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractName(tc.summary, models.ContactInfo{}, "", "someone@example.com")
			if got != tc.expected {
				t.Errorf("ExtractName = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestExtractNamePriorityOrder(t *testing.T) {
	contact := models.ContactInfo{Name: "Leila Trabelsi"}

	// summary wins over contact info
	got := ExtractName("Sami Gharbi is a developer.", contact, "", "x@example.com")
	if got != "Sami Gharbi" {
		t.Errorf("expected summary name to win, got %q", got)
	}

	// contact info wins over CV lines
	got = ExtractName("no name here", contact, "Karim Jaziri\nSoftware things", "x@example.com")
	if got != "Leila Trabelsi" {
		t.Errorf("expected contact name to win, got %q", got)
	}
}

func TestExtractNameFromCVLines(t *testing.T) {
	testCases := []struct {
		name     string
		cvText   string
		expected string
	}{
		{
			name:     "labeled name line",
			cvText:   "Email: a@b.com\nName: John Doe\nPhone: 123",
			expected: "John Doe",
		},
		{
			name:     "bare capitalized line",
			cvText:   "Karim Jaziri\n5 years of backend work",
			expected: "Karim Jaziri",
		},
		{
			name:     "company line is rejected",
			cvText:   "Acme Solutions\nBuilt internal tooling",
			expected: "", // falls through to the email path
		},
		{
			name:     "job title line is rejected",
			cvText:   "Senior Developer\nMore text",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := scanLinesForName(tc.cvText)
			if got != tc.expected {
				t.Errorf("scanLinesForName = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestExtractNameEmailFallback(t *testing.T) {
	testCases := []struct {
		email    string
		expected string
	}{
		{"jane.smith@example.com", "Jane smith"},
		{"omar_haddad@example.com", "Omar haddad"},
		{"bob@example.com", "Bob"},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			got := ExtractName("", models.ContactInfo{}, "", tc.email)
			if got != tc.expected {
				t.Errorf("ExtractName fallback = %q, expected %q", got, tc.expected)
			}
		})
	}
}
