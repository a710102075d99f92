package extract

import (
	"regexp"
	"strings"
)

// addressPatterns are applied in order over the full CV text. Each pattern's
// first capture group is the address candidate.
var addressPatterns = []*regexp.Regexp{
	// labeled fields: "Address: ...", "Location: ...", French equivalents
	regexp.MustCompile(`(?im)^\s*(?:address|location|adresse|residence|résidence|domicile)\s*[:\-]\s*(.+)$`),
	// "City, Country" shaped fragments
	regexp.MustCompile(`(?m)\b([A-Z][a-zA-Z\x{00C0}-\x{00FF}-]+\s*,\s*[A-Z][a-zA-Z\x{00C0}-\x{00FF}-]+)\b`),
	// postal-code-bearing fragments
	regexp.MustCompile(`(?m)^(.*\b\d{4,5}\b.*)$`),
	// street-address-shaped fragments with a leading number
	regexp.MustCompile(`(?im)(\d+\s+[a-z\x{00C0}-\x{00FF}].{0,60}?\b(?:street|st|road|rd|avenue|ave|boulevard|blvd|lane|drive|rue|impasse)\b.*)`),
	// unit/building fragments
	regexp.MustCompile(`(?im)^\s*((?:apt|apartment|suite|unit|building|immeuble|appartement|résidence)\b.+)$`),
}

var (
	sectionStartPattern = regexp.MustCompile(`(?i)(?:contact|personal information|informations personnelles|coordonnées|address|adresse)`)
	sectionEndPattern   = regexp.MustCompile(`(?i)(?:experience|expérience|education|formation|skills|compétences|projects|projets|certifications|languages|langues|summary|profil)`)
)

// ExtractAddress returns a plausible residence address from raw CV text, or
// an empty string when nothing passes validation. Callers prefer an address
// supplied by the AI assessment and use this result only as a fallback.
func ExtractAddress(cvText string) string {
	// pass 1: pattern sweep over the whole text
	for _, pattern := range addressPatterns {
		for _, match := range pattern.FindAllStringSubmatch(cvText, -1) {
			candidate := strings.TrimSpace(match[1])
			if looksLikeContactNoise(candidate) {
				continue
			}
			if IsValidAddress(candidate) {
				return candidate
			}
		}
	}

	// pass 2: isolate the contact/personal-info section and scan its lines
	if section := isolateContactSection(cvText); section != "" {
		for _, line := range strings.Split(section, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || looksLikeContactNoise(line) {
				continue
			}
			if IsValidAddress(line) {
				return line
			}
		}
	}

	// pass 3: last resort, any line mentioning a known city or country
	for _, line := range strings.Split(cvText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || looksLikeContactNoise(line) {
			continue
		}
		lower := strings.ToLower(line)
		for _, place := range cityGazetteer {
			if strings.Contains(lower, place) {
				return line
			}
		}
	}

	return ""
}

// isolateContactSection returns the text between a contact-style section
// header and the next section header or blank line.
func isolateContactSection(cvText string) string {
	lines := strings.Split(cvText, "\n")
	start := -1
	for i, line := range lines {
		if sectionStartPattern.MatchString(line) {
			start = i + 1
			break
		}
	}
	if start < 0 || start >= len(lines) {
		return ""
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" || sectionEndPattern.MatchString(lines[i]) {
			end = i
			break
		}
	}

	return strings.Join(lines[start:end], "\n")
}
