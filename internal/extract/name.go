package extract

import (
	"regexp"
	"strings"

	"talent-service/internal/models"
)

var (
	// biography-style summary opener: "Jane Doe is a software engineer..."
	summaryNamePattern = regexp.MustCompile(`^\s*([A-Z][a-z]+(?: [A-Z][a-z]+)+) (?i:is|has|was|works|studied)\b`)

	// a CV line that is exactly two to three capitalized words
	bareNameLinePattern = regexp.MustCompile(`^([A-Z][a-z]+ [A-Z][a-z]+(?: [A-Z][a-z]+)?)$`)

	nameLabelPattern = regexp.MustCompile(`(?i)^(?:full name|name|nom)\s*[:\-]\s*(.+)$`)
)

// ExtractName produces a single best-guess full name from the AI summary, the
// structured contact info, and the raw CV text, in that priority order. The
// email-derived fallback guarantees a non-empty result.
func ExtractName(summary string, contactInfo models.ContactInfo, cvText, email string) string {
	if match := summaryNamePattern.FindStringSubmatch(summary); match != nil {
		return match[1]
	}

	if name := strings.TrimSpace(contactInfo.Name); name != "" {
		return name
	}

	if name := scanLinesForName(cvText); name != "" {
		return name
	}

	return nameFromEmail(email)
}

func scanLinesForName(cvText string) string {
	for _, line := range strings.Split(cvText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if match := nameLabelPattern.FindStringSubmatch(line); match != nil {
			candidate := strings.TrimSpace(match[1])
			if IsLikelyPersonName(candidate) {
				return candidate
			}
			continue
		}

		if match := bareNameLinePattern.FindStringSubmatch(line); match != nil {
			if IsLikelyPersonName(match[1]) {
				return match[1]
			}
		}
	}
	return ""
}

// nameFromEmail derives a readable name from the email local part,
// e.g. "jane.smith@x.com" becomes "Jane smith".
func nameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	local = strings.NewReplacer(".", " ", "_", " ").Replace(local)
	local = strings.TrimSpace(local)
	if local == "" {
		return local
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
