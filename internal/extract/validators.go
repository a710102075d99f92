package extract

import (
	"regexp"
	"strings"
)

// techKeywords flags skills/tooling lines so they are not mistaken for addresses
var techKeywords = []string{
	"python", "javascript", "typescript", "java", "golang", "ruby", "php",
	"swift", "kotlin", "scala", "rust", "html", "css", "react", "angular",
	"vue", "svelte", "node", "django", "flask", "spring", "laravel", "rails",
	"docker", "kubernetes", "terraform", "ansible", "jenkins", "aws", "azure",
	"gcp", "mysql", "postgresql", "mongodb", "redis", "kafka", "graphql",
	"linux", "git", "agile", "scrum", "devops",
}

// cityGazetteer lists city/country names (English and French spellings) used
// by both the address validator and the last-resort line scan
var cityGazetteer = []string{
	"tunis", "tunisia", "tunisie", "sfax", "sousse", "bizerte",
	"casablanca", "rabat", "marrakech", "tangier", "morocco", "maroc",
	"algiers", "alger", "oran", "algeria", "algerie",
	"beirut", "beyrouth", "lebanon", "liban",
	"cairo", "alexandria", "egypt", "egypte",
	"paris", "lyon", "marseille", "toulouse", "france",
	"montreal", "quebec", "toronto", "canada",
	"london", "dubai", "istanbul", "amman", "doha",
}

var streetSuffixes = []string{
	"street", "st.", "road", "rd.", "avenue", "ave", "boulevard", "blvd",
	"lane", "drive", "court", "place", "square", "rue", "impasse",
}

var regionKeywords = []string{
	"city", "state", "country", "province", "region", "district",
	"ville", "pays", "gouvernorat", "wilaya",
}

var unitKeywords = []string{
	"apt", "apartment", "suite", "unit", "floor", "building", "block",
	"immeuble", "appartement", "etage", "résidence", "residence",
}

var (
	usZipPattern       = regexp.MustCompile(`\b\d{5}\b`)
	canadianZipPattern = regexp.MustCompile(`\b[A-Za-z]\d[A-Za-z]\s?\d[A-Za-z]\d\b`)
	ukZipPattern       = regexp.MustCompile(`\b[A-Za-z]{1,2}\d[A-Za-z\d]?\s?\d[A-Za-z]{2}\b`)
	genericZipPattern  = regexp.MustCompile(`\b\d{4,5}\b`)
	leadingNumber      = regexp.MustCompile(`^\d+\s`)
	phoneShapePattern  = regexp.MustCompile(`^\+?\d[\d\s\-]*$`)
	personNamePattern  = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

// IsValidAddress reports whether a candidate string plausibly is a residence
// address rather than a skills line or other CV noise.
func IsValidAddress(candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	if len(candidate) < 3 {
		return false
	}

	lower := strings.ToLower(candidate)
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	// A line dominated by technology terms is a skills line, not an address
	if len(tokens) > 0 {
		techCount := 0
		for _, token := range tokens {
			for _, keyword := range techKeywords {
				if strings.Contains(token, keyword) || strings.Contains(keyword, token) {
					techCount++
					break
				}
			}
		}
		if techCount*2 > len(tokens) {
			return false
		}
	}

	for _, suffix := range streetSuffixes {
		if containsWord(lower, suffix) {
			return true
		}
	}
	for _, keyword := range regionKeywords {
		if containsWord(lower, keyword) {
			return true
		}
	}
	if usZipPattern.MatchString(candidate) || canadianZipPattern.MatchString(candidate) ||
		ukZipPattern.MatchString(candidate) || genericZipPattern.MatchString(candidate) {
		return true
	}
	for _, keyword := range unitKeywords {
		if containsWord(lower, keyword) {
			return true
		}
	}
	if leadingNumber.MatchString(candidate) {
		return true
	}
	for _, place := range cityGazetteer {
		if strings.Contains(lower, place) {
			return true
		}
	}

	return false
}

// name rejection keyword groups: strings that indicate the line is a company,
// department, job title or business function rather than a person
var (
	businessEntityWords = []string{
		"inc", "llc", "ltd", "corp", "company", "group", "solutions",
		"technologies", "consulting", "agency",
	}
	techDepartmentWords = []string{
		"engineering", "development", "software", "data", "cloud",
		"security", "devops", "frontend", "backend", "digital",
	}
	jobTitleWords = []string{
		"engineer", "developer", "manager", "director", "consultant",
		"analyst", "architect", "designer", "lead", "senior", "junior",
		"intern", "specialist", "officer",
	}
	businessFunctionWords = []string{
		"marketing", "sales", "finance", "operations", "recruitment",
		"product", "support", "resources",
	}
)

// IsLikelyPersonName reports whether a candidate string looks like a person's
// full name: 2-4 capitalized words with no business/technical vocabulary.
func IsLikelyPersonName(candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false
	}

	lower := strings.ToLower(candidate)
	for _, group := range [][]string{businessEntityWords, techDepartmentWords, jobTitleWords, businessFunctionWords} {
		for _, keyword := range group {
			if containsWord(lower, keyword) {
				return false
			}
		}
	}

	words := strings.Fields(candidate)
	if len(words) < 2 || len(words) > 4 {
		return false
	}

	for _, word := range words {
		if !personNamePattern.MatchString(word) {
			return false
		}
	}

	return true
}

// DetectTechSkills scans raw CV text for known technology keywords. It backs
// the heuristic assessment used when AI assessment is unavailable.
func DetectTechSkills(cvText string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(cvText), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '+' && r != '#'
	})
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		seen[token] = true
	}

	var found []string
	for _, keyword := range techKeywords {
		if seen[keyword] {
			found = append(found, strings.ToUpper(keyword[:1])+keyword[1:])
		}
	}
	return found
}

// looksLikeContactNoise reports whether a line is an email or phone line
func looksLikeContactNoise(line string) bool {
	if strings.Contains(line, "@") {
		return true
	}
	return phoneShapePattern.MatchString(strings.TrimSpace(line))
}

func containsWord(haystack, word string) bool {
	for _, token := range strings.FieldsFunc(haystack, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '/' || r == '(' || r == ')'
	}) {
		if strings.Trim(token, ".") == strings.Trim(word, ".") || token == word {
			return true
		}
	}
	return false
}
