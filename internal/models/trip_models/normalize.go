package trip_models

import (
	"regexp"
	"strconv"
	"strings"
)

// Keyword tables for enum normalization. Matching is fail-closed: input that
// hits no keyword yields the zero value and the caller re-asks. When an
// utterance mentions several candidates the first mode/tier in table order
// wins, so the outcome is deterministic.
var modeKeywords = []struct {
	Mode     TransportMode
	Keywords []string
}{
	{ModeTrain, []string{"train"}},
	{ModeBus, []string{"bus"}},
	{ModeFlight, []string{"flight", "plane", "air"}},
}

var budgetKeywords = []struct {
	Tier     BudgetTier
	Keywords []string
}{
	{BudgetLuxury, []string{"luxury", "lux"}},
	{BudgetMedium, []string{"medium", "mid-range", "mid range", "med"}},
	{BudgetFriendly, []string{"budget", "cheap", "economical", "low cost"}},
}

func NormalizeTransportMode(raw string) TransportMode {
	cleaned := cleanAnswer(raw)
	if cleaned == "" {
		return ""
	}
	for _, entry := range modeKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(cleaned, kw) {
				return entry.Mode
			}
		}
	}
	return ""
}

func NormalizeBudgetTier(raw string) BudgetTier {
	cleaned := cleanAnswer(raw)
	if cleaned == "" {
		return ""
	}
	for _, entry := range budgetKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(cleaned, kw) {
				return entry.Tier
			}
		}
	}
	return ""
}

var digitsRe = regexp.MustCompile(`\d+`)

// ParsePartySize pulls a head count out of a free-form answer. Zero means
// "could not tell" and keeps the slot unresolved.
func ParsePartySize(raw string) int {
	cleaned := cleanAnswer(raw)
	if cleaned == "" {
		return 0
	}

	if match := digitsRe.FindString(cleaned); match != "" {
		if n, err := strconv.Atoi(match); err == nil && n > 0 {
			return n
		}
		return 0
	}

	switch {
	case strings.Contains(cleaned, "solo"),
		strings.Contains(cleaned, "alone"),
		strings.Contains(cleaned, "just me"):
		return 1
	case strings.Contains(cleaned, "couple"):
		return 2
	}
	return 0
}

func cleanAnswer(raw string) string {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	return strings.Trim(cleaned, `"'`)
}
