package triage

import "sort"

// FindRedFlags scans text against the red-flag rule table.
// It returns the labels of all matching rules, deduplicated and sorted
// ascending. Matching is case-insensitive and word-boundary aware. The
// function is total: empty or non-matching input yields an empty result,
// never an error.
func FindRedFlags(text string) []string {
	seen := make(map[string]bool)
	var labels []string

	for _, rule := range redFlagRules {
		if rule.Pattern.MatchString(text) && !seen[rule.Label] {
			seen[rule.Label] = true
			labels = append(labels, rule.Label)
		}
	}

	sort.Strings(labels)
	return labels
}

// SupportSuggestions scans text against the suggestion rule table and
// returns the suggestion for every matching rule, in rule-declaration
// order, without deduplication. When nothing matches it returns exactly
// one element, FallbackSuggestion.
func SupportSuggestions(text string) []string {
	var suggestions []string

	for _, rule := range suggestionRules {
		if rule.Pattern.MatchString(text) {
			suggestions = append(suggestions, rule.Text)
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, FallbackSuggestion)
	}

	return suggestions
}
