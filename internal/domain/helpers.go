package domain

import "strings"

// SplitLabels explodes a stored labels field into its tokens. Tokens
// are kept verbatim apart from surrounding whitespace; an empty field
// yields nil.
func SplitLabels(labels Labels) []string {
	if labels == "" {
		return nil
	}
	var tokens []string
	for _, t := range strings.Split(labels, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// LabelSet derives the sidebar label set from the raw labels fields of
// every question, deduplicated, in order of first appearance.
func LabelSet(fields []Labels) []string {
	var set []string
	seen := make(map[string]struct{})
	for _, field := range fields {
		for _, t := range SplitLabels(field) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			set = append(set, t)
		}
	}
	return set
}
