// Package tagging annotates signal titles with ontology concepts by
// keyword substring matching. It is a pure capability check: a concept
// applies when any of its keywords occurs anywhere in the lowercased
// title.
package tagging

import (
	"sort"
	"strings"
)

// Concept is a named ontology entry with its trigger keywords.
type Concept struct {
	Name     string
	Keywords []string
}

// Tag returns the sorted, duplicate-free names of every concept whose
// keywords match the title. A title matching nothing yields an empty
// (non-nil) slice.
func Tag(title string, concepts []Concept) []string {
	lowered := strings.ToLower(title)
	names := []string{}
	seen := make(map[string]bool)
	for _, c := range concepts {
		if seen[c.Name] {
			continue
		}
		for _, kw := range c.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(lowered, strings.ToLower(kw)) {
				names = append(names, c.Name)
				seen[c.Name] = true
				break
			}
		}
	}
	sort.Strings(names)
	return names
}
