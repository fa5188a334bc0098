package cache

import (
	"sort"
	"strings"
)

// AutoSource is the key source value for requests without a fixed
// source language.
const AutoSource = "auto"

// NormalizeText folds input into its canonical cache form: lowercased
// with runs of whitespace collapsed to single spaces.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Key identifies one distinct translation request. Requests that differ
// only in casing, surrounding whitespace, or target order map to the
// same key.
type Key struct {
	Source  string
	Targets []string
	Text    string
}

// NewKey builds the canonical key for a request. An empty source stands
// for automatic detection. Targets are deduplicated and sorted so the
// set, not the order, determines the key.
func NewKey(source string, targets []string, text string) Key {
	if source == "" {
		source = AutoSource
	}
	seen := make(map[string]bool, len(targets))
	canonical := make([]string, 0, len(targets))
	for _, target := range targets {
		if target == "" || seen[target] {
			continue
		}
		seen[target] = true
		canonical = append(canonical, target)
	}
	sort.Strings(canonical)
	return Key{Source: source, Targets: canonical, Text: NormalizeText(text)}
}

func (k Key) targetList() string {
	return strings.Join(k.Targets, ",")
}
