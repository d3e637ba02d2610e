// Package services contains the pure algorithms of the procurement context:
// search-term expansion, site selection and grouped projection. They operate
// only on domain types and never call the backend.
package services

import (
	"strings"

	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

// ExpandTerm returns the distinct case variants of term in the order
// original, lowercase, uppercase.
func ExpandTerm(term string) []string {
	variants := []string{term, strings.ToLower(term), strings.ToUpper(term)}
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		if !containsString(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// ExpandTerms expands every term in order. Duplicates are collapsed within a
// term only; two terms may share a variant and both queries run.
func ExpandTerms(terms []string) []string {
	var out []string
	for _, t := range terms {
		out = append(out, ExpandTerm(t)...)
	}
	return out
}

// NormalizeTerms trims terms and drops empty ones.
func NormalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// DedupeItems keeps the first occurrence of each item identity.
func DedupeItems(items []models.Item) []models.Item {
	seen := make(map[models.ItemKey]bool, len(items))
	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		if seen[it.Key()] {
			continue
		}
		seen[it.Key()] = true
		out = append(out, it)
	}
	return out
}

func containsString(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
