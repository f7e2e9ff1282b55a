package entity

import "strings"

// Categories are free-text labels correlated by equality across expenses and
// budgets, not foreign keys. All comparison happens on the normalized form so
// a stray space can't split a category in two; case is preserved and
// significant ("Food" and "food" are different categories).

// NormalizeCategory returns the canonical form of a category label.
func NormalizeCategory(category string) string {
	return strings.TrimSpace(category)
}
