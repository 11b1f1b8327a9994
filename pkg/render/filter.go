package render

import (
	"strings"

	"github.com/samber/lo"

	"github.com/umputun/newsdeck/pkg/domain"
)

// NormalizeQuery trims and lower-cases free text filter
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Filter returns articles matching the query, preserving their order.
// The input slice is never modified.
func Filter(articles []domain.Article, query string) []domain.Article {
	q := NormalizeQuery(query)
	return lo.Filter(articles, func(a domain.Article, _ int) bool {
		return a.Matches(q)
	})
}
