package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Search returns the clients whose name, engagement or sector match query,
// in table order. A field matches on a case-insensitive substring, or when
// one of its words is within a small edit distance of the query.
func (c *Catalog) Search(query string) []Client {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Clients()
	}
	budget := typoBudget(q)
	var out []Client
	for _, cl := range c.clients {
		if clientMatches(cl, q, budget) {
			out = append(out, cl)
		}
	}
	return out
}

func clientMatches(cl Client, q string, budget int) bool {
	for _, field := range []string{cl.Name, cl.Engagement, cl.Sector} {
		f := strings.ToLower(field)
		if strings.Contains(f, q) {
			return true
		}
		if budget == 0 {
			continue
		}
		for _, word := range strings.FieldsFunc(f, isWordSep) {
			if levenshtein.ComputeDistance(word, q) <= budget {
				return true
			}
		}
	}
	return false
}

// typoBudget allows one typo from four runes and two from eight; shorter
// queries must match exactly.
func typoBudget(q string) int {
	switch n := utf8.RuneCountInString(q); {
	case n >= 8:
		return 2
	case n >= 4:
		return 1
	default:
		return 0
	}
}

func isWordSep(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
