// Package search ranks securities and portfolios against the text typed in
// an autocomplete box.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/kinko/pms/persian"
)

// DefaultLimit is the number of matches shown in the dropdown.
const DefaultLimit = 7

// Scores, highest priority first. A record gets the first one that applies.
const (
	// ScoreSymbolExact is a security whose symbol equals the query.
	ScoreSymbolExact = 100
	// ScoreNameExact is a record whose name equals the query.
	ScoreNameExact = 90
	// ScoreSymbolPrefix is a security whose symbol starts with the query.
	ScoreSymbolPrefix = 80
	// ScoreNamePrefix is a record whose name starts with the query.
	ScoreNamePrefix = 70
	// ScoreSymbolContain is a security whose symbol contains the query.
	ScoreSymbolContain = 50
	// ScoreNameContain is a record whose name contains the query.
	ScoreNameContain = 30
	// ScoreManager is a portfolio whose manager contains the query.
	ScoreManager = 20
)

// ScoredMatch pairs a candidate with its score.
type ScoredMatch struct {
	Record Record
	Score  int
}

// Ranker ranks candidates. The zero value uses DefaultLimit.
type Ranker struct {
	Limit int
}

// Rank scores every candidate against query and returns the best matches
// by descending score. Ties keep candidate order. A blank query matches
// nothing.
func Rank(query string, candidates []Record) []ScoredMatch {
	return Ranker{}.Rank(query, candidates)
}

// Rank is the package Rank with rk.Limit applied.
func (rk Ranker) Rank(query string, candidates []Record) []ScoredMatch {
	q := normalizeQuery(query)
	if q == "" {
		return nil
	}

	limit := rk.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	var out []ScoredMatch
	for _, c := range candidates {
		if s := score(c, q); s > 0 {
			out = append(out, ScoredMatch{Record: c, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Score returns the score of a single record for query, 0 if it does not
// match.
func Score(r Record, query string) int {
	q := normalizeQuery(query)
	if q == "" {
		return 0
	}
	return score(r, q)
}

// score expects q already normalized and non-empty.
func score(r Record, q string) int {
	sym := ""
	if r.IsSecurity() {
		sym = stripSpace(persian.Fold(r.symbol))
	}
	name := persian.Fold(r.name)

	switch {
	case sym != "" && sym == q:
		return ScoreSymbolExact
	case name == q:
		return ScoreNameExact
	case sym != "" && strings.HasPrefix(sym, q):
		return ScoreSymbolPrefix
	case strings.HasPrefix(name, q):
		return ScoreNamePrefix
	case sym != "" && strings.Contains(sym, q):
		return ScoreSymbolContain
	case strings.Contains(name, q):
		return ScoreNameContain
	case r.IsPortfolio() && r.manager != "" && strings.Contains(persian.Fold(r.manager), q):
		return ScoreManager
	}
	return 0
}

func normalizeQuery(query string) string {
	return stripSpace(persian.Fold(strings.TrimSpace(query)))
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
