package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSuchMatch is returned by Select for an index outside the current
// result set.
var ErrNoSuchMatch = errors.New("no such match")

// Autocomplete is the state behind a search box and its dropdown. Every
// Input replaces the previous result set. It is meant to be driven from a
// single UI event loop and is not safe for concurrent use.
type Autocomplete struct {
	candidates []Record
	onSelect   func(Record)
	ranker     Ranker

	text    string
	matches []ScoredMatch
	active  bool
}

// Option configures an Autocomplete.
type Option func(*Autocomplete)

// WithRanker ranks the candidates with r.
func WithRanker(r Ranker) Option {
	return func(a *Autocomplete) { a.ranker = r }
}

// WithLimit caps the number of matches shown.
func WithLimit(n int) Option {
	return func(a *Autocomplete) { a.ranker.Limit = n }
}

// NewAutocomplete returns an autocomplete over candidates. onSelect may be
// nil.
func NewAutocomplete(candidates []Record, onSelect func(Record), opts ...Option) *Autocomplete {
	a := &Autocomplete{candidates: candidates, onSelect: onSelect}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Input handles a change of the search box text.
func (a *Autocomplete) Input(text string) []ScoredMatch {
	a.text = text
	a.matches = nil
	a.active = false

	if strings.TrimSpace(text) == "" {
		return nil
	}
	a.matches = a.ranker.Rank(text, a.candidates)
	a.active = len(a.matches) > 0
	return a.matches
}

// Select picks the i-th match of the current result set: the box text
// becomes the record's primary label, the dropdown closes and onSelect is
// called with the record.
func (a *Autocomplete) Select(i int) (Record, error) {
	if i < 0 || i >= len(a.matches) {
		return Record{}, fmt.Errorf("select %d of %d: %w", i, len(a.matches), ErrNoSuchMatch)
	}
	rec := a.matches[i].Record
	a.text = rec.PrimaryLabel()
	a.active = false
	if a.onSelect != nil {
		a.onSelect(rec)
	}
	return rec, nil
}

// Close hides the dropdown, as a click outside the box does.
func (a *Autocomplete) Close() { a.active = false }

// Text is the current search box text.
func (a *Autocomplete) Text() string { return a.text }

// Matches is the current result set, best first.
func (a *Autocomplete) Matches() []ScoredMatch { return a.matches }

// Active reports whether the dropdown is shown.
func (a *Autocomplete) Active() bool { return a.active }
