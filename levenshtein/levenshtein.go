/*
Package levenshtein provides a bounded edit distance automaton for fuzzy
lookups in a trie.Index.

The automaton matches a key when some prefix of the key lies within the
distance bound of the query, which is what an autocomplete box wants: "cta"
finds "catalogue". Once the whole query has been matched within the bound the
state is accepted and every longer key below it qualifies.
*/
package levenshtein

import (
	"fmt"

	trie "github.com/sarthakjha889/go-fuzzy-trie"
)

const (
	shortQueryDistance  = 0
	mediumQueryDistance = 1
	longQueryDistance   = 2

	mediumQueryThreshold = 3
	longQueryThreshold   = 5
)

// state is one row of the Wagner-Fischer table: row[i] is the edit distance
// between the input consumed so far and query[:i].
type state struct {
	query []rune
	row   []int
	max   int
}

// New returns the initial automaton state for query, tolerating up to
// maxDistance insertions, deletions or substitutions.
// New panics if maxDistance is negative.
func New(query string, maxDistance int) trie.Automaton {
	if maxDistance < 0 {
		panic(fmt.Sprintf("levenshtein: negative distance %d", maxDistance))
	}
	q := []rune(query)
	row := make([]int, len(q)+1)
	for i := range row {
		row[i] = i
	}
	return &state{query: q, row: row, max: maxDistance}
}

// MaxDistanceFor returns the default distance bound for query: queries shorter
// than three runes must match exactly, three or four runes allow one edit and
// longer queries allow two.
func MaxDistanceFor(query string) int {
	n := len([]rune(query))
	switch {
	case n >= longQueryThreshold:
		return longQueryDistance
	case n >= mediumQueryThreshold:
		return mediumQueryDistance
	default:
		return shortQueryDistance
	}
}

func (s *state) IsAccepted() bool {
	return s.row[len(s.query)] <= s.max
}

func (s *state) IsRejected() bool {
	for _, d := range s.row {
		if d <= s.max {
			return false
		}
	}
	return true
}

func (s *state) Step(r rune) trie.Automaton {
	next := make([]int, len(s.row))
	next[0] = s.row[0] + 1
	for i := 1; i < len(next); i++ {
		cost := 1
		if s.query[i-1] == r {
			cost = 0
		}
		next[i] = min(s.row[i-1]+cost, s.row[i]+1, next[i-1]+1)
	}
	// anything past the bound behaves the same, keep the numbers small
	for i, d := range next {
		if d > s.max+1 {
			next[i] = s.max + 1
		}
	}
	return &state{query: s.query, row: next, max: s.max}
}

// Distance returns the edit distance between a and b.
func Distance(a, b string) int {
	var s trie.Automaton = New(a, len([]rune(a))+len([]rune(b)))
	for _, r := range b {
		s = s.Step(r)
	}
	return s.(*state).row[len(s.(*state).query)]
}
