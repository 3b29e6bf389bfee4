// Package autocomplete resolves a user-typed stop-name prefix to the
// stops whose display name matches it, case- and diacritic-folded
// (SPEC_FULL.md §6.3).
package autocomplete

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/aleksanderv/transitquery/internal/schedule"
)

// entry is one folded-name/stop pair; Index keeps these sorted by
// Folded so a prefix lookup is a binary search range.
type entry struct {
	Folded string
	Name   string
	Stop   schedule.StopHandle
}

// Index is a read-only, sorted prefix index over stop display names.
// Several stops (e.g. platforms of one station) may share a display
// name, so each Folded value can map to more than one handle.
type Index struct {
	entries []entry
}

// Match is one resolved candidate: a display name and every stop that
// carries it.
type Match struct {
	Name  string
	Stops []schedule.StopHandle
}

var fold = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
	cases.Fold(),
)

// foldName normalises a stop name for matching: NFD decomposition
// splits precomposed letters into base rune plus combining marks, the
// marks are stripped, NFC recomposes what's left, and case folding
// then lowercases it, so "Kraków" and "krakow" both resolve to the
// same prefix range.
func foldName(name string) string {
	folded, _, err := transform.String(fold, name)
	if err != nil {
		return strings.ToLower(name)
	}
	return folded
}

// Build constructs an Index from the dataset's stops.
func Build(stops []schedule.Stop) *Index {
	idx := &Index{entries: make([]entry, 0, len(stops))}
	for _, s := range stops {
		idx.entries = append(idx.entries, entry{
			Folded: foldName(s.Name),
			Name:   s.Name,
			Stop:   s.Handle,
		})
	}
	sort.Slice(idx.entries, func(i, j int) bool {
		if idx.entries[i].Folded != idx.entries[j].Folded {
			return idx.entries[i].Folded < idx.entries[j].Folded
		}
		return idx.entries[i].Name < idx.entries[j].Name
	})
	return idx
}

// Lookup returns every distinct display name whose folded form starts
// with the folded form of prefix, grouped with all stops sharing that
// name, in sorted name order.
func (idx *Index) Lookup(prefix string) []Match {
	folded := foldName(prefix)
	lo := sort.Search(len(idx.entries), func(i int) bool {
		return idx.entries[i].Folded >= folded
	})

	var matches []Match
	var cur *Match
	for i := lo; i < len(idx.entries); i++ {
		e := idx.entries[i]
		if !strings.HasPrefix(e.Folded, folded) {
			break
		}
		if cur != nil && cur.Name == e.Name {
			cur.Stops = append(cur.Stops, e.Stop)
			continue
		}
		matches = append(matches, Match{Name: e.Name, Stops: []schedule.StopHandle{e.Stop}})
		cur = &matches[len(matches)-1]
	}
	return matches
}
