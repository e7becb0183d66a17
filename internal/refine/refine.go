// Package refine derives the rows actually shown from the fetched page:
// local sort, provider subset filter and fuzzy text search, in that order.
package refine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"emotetop/internal/emotes"
	"emotetop/internal/query"
)

// Options are the refinement inputs. Zero values mean "inactive".
type Options struct {
	Sort       []query.SortColumn
	Providers  []emotes.Provider
	NameFilter string
}

// isDefaultView reports whether refinement would be a no-op.
func (o Options) isDefaultView() bool {
	return len(o.Sort) == 0 && emotes.IsDefaultSet(o.Providers) && o.NameFilter == ""
}

// Apply runs the refinement pass. On the default view it returns the input
// slice unchanged, preserving the server's row order with no copy. In every
// other case the result is a fresh slice; the input is never mutated.
func Apply(rows []emotes.Emote, opts Options) []emotes.Emote {
	if opts.isDefaultView() {
		return rows
	}

	out := make([]emotes.Emote, len(rows))
	copy(out, rows)

	if len(opts.Sort) > 0 {
		sortRows(out, opts.Sort[0])
	}

	if !emotes.IsDefaultSet(opts.Providers) {
		allowed := lo.SliceToMap(opts.Providers, func(p emotes.Provider) (emotes.Provider, struct{}) {
			return p, struct{}{}
		})
		out = lo.Filter(out, func(e emotes.Emote, _ int) bool {
			_, ok := allowed[e.Provider]
			return ok
		})
	}

	if opts.NameFilter != "" {
		out = fuzzyFilter(out, opts.NameFilter)
	}

	return out
}

// sortRows orders by the one sortable numeric field, rank. Ascending keeps
// natural order; descending flips the comparison. The sort is stable so
// equal ranks keep their server order.
func sortRows(rows []emotes.Emote, col query.SortColumn) {
	if col.Column != "rank" {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if col.Direction == query.Descending {
			return rows[i].Rank > rows[j].Rank
		}
		return rows[i].Rank < rows[j].Rank
	})
}

// fuzzyFilter matches the needle against a combined name/rank/provider
// haystack per row and returns the matching rows in match-score order.
func fuzzyFilter(rows []emotes.Emote, needle string) []emotes.Emote {
	targets := make([]string, len(rows))
	for i, e := range rows {
		targets[i] = strings.Join([]string{e.Name, strconv.Itoa(e.Rank), string(e.Provider)}, " ")
	}

	matches := fuzzy.Find(needle, targets)
	out := make([]emotes.Emote, 0, len(matches))
	for _, m := range matches {
		out = append(out, rows[m.Index])
	}
	return out
}
