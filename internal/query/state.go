// Package query holds the single source of truth for what the dashboard
// fetches and how it is displayed. State changes happen in exactly one
// place: the Reduce function, one discrete action at a time.
package query

import (
	"time"

	"emotetop/internal/daterange"
	"emotetop/internal/emotes"
)

// Scope controls how the username list filters rows.
type Scope string

const (
	ScopeAll     Scope = "all"
	ScopeInclude Scope = "include"
	ScopeExclude Scope = "exclude"
)

// Direction orders a sorted column.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// SortColumn is one entry of the active sort specification.
type SortColumn struct {
	Column    string
	Direction Direction
}

// PerPageChoices are the page sizes the upstream accepts.
var PerPageChoices = []string{"10", "100", "1000"}

// DefaultPerPage is used when the caller does not choose a page size.
const DefaultPerPage = "100"

// State is the aggregate of every UI-adjustable query parameter plus the
// rows owned by the most recent fetch. It is created once per channel view
// and mutated only through Reduce.
type State struct {
	Channel string

	Rows       []emotes.Emote
	Sort       []SortColumn
	Page       int
	PerPage    string
	TotalPages int

	// Selection is the pending calendar pick; FilterRange is the canonical
	// committed range that drives fetches. Closing the dialog commits the
	// former into the latter.
	Selection   *daterange.Selection
	FilterRange daterange.Range
	Month       *time.Time
	DialogOpen  bool

	ProviderFilter []emotes.Provider
	OnlyCurrent    bool
	GroupByID      bool

	Users     []string
	UserScope Scope

	// LargePage is a presentation hint: page sizes above 100 collapse row
	// chrome so the terminal can keep up.
	LargePage bool
}

// Seed carries the shareable parameters accepted at startup, mirroring the
// URL query string of a bookmarked view.
type Seed struct {
	Channel     string
	Page        int
	Providers   []string
	From        string
	To          string
	OnlyCurrent bool
}

// NewState builds the initial state for a channel view. Absent a seeded
// date range it backfills a trailing 7-day window; a seeded from/to pair
// replaces it. Seeded providers are parsed leniently: unrecognized tokens
// drop out, and an absent list means the full default set.
func NewState(seed Seed) State {
	sel := daterange.PresetRange(daterange.PresetLast7Days)
	if seed.From != "" && seed.To != "" {
		if from, err := daterange.ParseDay(seed.From); err == nil {
			if to, err := daterange.ParseDay(seed.To); err == nil {
				sel = daterange.Selection{From: &from, To: &to}
			}
		}
	}

	providers := emotes.AllProviders()
	if len(seed.Providers) > 0 {
		providers = emotes.Canonical(emotes.ParseProviders(seed.Providers))
	}

	page := seed.Page
	if page < 1 {
		page = 1
	}

	return State{
		Channel:        seed.Channel,
		Page:           page,
		PerPage:        DefaultPerPage,
		TotalPages:     1,
		Selection:      &sel,
		FilterRange:    daterange.Normalize(sel.From, sel.To),
		ProviderFilter: providers,
		OnlyCurrent:    seed.OnlyCurrent,
		GroupByID:      true,
		UserScope:      ScopeAll,
	}
}
