package query

import (
	"sort"
	"strconv"
	"time"

	"github.com/samber/lo"

	"emotetop/internal/daterange"
	"emotetop/internal/emotes"
)

// Action is one discrete state transition. The concrete types below form a
// closed sum; Reduce returns the state unchanged for anything else.
type Action interface{ isAction() }

type SetRows struct{ Rows []emotes.Emote }

type SetSort struct{ Sort []SortColumn }

type SetChannel struct{ Channel string }

type SetPage struct{ Page int }

type SetPerPage struct{ PerPage string }

type SetTotalPages struct{ Total int }

type SetSelectedRange struct{ Selection *daterange.Selection }

type SetMonth struct{ Month *time.Time }

type SetProviderFilter struct{ Providers []emotes.Provider }

type SetDialogOpen struct{ Open bool }

type SetOnlyCurrent struct{ Value bool }

type SetGroupByID struct{ Value bool }

type SetUsers struct {
	Users []string
	Scope Scope
}

func (SetRows) isAction()           {}
func (SetSort) isAction()           {}
func (SetChannel) isAction()        {}
func (SetPage) isAction()           {}
func (SetPerPage) isAction()        {}
func (SetTotalPages) isAction()     {}
func (SetSelectedRange) isAction()  {}
func (SetMonth) isAction()          {}
func (SetProviderFilter) isAction() {}
func (SetDialogOpen) isAction()     {}
func (SetOnlyCurrent) isAction()    {}
func (SetGroupByID) isAction()      {}
func (SetUsers) isAction()          {}

// Reduce applies one action to the state and returns the next state. It is
// pure: no I/O, no clock, and the input state is never mutated in place.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetRows:
		s.Rows = a.Rows
		return s

	case SetSort:
		s.Sort = a.Sort
		return s

	case SetChannel:
		s.Channel = a.Channel
		return s

	case SetPage:
		s.Page = a.Page
		return s

	case SetPerPage:
		s.PerPage = a.PerPage
		n, _ := strconv.Atoi(a.PerPage)
		s.LargePage = n > 100
		return s

	case SetTotalPages:
		s.TotalPages = a.Total
		return s

	case SetSelectedRange:
		s.Selection = a.Selection
		// Jump the calendar cursor to the new range's start so the picker
		// opens on the right month; keep it put when the range is cleared.
		if a.Selection != nil && a.Selection.From != nil {
			month := *a.Selection.From
			s.Month = &month
		}
		return s

	case SetMonth:
		s.Month = a.Month
		return s

	case SetProviderFilter:
		s.ProviderFilter = emotes.Canonical(a.Providers)
		return s

	case SetDialogOpen:
		// Closing commits the pending selection into the canonical filter
		// range; reopening leaves the committed range alone.
		if !a.Open {
			if s.Selection != nil {
				s.FilterRange = daterange.Normalize(s.Selection.From, s.Selection.To)
			} else {
				s.FilterRange = daterange.Range{}
			}
		}
		s.DialogOpen = a.Open
		return s

	case SetOnlyCurrent:
		s.OnlyCurrent = a.Value
		if a.Value {
			// Channel emotes on the streaming platform itself are never
			// historical, so Twitch drops out of the filter. Pessimistic
			// pagination reset pending the refetch.
			s.Page = 1
			s.TotalPages = 1
			s.ProviderFilter = lo.Filter(s.ProviderFilter, func(p emotes.Provider, _ int) bool {
				return p != emotes.ProviderTwitch
			})
			return s
		}
		// Toggling off restores the full default set unconditionally,
		// discarding any manual selection made while the toggle was on.
		s.ProviderFilter = emotes.AllProviders()
		return s

	case SetGroupByID:
		s.GroupByID = a.Value
		return s

	case SetUsers:
		users := lo.Uniq(a.Users)
		sort.Strings(users)
		s.Users = users
		s.UserScope = a.Scope
		// Standing invariant: scope is never include/exclude with an empty
		// list. Re-checked on every username-list mutation.
		if len(users) == 0 {
			s.UserScope = ScopeAll
		}
		return s
	}

	return s
}
