package query

import (
	"reflect"
	"testing"
	"time"

	"emotetop/internal/daterange"
	"emotetop/internal/emotes"
)

func baseState() State {
	return NewState(Seed{Channel: "fuslie"})
}

func TestNewStateDefaults(t *testing.T) {
	s := baseState()

	if s.Page != 1 {
		t.Errorf("Page = %d, want 1", s.Page)
	}
	if s.PerPage != "100" {
		t.Errorf("PerPage = %q, want 100", s.PerPage)
	}
	if !emotes.IsDefaultSet(s.ProviderFilter) {
		t.Errorf("ProviderFilter = %v, want full default set", s.ProviderFilter)
	}
	if s.UserScope != ScopeAll {
		t.Errorf("UserScope = %q, want all", s.UserScope)
	}
	if !s.GroupByID {
		t.Error("GroupByID = false, want true")
	}
	// Default-empty policy: a trailing 7-day window is backfilled.
	if s.FilterRange.IsZero() {
		t.Error("FilterRange is empty, want a 7-day trailing window")
	}
	if s.Selection == nil || s.Selection.From == nil || s.Selection.To == nil {
		t.Fatal("Selection not populated")
	}
	if days := int(s.Selection.To.Sub(*s.Selection.From).Hours() / 24); days != 6 {
		t.Errorf("selection spans %d day offsets, want 6", days)
	}
}

func TestNewStateSeeded(t *testing.T) {
	s := NewState(Seed{
		Channel:     "fuslie",
		Page:        3,
		Providers:   []string{"bttv", "nonsense", "7tv"},
		From:        "2025-01-01",
		To:          "2025-01-31",
		OnlyCurrent: true,
	})

	if s.Page != 3 {
		t.Errorf("Page = %d, want 3", s.Page)
	}
	want := []emotes.Provider{emotes.ProviderBTTV, emotes.ProviderSevenTV}
	if !reflect.DeepEqual(s.ProviderFilter, want) {
		t.Errorf("ProviderFilter = %v, want %v", s.ProviderFilter, want)
	}
	if !s.OnlyCurrent {
		t.Error("OnlyCurrent = false, want true")
	}
	if s.FilterRange.From != "2025-01-01T00:00:00.000Z" || s.FilterRange.To != "2025-01-31T23:59:59.999Z" {
		t.Errorf("FilterRange = %+v", s.FilterRange)
	}
}

func TestReducePerPageLargeFlag(t *testing.T) {
	tests := []struct {
		perPage string
		want    bool
	}{
		{"10", false},
		{"100", false},
		{"1000", true},
	}
	for _, tt := range tests {
		t.Run(tt.perPage, func(t *testing.T) {
			s := Reduce(baseState(), SetPerPage{PerPage: tt.perPage})
			if s.PerPage != tt.perPage {
				t.Errorf("PerPage = %q, want %q", s.PerPage, tt.perPage)
			}
			if s.LargePage != tt.want {
				t.Errorf("LargePage = %v, want %v", s.LargePage, tt.want)
			}
		})
	}
}

func TestReduceSelectedRangeMovesMonth(t *testing.T) {
	s := baseState()
	cursor := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	s.Month = &cursor

	from := time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 9, 0, 0, 0, 0, time.UTC)
	s = Reduce(s, SetSelectedRange{Selection: &daterange.Selection{From: &from, To: &to}})
	if s.Month == nil || !s.Month.Equal(from) {
		t.Errorf("Month = %v, want %v", s.Month, from)
	}

	// Clearing the selection leaves the cursor where it was.
	s = Reduce(s, SetSelectedRange{Selection: nil})
	if s.Month == nil || !s.Month.Equal(from) {
		t.Errorf("Month after clear = %v, want %v", s.Month, from)
	}
}

func TestReduceDialogCloseCommitsRange(t *testing.T) {
	s := baseState()
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)

	s = Reduce(s, SetDialogOpen{Open: true})
	committed := s.FilterRange
	s = Reduce(s, SetSelectedRange{Selection: &daterange.Selection{From: &from, To: &to}})
	// Picking inside the dialog does not touch the committed range.
	if s.FilterRange != committed {
		t.Errorf("FilterRange changed before dialog close: %+v", s.FilterRange)
	}

	s = Reduce(s, SetDialogOpen{Open: false})
	if s.FilterRange.From != "2025-04-01T00:00:00.000Z" || s.FilterRange.To != "2025-04-07T23:59:59.999Z" {
		t.Errorf("FilterRange = %+v after commit", s.FilterRange)
	}

	// Reopening does not alter the canonical range.
	s = Reduce(s, SetDialogOpen{Open: true})
	if s.FilterRange.From != "2025-04-01T00:00:00.000Z" {
		t.Errorf("FilterRange changed on reopen: %+v", s.FilterRange)
	}
}

func TestReduceDialogCloseWithClearedSelection(t *testing.T) {
	s := baseState()
	s = Reduce(s, SetDialogOpen{Open: true})
	s = Reduce(s, SetSelectedRange{Selection: nil})
	s = Reduce(s, SetDialogOpen{Open: false})
	if !s.FilterRange.IsZero() {
		t.Errorf("FilterRange = %+v, want empty after clearing", s.FilterRange)
	}
}

func TestReduceOnlyCurrentOn(t *testing.T) {
	s := baseState()
	s.Page = 4
	s.TotalPages = 9

	s = Reduce(s, SetOnlyCurrent{Value: true})
	if s.Page != 1 || s.TotalPages != 1 {
		t.Errorf("pagination = %d/%d, want 1/1", s.Page, s.TotalPages)
	}
	want := []emotes.Provider{emotes.ProviderBTTV, emotes.ProviderFFZ, emotes.ProviderSevenTV}
	if !reflect.DeepEqual(s.ProviderFilter, want) {
		t.Errorf("ProviderFilter = %v, want Twitch removed", s.ProviderFilter)
	}
}

// Toggling off restores the full default set even when the user narrowed
// the filter in between. Documented behavior inherited from the reference
// dashboard, preserved deliberately.
func TestReduceOnlyCurrentOffRestoresDefaultProviders(t *testing.T) {
	s := baseState()
	s = Reduce(s, SetOnlyCurrent{Value: true})
	s = Reduce(s, SetProviderFilter{Providers: []emotes.Provider{emotes.ProviderBTTV}})
	s = Reduce(s, SetOnlyCurrent{Value: false})

	if !emotes.IsDefaultSet(s.ProviderFilter) {
		t.Errorf("ProviderFilter = %v, want full default set", s.ProviderFilter)
	}
}

func TestReduceProviderFilterCanonicalized(t *testing.T) {
	s := Reduce(baseState(), SetProviderFilter{
		Providers: []emotes.Provider{emotes.ProviderTwitch, emotes.ProviderBTTV, emotes.ProviderTwitch},
	})
	want := []emotes.Provider{emotes.ProviderBTTV, emotes.ProviderTwitch}
	if !reflect.DeepEqual(s.ProviderFilter, want) {
		t.Errorf("ProviderFilter = %v, want %v", s.ProviderFilter, want)
	}
}

func TestReduceUsersScopeInvariant(t *testing.T) {
	s := Reduce(baseState(), SetUsers{Users: []string{"zoil", "abby", "zoil"}, Scope: ScopeExclude})
	if !reflect.DeepEqual(s.Users, []string{"abby", "zoil"}) {
		t.Errorf("Users = %v, want sorted dedup", s.Users)
	}
	if s.UserScope != ScopeExclude {
		t.Errorf("UserScope = %q, want exclude", s.UserScope)
	}

	// Emptying the list forces scope back to all, whatever it was.
	s = Reduce(s, SetUsers{Users: nil, Scope: ScopeExclude})
	if s.UserScope != ScopeAll {
		t.Errorf("UserScope = %q, want all with empty list", s.UserScope)
	}
	if len(s.Users) != 0 {
		t.Errorf("Users = %v, want empty", s.Users)
	}
}

type bogusAction struct{}

func (bogusAction) isAction() {}

func TestReduceUnknownActionIsNoop(t *testing.T) {
	s := baseState()
	got := Reduce(s, bogusAction{})
	if !reflect.DeepEqual(got, s) {
		t.Error("unknown action changed state")
	}
}
