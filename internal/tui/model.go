// Package tui renders the emote leaderboard and translates key presses into
// query-state actions. Fetches are debounced and keyed: a response whose
// canonical key no longer matches current state is dropped, never applied.
package tui

import (
	"context"
	"log"
	"regexp"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"emotetop/internal/client"
	"emotetop/internal/daterange"
	"emotetop/internal/emotes"
	"emotetop/internal/query"
	"emotetop/internal/refine"
)

const (
	fetchDebounce  = time.Second
	filterDebounce = 250 * time.Millisecond
)

// usernamePattern mirrors the entry-field validation: alphanumeric start,
// word characters after, 3 to 25 total.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]\w{2,24}$`)

// RankFetcher is the one network dependency of the model.
type RankFetcher interface {
	FetchRank(ctx context.Context, q client.Query) emotes.RankPage
}

type inputMode int

const (
	modeBrowse inputMode = iota
	modeFilter           // free-text name filter entry
	modeUsers            // username filter entry
	modeDialog           // date-range preset dialog
)

type fetchDebounceMsg struct{ seq int }

type filterDebounceMsg struct{ seq int }

type rankMsg struct {
	key       string
	requested int
	page      emotes.RankPage
}

type Model struct {
	state   query.State
	fetcher RankFetcher

	width  int
	height int

	mode     inputMode
	showHelp bool
	loading  bool

	// wantKey is the canonical key of the view the user currently wants;
	// fetchSeq invalidates older debounce timers so only the last state
	// change after a quiet second triggers a fetch.
	wantKey  string
	fetchSeq int

	filterInput textinput.Model
	filterSeq   int
	nameFilter  string

	userInput      textinput.Model
	userInputValid bool

	presetCursor int
	cursor       int

	help help.Model
	keys keyMap
}

func NewModel(state query.State, fetcher RankFetcher) Model {
	filter := textinput.New()
	filter.Placeholder = "search name, rank, provider"
	filter.CharLimit = 64

	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 25

	return Model{
		state:          state,
		fetcher:        fetcher,
		loading:        true,
		wantKey:        client.FromState(state).Key(),
		filterInput:    filter,
		userInput:      user,
		userInputValid: true,
		help:           help.New(),
		keys:           defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	// First paint fetches immediately; the debounce only gates subsequent
	// rapid-fire filter and pagination changes.
	return m.fetchCmd(client.FromState(m.state))
}

// dispatch applies one action and, when the canonical fetch key changed,
// arms the fetch debounce. Intermediate keys inside the quiet window are
// discarded by the sequence check.
func (m *Model) dispatch(a query.Action) tea.Cmd {
	m.state = query.Reduce(m.state, a)

	key := client.FromState(m.state).Key()
	if key == m.wantKey {
		return nil
	}
	m.wantKey = key
	m.fetchSeq++
	seq := m.fetchSeq
	return tea.Tick(fetchDebounce, func(time.Time) tea.Msg {
		return fetchDebounceMsg{seq: seq}
	})
}

func (m *Model) fetchCmd(q client.Query) tea.Cmd {
	m.loading = true
	requested := q.Page
	fetcher := m.fetcher
	return func() tea.Msg {
		page := fetcher.FetchRank(context.Background(), q)
		return rankMsg{key: q.Key(), requested: requested, page: page}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case fetchDebounceMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		cmd := m.fetchCmd(client.FromState(m.state))
		return m, cmd

	case filterDebounceMsg:
		if msg.seq != m.filterSeq {
			return m, nil
		}
		m.nameFilter = m.filterInput.Value()
		m.cursor = 0
		return m, nil

	case rankMsg:
		return m.applyRank(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// applyRank commits a fetch result, unless the user has moved on to a
// different view since the request went out.
func (m Model) applyRank(msg rankMsg) (tea.Model, tea.Cmd) {
	if msg.key != client.FromState(m.state).Key() {
		log.Printf("dropping stale rank response for %s", msg.key)
		return m, nil
	}

	m.loading = false
	page, totalPages := client.Reconcile(msg.page.Meta, msg.requested)
	m.state = query.Reduce(m.state, query.SetRows{Rows: msg.page.Data})
	m.state = query.Reduce(m.state, query.SetTotalPages{Total: totalPages})
	m.state = query.Reduce(m.state, query.SetPage{Page: page})
	m.cursor = 0

	// A clamped page is a new canonical view; fetch it after the usual
	// quiet window.
	if key := client.FromState(m.state).Key(); key != m.wantKey {
		m.wantKey = key
		m.fetchSeq++
		seq := m.fetchSeq
		return m, tea.Tick(fetchDebounce, func(time.Time) tea.Msg {
			return fetchDebounceMsg{seq: seq}
		})
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeFilter:
		return m.handleFilterKey(msg)
	case modeUsers:
		return m.handleUsersKey(msg)
	case modeDialog:
		return m.handleDialogKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	var action query.Action

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "right", "l", "n":
		if m.state.Page < m.state.TotalPages {
			action = query.SetPage{Page: m.state.Page + 1}
		}

	case "left", "h", "p":
		if m.state.Page > 1 {
			action = query.SetPage{Page: m.state.Page - 1}
		}

	case "down", "j":
		if m.cursor < len(m.visibleRows())-1 {
			m.cursor++
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "s":
		action = query.SetSort{Sort: nextSort(m.state.Sort)}

	case "1":
		action = query.SetPerPage{PerPage: "10"}
	case "2":
		action = query.SetPerPage{PerPage: "100"}
	case "3":
		action = query.SetPerPage{PerPage: "1000"}

	case "c":
		action = query.SetOnlyCurrent{Value: !m.state.OnlyCurrent}

	case "g":
		action = query.SetGroupByID{Value: !m.state.GroupByID}

	case "T":
		action = query.SetProviderFilter{Providers: toggleProvider(m.state.ProviderFilter, emotes.ProviderTwitch)}
	case "B":
		action = query.SetProviderFilter{Providers: toggleProvider(m.state.ProviderFilter, emotes.ProviderBTTV)}
	case "F":
		action = query.SetProviderFilter{Providers: toggleProvider(m.state.ProviderFilter, emotes.ProviderFFZ)}
	case "S":
		action = query.SetProviderFilter{Providers: toggleProvider(m.state.ProviderFilter, emotes.ProviderSevenTV)}

	case "/":
		m.mode = modeFilter
		m.filterInput.SetValue(m.nameFilter)
		cmd := m.filterInput.Focus()
		return m, cmd

	case "u":
		m.mode = modeUsers
		m.userInput.SetValue("")
		m.userInputValid = true
		cmd := m.userInput.Focus()
		return m, cmd

	case "x":
		if len(m.state.Users) > 0 {
			action = query.SetUsers{Users: nil, Scope: query.ScopeAll}
		}

	case "d":
		m.mode = modeDialog
		m.presetCursor = 0
		m.state = query.Reduce(m.state, query.SetDialogOpen{Open: true})

	case "r":
		cmd := m.fetchCmd(client.FromState(m.state))
		return m, cmd

	case "?":
		m.showHelp = true
	}

	if action != nil {
		cmd := m.dispatch(action)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.filterInput.Blur()
		return m, nil
	case "enter":
		m.mode = modeBrowse
		m.filterInput.Blur()
		m.nameFilter = m.filterInput.Value()
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	before := m.filterInput.Value()
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() == before {
		return m, cmd
	}

	m.filterSeq++
	seq := m.filterSeq
	return m, tea.Batch(cmd, tea.Tick(filterDebounce, func(time.Time) tea.Msg {
		return filterDebounceMsg{seq: seq}
	}))
}

func (m Model) handleUsersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.userInput.Blur()
		return m, nil

	case "enter":
		name := m.userInput.Value()
		if !usernamePattern.MatchString(name) {
			m.userInputValid = false
			return m, nil
		}
		m.mode = modeBrowse
		m.userInput.Blur()

		users := append(append([]string{}, m.state.Users...), name)
		scope := m.state.UserScope
		// First username while inactive flips the scope to exclude.
		if scope == query.ScopeAll {
			scope = query.ScopeExclude
		}
		cmd := m.dispatch(query.SetUsers{Users: users, Scope: scope})
		return m, cmd
	}

	var cmd tea.Cmd
	m.userInput, cmd = m.userInput.Update(msg)
	v := m.userInput.Value()
	m.userInputValid = v == "" || usernamePattern.MatchString(v)
	return m, cmd
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "down", "j":
		if m.presetCursor < len(daterange.Presets)-1 {
			m.presetCursor++
		}
		return m, nil

	case "up", "k":
		if m.presetCursor > 0 {
			m.presetCursor--
		}
		return m, nil

	case "enter":
		sel := daterange.PresetRange(daterange.Presets[m.presetCursor])
		m.state = query.Reduce(m.state, query.SetSelectedRange{Selection: &sel})
		return m.closeDialog()

	case "x":
		m.state = query.Reduce(m.state, query.SetSelectedRange{Selection: nil})
		return m.closeDialog()

	case "esc", "d":
		return m.closeDialog()
	}

	return m, nil
}

// closeDialog commits the pending selection via the reducer and arms the
// fetch debounce when the committed range changed the canonical key.
func (m Model) closeDialog() (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	cmd := m.dispatch(query.SetDialogOpen{Open: false})
	return m, cmd
}

// nextSort cycles rank sorting: none, descending, ascending.
func nextSort(current []query.SortColumn) []query.SortColumn {
	if len(current) == 0 {
		return []query.SortColumn{{Column: "rank", Direction: query.Descending}}
	}
	if current[0].Direction == query.Descending {
		return []query.SortColumn{{Column: "rank", Direction: query.Ascending}}
	}
	return nil
}

func toggleProvider(set []emotes.Provider, p emotes.Provider) []emotes.Provider {
	out := make([]emotes.Provider, 0, len(set)+1)
	removed := false
	for _, q := range set {
		if q == p {
			removed = true
			continue
		}
		out = append(out, q)
	}
	if !removed {
		out = append(out, p)
	}
	return out
}

// visibleRows derives the rows actually rendered from the fetched page.
func (m Model) visibleRows() []emotes.Emote {
	return refine.Apply(m.state.Rows, refine.Options{
		Sort:       m.state.Sort,
		Providers:  m.state.ProviderFilter,
		NameFilter: m.nameFilter,
	})
}
