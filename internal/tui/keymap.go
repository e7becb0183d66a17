package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevPage  key.Binding
	NextPage  key.Binding
	Scroll    key.Binding
	Sort      key.Binding
	PerPage   key.Binding
	Filter    key.Binding
	Users     key.Binding
	ClearUser key.Binding
	Dates     key.Binding
	Current   key.Binding
	Combine   key.Binding
	Providers key.Binding
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevPage:  key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "prev page")),
		NextPage:  key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next page")),
		Scroll:    key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "scroll")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort rank")),
		PerPage:   key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "page size")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Users:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "user filter")),
		ClearUser: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear users")),
		Dates:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "date range")),
		Current:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "only current")),
		Combine:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "combine emotes")),
		Providers: key.NewBinding(key.WithKeys("T", "B", "F", "S"), key.WithHelp("T/B/F/S", "providers")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Filter, k.Dates, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevPage, k.NextPage, k.Scroll, k.PerPage},
		{k.Sort, k.Filter, k.Users, k.ClearUser},
		{k.Dates, k.Current, k.Combine, k.Providers},
		{k.Refresh, k.Help, k.Quit},
	}
}
