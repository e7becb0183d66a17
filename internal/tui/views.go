package tui

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"emotetop/internal/daterange"
	"emotetop/internal/emotes"
	"emotetop/internal/query"
)

const (
	nameColWidth = 24
	barWidth     = 18
)

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.filtersView())
	b.WriteString("\n\n")

	switch {
	case m.mode == modeDialog:
		b.WriteString(m.dialogView())
	case m.showHelp:
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	default:
		b.WriteString(m.tableView())
	}

	b.WriteString("\n")
	b.WriteString(m.inputView())
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	brand := headerBrandStyle.Render("emotetop")
	channel := headerStyle.Render(m.state.Channel)
	pages := labelStyle.Render(fmt.Sprintf("page %d/%d · %s per page", m.state.Page, m.state.TotalPages, m.state.PerPage))

	status := ""
	if m.loading {
		status = dimStyle.Render("  fetching…")
	}
	return brand + "  " + channel + "  " + pages + status
}

// filtersView summarizes every active filter on one line.
func (m Model) filtersView() string {
	var parts []string

	if !m.state.FilterRange.IsZero() {
		parts = append(parts, labelStyle.Render("dates ")+valueStyle.Render(
			m.state.FilterRange.From[:10]+" → "+m.state.FilterRange.To[:10]))
	}

	if !emotes.IsDefaultSet(m.state.ProviderFilter) {
		active := lo.SliceToMap(m.state.ProviderFilter, func(p emotes.Provider) (emotes.Provider, struct{}) {
			return p, struct{}{}
		})
		all := emotes.AllProviders()
		badges := make([]string, len(all))
		for i, p := range all {
			if _, ok := active[p]; ok {
				badges[i] = ProviderBadge(p)
			} else {
				badges[i] = toggleOffStyle.Render(string(p))
			}
		}
		parts = append(parts, labelStyle.Render("providers ")+strings.Join(badges, " "))
	}

	if m.state.OnlyCurrent {
		parts = append(parts, toggleOnStyle.Render("only current"))
	}
	if !m.state.GroupByID {
		parts = append(parts, toggleOnStyle.Render("combined"))
	}
	if len(m.state.Users) > 0 {
		parts = append(parts, labelStyle.Render(string(m.state.UserScope)+" ")+
			valueStyle.Render(strings.Join(m.state.Users, ", ")))
	}
	if m.nameFilter != "" {
		parts = append(parts, labelStyle.Render("search ")+valueStyle.Render(m.nameFilter))
	}

	if len(parts) == 0 {
		return dimStyle.Render("no filters")
	}
	return strings.Join(parts, dimStyle.Render("  │  "))
}

func (m Model) tableView() string {
	rows := m.visibleRows()
	if len(rows) == 0 {
		if m.loading {
			return dimStyle.Render("  fetching emotes…")
		}
		return dimStyle.Render("  No emotes for this view. Adjust the filters or press r to refresh.")
	}

	visible := m.tableHeight()
	cursor := clamp(m.cursor, 0, len(rows)-1)
	offset := clamp(cursor-visible/2, 0, max(0, len(rows)-visible))

	var maxUsage int64
	for _, e := range rows {
		if e.UsageCount > maxUsage {
			maxUsage = e.UsageCount
		}
	}

	var b strings.Builder
	rankHeader := "RANK" + sortIndicator(m.state.Sort)
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %6s  %-*s  %-8s  %10s", rankHeader, nameColWidth, "EMOTE", "PROVIDER", "USAGE")))
	b.WriteString("\n")

	end := min(offset+visible, len(rows))
	for i, e := range rows[offset:end] {
		name := fitAnsiWidth(ellipsizeAnsiWidth(e.Name, nameColWidth), nameColWidth)
		line := fmt.Sprintf("  %s  %s  %s  %s",
			rankStyle.Render(fmt.Sprintf("%5d", e.Rank)),
			valueStyle.Render(name),
			fitAnsiWidth(ProviderBadge(e.Provider), 8),
			valueStyle.Render(fmt.Sprintf("%10d", e.UsageCount)),
		)
		// Large pages drop the per-row bar so the terminal keeps up.
		if !m.state.LargePage {
			line += "  " + RenderUsageBar(e.UsageCount, maxUsage, barWidth)
		}
		if offset+i == cursor {
			line = rowSelectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if bar := renderVerticalScrollBarLine(m.width, offset, visible, len(rows)); bar != "" {
		b.WriteString(bar)
		b.WriteString("\n")
	}

	b.WriteString(detailLine(rows[cursor]))
	b.WriteString("\n")
	return b.String()
}

// detailLine shows where the selected emote lives on its provider.
func detailLine(e emotes.Emote) string {
	page := emotes.PageURL(e.Provider, e.ID)
	if page == "" {
		page = e.ImageURL
	}
	if page == "" {
		return ""
	}
	return dimStyle.Render("  " + e.Name + " · " + page)
}

func (m Model) dialogView() string {
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render("Date range"))
	b.WriteString("\n\n")

	for i, p := range daterange.Presets {
		if i == m.presetCursor {
			b.WriteString(presetCursorStyle.Render(p.Label()))
		} else {
			b.WriteString(presetStyle.Render(p.Label()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter apply · x clear · esc close"))
	return dialogStyle.Render(b.String())
}

func (m Model) inputView() string {
	switch m.mode {
	case modeFilter:
		return labelStyle.Render("search: ") + m.filterInput.View() + "\n"
	case modeUsers:
		indicator := inputValidStyle.Render(" ✓")
		if !m.userInputValid {
			indicator = inputInvalidStyle.Render(" ✗ 3-25 word characters, letter or digit first")
		}
		return labelStyle.Render("add user: ") + m.userInput.View() + indicator + "\n"
	}
	return ""
}

func (m Model) footerView() string {
	return helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// tableHeight is the row budget left after header, filters and footer chrome.
func (m Model) tableHeight() int {
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	return h
}

// sortIndicator marks the active rank ordering in the header, if any.
func sortIndicator(sort []query.SortColumn) string {
	if len(sort) == 0 {
		return ""
	}
	if sort[0].Direction == query.Descending {
		return " ↓"
	}
	return " ↑"
}
