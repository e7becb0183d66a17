package client

import (
	"net/url"
	"strconv"
	"strings"

	"emotetop/internal/emotes"
	"emotetop/internal/query"
)

// Query is the canonical form of one rank request. Two queries with the
// same Key() are the same request: the cache, the in-flight coalescer and
// the staleness check all compare keys, never struct fields.
type Query struct {
	Channel     string
	Page        int
	PerPage     string
	Providers   []emotes.Provider
	From        string
	To          string
	OnlyCurrent bool
	GroupByName bool
	UserScope   query.Scope
	Users       []string
}

// FromState projects the fetch-relevant parameters out of the UI state.
// Ephemeral flags (dialog, calendar cursor, large-page hint) do not affect
// what is fetched and are dropped here.
func FromState(s query.State) Query {
	return Query{
		Channel:     s.Channel,
		Page:        s.Page,
		PerPage:     s.PerPage,
		Providers:   emotes.Canonical(s.ProviderFilter),
		From:        s.FilterRange.From,
		To:          s.FilterRange.To,
		OnlyCurrent: s.OnlyCurrent,
		GroupByName: !s.GroupByID,
		UserScope:   s.UserScope,
		Users:       s.Users,
	}
}

// Values builds the outgoing query string. Keys are omitted at their
// defaults: providers when the set equals the full default, from/to unless
// both are present, onlyCurrentEmotes unless true, groupBy unless combining
// by name, userScope/users unless the scope is active with a non-empty list.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage != "" {
		v.Set("perPage", q.PerPage)
	}
	if len(q.Providers) > 0 && !emotes.IsDefaultSet(q.Providers) {
		v.Set("providers", emotes.Join(q.Providers))
	}
	if q.From != "" && q.To != "" {
		v.Set("from", q.From)
		v.Set("to", q.To)
	}
	if q.OnlyCurrent {
		v.Set("onlyCurrentEmotes", "true")
	}
	if q.GroupByName {
		v.Set("groupBy", "name")
	}
	if q.UserScope != query.ScopeAll && len(q.Users) > 0 {
		v.Set("userScope", string(q.UserScope))
		v.Set("users", strings.Join(q.Users, ","))
	}
	return v
}

// Key is the canonical identity of this request, stable across field
// ordering. Encode sorts keys, so equal queries always collide.
func (q Query) Key() string {
	return q.Channel + "?" + q.Values().Encode()
}
