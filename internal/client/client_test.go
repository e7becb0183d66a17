package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"emotetop/internal/emotes"
	"emotetop/internal/query"
)

func TestQueryValuesOmitsDefaults(t *testing.T) {
	q := FromState(query.NewState(query.Seed{Channel: "fuslie"}))
	q.PerPage = "10"
	v := q.Values()

	if v.Has("providers") {
		t.Errorf("providers key present for default set: %q", v.Get("providers"))
	}
	if got := v.Get("page"); got != "1" {
		t.Errorf("page = %q, want 1", got)
	}
	if got := v.Get("perPage"); got != "10" {
		t.Errorf("perPage = %q, want 10", got)
	}
	if v.Has("onlyCurrentEmotes") || v.Has("groupBy") || v.Has("userScope") || v.Has("users") {
		t.Errorf("default-valued keys leaked into query: %v", v)
	}
	// The backfilled 7-day window rides along as a date filter.
	if !v.Has("from") || !v.Has("to") {
		t.Error("from/to missing for the default trailing window")
	}
}

func TestQueryValuesActiveFilters(t *testing.T) {
	q := Query{
		Channel:     "fuslie",
		Page:        2,
		PerPage:     "100",
		Providers:   []emotes.Provider{emotes.ProviderBTTV, emotes.ProviderSevenTV},
		From:        "2025-01-01T00:00:00.000Z",
		To:          "2025-01-31T23:59:59.999Z",
		OnlyCurrent: true,
		GroupByName: true,
		UserScope:   query.ScopeExclude,
		Users:       []string{"abby", "zoil"},
	}
	v := q.Values()

	tests := []struct{ key, want string }{
		{"page", "2"},
		{"perPage", "100"},
		{"providers", "BTTV,SevenTV"},
		{"from", "2025-01-01T00:00:00.000Z"},
		{"to", "2025-01-31T23:59:59.999Z"},
		{"onlyCurrentEmotes", "true"},
		{"groupBy", "name"},
		{"userScope", "exclude"},
		{"users", "abby,zoil"},
	}
	for _, tt := range tests {
		if got := v.Get(tt.key); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestQueryValuesHalfOpenRangeOmitted(t *testing.T) {
	q := Query{Channel: "fuslie", Page: 1, PerPage: "100", From: "2025-01-01T00:00:00.000Z"}
	v := q.Values()
	if v.Has("from") || v.Has("to") {
		t.Errorf("half-open range leaked into query: %v", v)
	}
}

func TestQueryKeyIgnoresFieldOrder(t *testing.T) {
	a := Query{
		Channel:   "fuslie",
		Page:      1,
		PerPage:   "100",
		Providers: []emotes.Provider{emotes.ProviderSevenTV, emotes.ProviderBTTV},
	}
	b := a
	b.Providers = []emotes.Provider{emotes.ProviderBTTV, emotes.ProviderSevenTV, emotes.ProviderBTTV}
	if a.Key() != b.Key() {
		t.Errorf("keys differ for equal queries:\n%s\n%s", a.Key(), b.Key())
	}
}

func TestFetchRankAttachesImageURLs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/emotes/rank/fuslie" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{"emoteName":"catJAM","emoteId":"60ae7316f7c927fad14e6ca2","usage_count":9001,"provider":"SevenTV","rank":1,"imageUrl":"https://evil.example/override"},
				{"emoteName":"mystery","emoteId":"","usage_count":12,"provider":"BTTV","rank":2}
			],
			"meta": {"page":1,"perPage":10,"total":2,"totalPages":1,"channelId":"1","channelName":"fuslie","channelDisplayName":"fuslie"}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	page := c.FetchRank(context.Background(), Query{Channel: "fuslie", Page: 1, PerPage: "10"})

	if len(page.Data) != 2 {
		t.Fatalf("rows = %d, want 2", len(page.Data))
	}
	if got := page.Data[0].ImageURL; got != "https://cdn.7tv.app/emote/60ae7316f7c927fad14e6ca2/4x" {
		t.Errorf("image URL = %q, wire value not replaced", got)
	}
	if got := page.Data[1].ImageURL; got != emotes.BlankImage {
		t.Errorf("image URL for missing id = %q, want blank placeholder", got)
	}
	if page.Meta == nil || page.Meta.TotalPages != 1 {
		t.Errorf("meta = %+v", page.Meta)
	}
}

func TestFetchRankFailSoft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	page := c.FetchRank(context.Background(), Query{Channel: "fuslie", Page: 1, PerPage: "100"})

	if page.Data == nil || len(page.Data) != 0 {
		t.Errorf("Data = %#v, want empty non-nil slice", page.Data)
	}
	if page.Meta != nil {
		t.Errorf("Meta = %+v, want nil", page.Meta)
	}
}

func TestFetchRankServesCachedPage(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"data":[{"emoteName":"POG","emoteId":"x","usage_count":1,"provider":"BTTV","rank":1}],"meta":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	q := Query{Channel: "fuslie", Page: 1, PerPage: "100"}

	first := c.FetchRank(context.Background(), q)
	second := c.FetchRank(context.Background(), q)

	if n := hits.Load(); n != 1 {
		t.Errorf("upstream hits = %d, want 1", n)
	}
	if len(first.Data) != 1 || len(second.Data) != 1 {
		t.Errorf("rows = %d/%d, want 1/1", len(first.Data), len(second.Data))
	}
}

func TestFetchRankReplaysStalePageWhenUpstreamDies(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"data":[{"emoteName":"POG","emoteId":"x","usage_count":1,"provider":"BTTV","rank":1}],"meta":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Hour)
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	q := Query{Channel: "fuslie", Page: 1, PerPage: "100"}
	if got := c.FetchRank(context.Background(), q); len(got.Data) != 1 {
		t.Fatalf("seed fetch rows = %d, want 1", len(got.Data))
	}

	// Entry is past the TTL and the upstream is gone: replay it anyway.
	clock = clock.Add(2 * time.Hour)
	fail.Store(true)

	got := c.FetchRank(context.Background(), q)
	if len(got.Data) != 1 || got.Data[0].Name != "POG" {
		t.Errorf("stale replay rows = %#v", got.Data)
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name       string
		meta       *emotes.Meta
		requested  int
		wantPage   int
		wantTotals int
	}{
		{"clamps page beyond total", &emotes.Meta{Page: 5, TotalPages: 2}, 5, 2, 2},
		{"passes consistent meta through", &emotes.Meta{Page: 3, TotalPages: 7}, 3, 3, 7},
		{"nil meta keeps requested page", nil, 4, 4, 1},
		{"nil meta floors page at one", nil, 0, 1, 1},
		{"zero totals floor at one", &emotes.Meta{Page: 0, TotalPages: 0}, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, total := Reconcile(tt.meta, tt.requested)
			if page != tt.wantPage || total != tt.wantTotals {
				t.Errorf("Reconcile() = (%d, %d), want (%d, %d)", page, total, tt.wantPage, tt.wantTotals)
			}
		})
	}
}
