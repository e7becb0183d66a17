// Package client fetches ranked emote pages from the upstream API. One GET
// per canonical query: identical in-flight requests are coalesced, recent
// responses are served from an in-memory cache, and a dead network replays
// the last cached page instead of failing.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"emotetop/internal/emotes"
)

// DefaultCacheTTL is how long a cached page counts as fresh.
const DefaultCacheTTL = time.Hour

type cacheEntry struct {
	page    emotes.RankPage
	fetched time.Time
}

// Client issues rank requests against one upstream base URL. It is safe for
// concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	ttl     time.Duration

	group singleflight.Group

	mu    sync.Mutex
	cache map[string]cacheEntry

	now func() time.Time
}

// New builds a client for the given base URL. A zero ttl means
// DefaultCacheTTL.
func New(baseURL string, ttl time.Duration) *Client {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		ttl:     ttl,
		cache:   make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// FetchRank performs the read for one canonical query. It never returns an
// error: transport failures and non-success statuses degrade to an empty
// page (or a stale cached page when one exists), which the UI renders as an
// empty state. Image URLs on returned rows are always recomputed locally.
func (c *Client) FetchRank(ctx context.Context, q Query) emotes.RankPage {
	key := q.Key()

	if page, ok := c.lookup(key, true); ok {
		return page
	}

	v, _, _ := c.group.Do(key, func() (interface{}, error) {
		// Re-check under the flight: a concurrent caller may have filled
		// the cache while this one waited its turn.
		if page, ok := c.lookup(key, true); ok {
			return page, nil
		}

		page, err := c.get(ctx, q)
		if err != nil {
			log.Printf("rank fetch %s: %v", key, err)
			if stale, ok := c.lookup(key, false); ok {
				return stale, nil
			}
			return emotes.RankPage{Data: []emotes.Emote{}}, nil
		}

		c.store(key, page)
		return page, nil
	})

	return v.(emotes.RankPage)
}

func (c *Client) get(ctx context.Context, q Query) (emotes.RankPage, error) {
	u := fmt.Sprintf("%s/api/emotes/rank/%s?%s", c.baseURL, q.Channel, q.Values().Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return emotes.RankPage{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return emotes.RankPage{}, fmt.Errorf("requesting rank: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return emotes.RankPage{}, fmt.Errorf("rank endpoint returned %s", resp.Status)
	}

	var page emotes.RankPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return emotes.RankPage{}, fmt.Errorf("decoding rank response: %w", err)
	}

	if page.Data == nil {
		page.Data = []emotes.Emote{}
	}
	for i := range page.Data {
		page.Data[i].ImageURL = emotes.ImageURL(page.Data[i].Provider, page.Data[i].ID)
	}
	return page, nil
}

// lookup returns the cached page for key. With fresh set, entries older
// than the TTL are skipped; without it any entry qualifies (stale replay).
func (c *Client) lookup(key string, fresh bool) (emotes.RankPage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.cache[key]
	if !ok {
		return emotes.RankPage{}, false
	}
	if fresh && c.now().Sub(e.fetched) > c.ttl {
		return emotes.RankPage{}, false
	}
	return e.page, true
}

func (c *Client) store(key string, page emotes.RankPage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{page: page, fetched: c.now()}
}

// Reconcile derives the page and total-pages to commit back into state
// from a response's metadata. A reported page beyond the reported total is
// clamped down, which keeps pagination consistent when a filter change
// shrinks the result set between requests. Nil metadata (empty result)
// yields a single empty page.
func Reconcile(meta *emotes.Meta, requestedPage int) (page, totalPages int) {
	if meta == nil {
		if requestedPage < 1 {
			requestedPage = 1
		}
		return requestedPage, 1
	}
	page = meta.Page
	totalPages = meta.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page, totalPages
}
