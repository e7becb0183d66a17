package emotes

// Provider identifies the platform an emote originates from.
type Provider string

const (
	ProviderTwitch  Provider = "Twitch"
	ProviderBTTV    Provider = "BTTV"
	ProviderFFZ     Provider = "FFZ"
	ProviderSevenTV Provider = "SevenTV"
)

// AllProviders returns the full provider set in canonical (sorted) order.
func AllProviders() []Provider {
	return []Provider{ProviderBTTV, ProviderFFZ, ProviderSevenTV, ProviderTwitch}
}

// Emote is one row of a rank page as reported by the upstream API.
// ImageURL is not trusted from the wire; the client recomputes it from
// Provider and ID after every fetch.
type Emote struct {
	Name       string   `json:"emoteName"`
	ID         string   `json:"emoteId"`
	UsageCount int64    `json:"usage_count"`
	Provider   Provider `json:"provider"`
	Rank       int      `json:"rank"`
	ImageURL   string   `json:"imageUrl"`
}

// Meta describes the pagination and channel identity of a rank page.
// The upstream returns null meta on empty or degenerate results.
type Meta struct {
	Page               int    `json:"page"`
	PerPage            int    `json:"perPage"`
	Total              int    `json:"total"`
	TotalPages         int    `json:"totalPages"`
	ChannelID          string `json:"channelId"`
	ChannelName        string `json:"channelName"`
	ChannelDisplayName string `json:"channelDisplayName"`
}

// RankPage is one page of ranked emotes plus optional metadata.
type RankPage struct {
	Data []Emote `json:"data"`
	Meta *Meta   `json:"meta"`
}
