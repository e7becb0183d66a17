package emotes

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// providerAliases maps lower-cased query tokens to canonical providers.
// Initialized once, never mutated.
var providerAliases = map[string]Provider{
	"twitch":  ProviderTwitch,
	"bttv":    ProviderBTTV,
	"ffz":     ProviderFFZ,
	"7tv":     ProviderSevenTV,
	"seventv": ProviderSevenTV,
}

// ParseProviders maps free-text tokens to canonical providers. Matching is
// case-insensitive, unrecognized tokens are dropped, and input order is
// preserved without deduplication. Empty input yields empty output; the
// caller decides whether absence means "all providers".
func ParseProviders(tokens []string) []Provider {
	var providers []Provider
	for _, tok := range tokens {
		if p, ok := providerAliases[strings.ToLower(tok)]; ok {
			providers = append(providers, p)
		}
	}
	return providers
}

// Canonical returns a sorted, deduplicated copy of the given provider set.
func Canonical(providers []Provider) []Provider {
	out := lo.Uniq(providers)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Join serializes a provider set to its canonical comma-joined form.
func Join(providers []Provider) string {
	canon := Canonical(providers)
	parts := make([]string, len(canon))
	for i, p := range canon {
		parts[i] = string(p)
	}
	return strings.Join(parts, ",")
}

// IsDefaultSet reports whether the set equals the full four-provider
// default. The canonical query omits the providers key in that case.
func IsDefaultSet(providers []Provider) bool {
	canon := Canonical(providers)
	all := AllProviders()
	if len(canon) != len(all) {
		return false
	}
	for i := range canon {
		if canon[i] != all[i] {
			return false
		}
	}
	return true
}
