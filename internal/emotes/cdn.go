package emotes

import "strings"

// BlankImage is a 1x1 transparent GIF used when no CDN image can be derived.
const BlankImage = "data:image/gif;base64,R0lGODlhAQABAAD/ACwAAAAAAQABAAACADs="

// ImageURL derives the display-image URL for an emote from its provider and
// provider-scoped id. A missing id or unknown provider yields BlankImage.
func ImageURL(provider Provider, id string) string {
	if id == "" {
		return BlankImage
	}
	switch {
	case has(provider, "twitch"):
		return "https://static-cdn.jtvnw.net/emoticons/v2/" + id + "/default/dark/3.0"
	case has(provider, "bttv"), has(provider, "betterttv"):
		return "https://cdn.betterttv.net/emote/" + id + "/3x"
	case has(provider, "ffz"), has(provider, "frankerfacez"):
		return "https://cdn.frankerfacez.com/emoticon/" + id + "/4"
	case has(provider, "7tv"), has(provider, "seventv"), has(provider, "seven"):
		return "https://cdn.7tv.app/emote/" + id + "/4x"
	}
	return BlankImage
}

// PageURL derives the web page for an emote, or "" when none exists.
// Twitch has no dedicated emote page, so it falls back to the image URL.
func PageURL(provider Provider, id string) string {
	if id == "" || provider == "" {
		return ""
	}
	switch {
	case has(provider, "twitch"):
		return ImageURL(provider, id)
	case has(provider, "bttv"), has(provider, "betterttv"):
		return "https://betterttv.com/emotes/" + id
	case has(provider, "ffz"), has(provider, "frankerfacez"):
		return "https://www.frankerfacez.com/emoticon/" + id
	case has(provider, "7tv"), has(provider, "seventv"), has(provider, "seven"):
		return "https://7tv.app/emotes/" + id
	}
	return ""
}

func has(p Provider, sub string) bool {
	return strings.Contains(strings.ToLower(string(p)), sub)
}
