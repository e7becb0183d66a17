package emotes

import (
	"reflect"
	"testing"
)

func TestParseProviders(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []Provider
	}{
		{
			name:   "case-insensitive aliases, unknown dropped, order kept",
			tokens: []string{"Twitch", "bttv", "nonsense", "7TV"},
			want:   []Provider{ProviderTwitch, ProviderBTTV, ProviderSevenTV},
		},
		{
			name:   "seventv long alias",
			tokens: []string{"SevenTV", "FFZ"},
			want:   []Provider{ProviderSevenTV, ProviderFFZ},
		},
		{
			name:   "duplicates preserved",
			tokens: []string{"bttv", "BTTV"},
			want:   []Provider{ProviderBTTV, ProviderBTTV},
		},
		{
			name:   "empty input yields empty output",
			tokens: nil,
			want:   nil,
		},
		{
			name:   "all unknown",
			tokens: []string{"youtube", "kick"},
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseProviders(tt.tokens); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseProviders(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	got := Canonical([]Provider{ProviderTwitch, ProviderBTTV, ProviderTwitch, ProviderSevenTV})
	want := []Provider{ProviderBTTV, ProviderSevenTV, ProviderTwitch}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Canonical() = %v, want %v", got, want)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name      string
		providers []Provider
		want      string
	}{
		{"sorted", []Provider{ProviderTwitch, ProviderBTTV}, "BTTV,Twitch"},
		{"duplicates collapse without trailing tokens", []Provider{ProviderBTTV, ProviderTwitch, ProviderBTTV}, "BTTV,Twitch"},
		{"single", []Provider{ProviderSevenTV}, "SevenTV"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.providers); got != tt.want {
				t.Errorf("Join(%v) = %q, want %q", tt.providers, got, tt.want)
			}
		})
	}
}

func TestIsDefaultSet(t *testing.T) {
	tests := []struct {
		name      string
		providers []Provider
		want      bool
	}{
		{"all four in any order", []Provider{ProviderTwitch, ProviderFFZ, ProviderBTTV, ProviderSevenTV}, true},
		{"all four with duplicates", []Provider{ProviderTwitch, ProviderTwitch, ProviderFFZ, ProviderBTTV, ProviderSevenTV}, true},
		{"subset", []Provider{ProviderBTTV, ProviderFFZ, ProviderSevenTV}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDefaultSet(tt.providers); got != tt.want {
				t.Errorf("IsDefaultSet(%v) = %v, want %v", tt.providers, got, tt.want)
			}
		})
	}
}
