package model

import "strings"

// Provider identifies the platform hosting a video. The zero value means no
// provider has been determined; it never survives construction of a VideoToken.
type Provider string

const (
	ProviderYouTube Provider = "youtube"
	ProviderVimeo   Provider = "vimeo"
)

// ParseProvider maps a provider hint to a known provider.
func ParseProvider(s string) (Provider, bool) {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderYouTube:
		return ProviderYouTube, true
	case ProviderVimeo:
		return ProviderVimeo, true
	}
	return "", false
}

func (p Provider) Valid() bool {
	return p == ProviderYouTube || p == ProviderVimeo
}

func (p Provider) String() string {
	return string(p)
}
