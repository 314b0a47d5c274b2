package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseYouTubeTokenByURL(t *testing.T) {
	for _, tc := range []struct {
		name     string
		fragment string
		exp      string
		expOK    bool
	}{
		{name: "empty", fragment: ""},
		{name: "user channel", fragment: "user/rickastley"},
		{name: "user channel with token shape", fragment: "user/dQw4w9WgXcQ"},
		{name: "exact", fragment: "dQw4w9WgXcQ", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "exact too short", fragment: "dQw4w9WgXc"},
		{name: "watch", fragment: "watch?v=dQw4w9WgXcQ", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "watch with params", fragment: "watch?v=dQw4w9WgXcQ&t=42s", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "v", fragment: "v/dQw4w9WgXcQ?version=3", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "embed", fragment: "embed/dQw4w9WgXcQ", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "screening room", fragment: "ytscreeningroom?v=dQw4w9WgXcQ", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "query v", fragment: "?v=dQw4w9WgXcQ", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "query vi", fragment: "?vi=dQw4w9WgXcQ", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "e", fragment: "e/dQw4w9WgXcQ", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "watch feature", fragment: "watch?feature=player_embedded&v=dQw4w9WgXcQ", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "watch vi", fragment: "watch?vi=dQw4w9WgXcQ", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "feature", fragment: "?feature=player_embedded&v=dQw4w9WgXcQ", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "vi", fragment: "vi/dQw4w9WgXcQ", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "trailing question mark", fragment: "dQw4w9WgXcQ?t=42", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "trailing ampersand", fragment: "dQw4w9WgXcQ&feature=share", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "trailing param without letter", fragment: "dQw4w9WgXcQ?1"},
		{name: "multi account", fragment: "u/1/dQw4w9WgXcQ"},
		{name: "multi account rel", fragment: "u/1/dQw4w9WgXcQ?rel=0"},
		{name: "percent encoded", fragment: "attribution_link?a=8g8kPrPIi-ecwIsS&u=/watch%3Fv%3DdQw4w9WgXcQ%26feature%3Dshare", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "half encoded", fragment: "oembed?url=http%3A//www.youtube.com/watch?v%3DdQw4w9WgXcQ&format=json", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "playlist", fragment: "watchv=dQw4w9WgXcQ&list=PL590L5WQmH8fJ54F369BLDSqIwcs-TCfs", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "unknown", fragment: "channel/UCuAXFkgsw1L7xaCfnd5JJOw"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			act, ok := ParseYouTubeTokenByURL(tc.fragment)
			assert.Equal(t, tc.expOK, ok)
			assert.Equal(t, tc.exp, act)
		})
	}
}

func TestParseYouTubeTokenByURLRuleOrder(t *testing.T) {
	for _, tc := range []struct {
		name     string
		fragment string
		exp      string
		expOK    bool
	}{
		{
			name:     "user channel before percent encoded",
			fragment: "user/x?watch%3Fv%3DdQw4w9WgXcQ%26",
		},
		{
			name:     "known prefix before percent encoded",
			fragment: "watch?v=abcdefghijk&u=watch%3Fv%3DdQw4w9WgXcQ%26",
			exp:      "abcdefghijk",
			expOK:    true,
		},
		{
			name:     "trailing params before percent encoded",
			fragment: "abcdefghijk?u=watch?v%3DdQw4w9WgXcQ&",
			exp:      "abcdefghijk",
			expOK:    true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			act, ok := ParseYouTubeTokenByURL(tc.fragment)
			assert.Equal(t, tc.expOK, ok)
			assert.Equal(t, tc.exp, act)
		})
	}
}

func TestGuessProvider(t *testing.T) {
	for _, tc := range []struct {
		token string
		exp   Provider
	}{
		{token: "76979871", exp: ProviderVimeo},
		{token: "1", exp: ProviderVimeo},
		{token: "12345678901", exp: ProviderVimeo},
		{token: "dQw4w9WgXcQ", exp: ProviderYouTube},
		{token: "a-b_c-d_e-f", exp: ProviderYouTube},
		{token: "abc", exp: ""},
		{token: "dQw4w9WgXcQQ", exp: ""},
		{token: "", exp: ""},
	} {
		t.Run(tc.token, func(t *testing.T) {
			assert.Equal(t, tc.exp, guessProvider(tc.token))
		})
	}
}

func TestParseProvider(t *testing.T) {
	p, ok := ParseProvider(" YouTube ")
	assert.True(t, ok)
	assert.Equal(t, ProviderYouTube, p)

	p, ok = ParseProvider("vimeo")
	assert.True(t, ok)
	assert.Equal(t, ProviderVimeo, p)

	p, ok = ParseProvider("dailymotion")
	assert.False(t, ok)
	assert.False(t, p.Valid())
}
