package model

import (
	"regexp"
)

const youtubeTokenClass = `[A-Za-z0-9_-]{11}`

var (
	reURLPrefix     = regexp.MustCompile(`^(?:https?:)?//(?:www\.)?`)
	reYoutubeHost   = regexp.MustCompile(`^(?:youtube\.com|youtu\.be|youtube-nocookie\.com|yt\.be)(?:/(.*))?$`)
	reVimeoFragment = regexp.MustCompile(`(?:player\.)?vimeo\.com/(?:video/)?([0-9]{8})`)
	reEmbedSnippet  = regexp.MustCompile(`embed/(` + youtubeTokenClass + `)"`)
	reYoutubeToken  = regexp.MustCompile(`^` + youtubeTokenClass + `$`)
	reDigits        = regexp.MustCompile(`^[0-9]+$`)
)

// youtubeRule is one step of the extraction cascade. A rule that matches ends
// the cascade: with the first capture group as token, or with no token at all
// when noToken is set.
type youtubeRule struct {
	name    string
	pattern *regexp.Regexp
	noToken bool
}

// youtubeRules are evaluated in order and the first match wins. Later rules
// are more permissive than earlier ones, so the order must not change.
var youtubeRules = []youtubeRule{
	{
		name:    "user channel",
		pattern: regexp.MustCompile(`^user/`),
		noToken: true,
	},
	{
		name:    "exact",
		pattern: regexp.MustCompile(`^(` + youtubeTokenClass + `)$`),
	},
	{
		name: "known prefix",
		pattern: regexp.MustCompile(`^(?:watch\?v=|v/|embed/|ytscreeningroom\?v=|\?v=|\?vi=|e/|watch\?.*vi?=|\?feature=[a-z_]*&v=|vi/)(` +
			youtubeTokenClass + `)`),
	},
	{
		name:    "trailing params",
		pattern: regexp.MustCompile(`^(` + youtubeTokenClass + `)[?&][A-Za-z]`),
	},
	{
		name:    "multi account channel",
		pattern: regexp.MustCompile(`^u/1/` + youtubeTokenClass + `(?:\?rel=0)?$`),
		noToken: true,
	},
	{
		name:    "percent encoded",
		pattern: regexp.MustCompile(`(?:watch%3Fv%3D|watch\?v%3D)(` + youtubeTokenClass + `)[%&]`),
	},
	{
		name:    "playlist",
		pattern: regexp.MustCompile(`^watchv=(` + youtubeTokenClass + `)&list=`),
	},
}

// ParseYouTubeTokenByURL extracts a video token from the part of a YouTube URL
// that follows the host, e.g. "watch?v=dQw4w9WgXcQ". Channel references
// ("user/...", "u/1/...") and unrecognized shapes report false.
func ParseYouTubeTokenByURL(fragment string) (string, bool) {
	for _, rule := range youtubeRules {
		m := rule.pattern.FindStringSubmatch(fragment)
		if m == nil {
			continue
		}
		if rule.noToken {
			return "", false
		}
		return m[1], true
	}

	return "", false
}

// classification is what the URL stage learned about the input.
type classification struct {
	token    string
	provider Provider
}

// classify inspects the normalized input. A zero classification with a nil
// error means the input is not a URL and should be taken as a raw token.
func classify(input string) (classification, error) {
	// an embedded html snippet beats everything else
	if m := reEmbedSnippet.FindStringSubmatch(input); m != nil {
		return classification{token: m[1], provider: ProviderYouTube}, nil
	}

	loc := reURLPrefix.FindStringIndex(input)
	if loc == nil {
		return classification{}, nil
	}
	rest := input[loc[1]:]

	if m := reYoutubeHost.FindStringSubmatch(rest); m != nil {
		token, _ := ParseYouTubeTokenByURL(m[1])
		return classification{token: token, provider: ProviderYouTube}, nil
	}
	if m := reVimeoFragment.FindStringSubmatch(rest); m != nil {
		return classification{token: m[1], provider: ProviderVimeo}, nil
	}

	return classification{}, ErrInvalidFormat
}

// guessProvider infers the provider from the shape of the token alone.
func guessProvider(token string) Provider {
	switch {
	case reDigits.MatchString(token):
		return ProviderVimeo
	case reYoutubeToken.MatchString(token):
		return ProviderYouTube
	}
	return ""
}
