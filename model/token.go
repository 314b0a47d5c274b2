package model

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxTokenLength is the maximum number of code points in a token.
const MaxTokenLength = 32

var (
	ErrInvalidFormat       = errors.New("invalid token or url")
	ErrTokenTooLong        = errors.New("token too long")
	ErrProviderRequired    = errors.New("provider is mandatory")
	ErrUnsupportedProvider = errors.New("unsupported provider")
)

// ThumbnailLookup finds thumbnails for providers that do not expose them at a
// predictable address.
type ThumbnailLookup interface {
	VimeoThumbnail(ctx context.Context, token string) (string, error)
}

// VideoToken is a validated video identifier together with its provider. It
// has no setters, so values can be copied and shared freely.
type VideoToken struct {
	token    string
	provider Provider
}

// New parses a raw token or a video URL. The hint is only used when neither the
// URL nor the shape of the token tells which provider it belongs to.
func New(input, hint string) (VideoToken, error) {
	input = strings.TrimSpace(input)
	hint = strings.ToLower(strings.TrimSpace(hint))

	c, err := classify(input)
	if err != nil {
		return VideoToken{}, fmt.Errorf("%w: %q", err, input)
	}

	// A recognized host without a token is an error, channel references
	// included. Callers cannot tell "no video here" from "malformed".
	if c.provider != "" && c.token == "" {
		return VideoToken{}, fmt.Errorf("token cannot be parsed for provider %s: %w", c.provider, ErrInvalidFormat)
	}

	token := c.token
	if token == "" {
		token = input
	}
	if token == "" {
		return VideoToken{}, fmt.Errorf("empty input: %w", ErrInvalidFormat)
	}

	provider := c.provider
	if provider == "" {
		provider, _ = ParseProvider(hint)
	}

	// The shape of the token overrides both the hint and the provider found in
	// the URL, e.g. a numeric token is always vimeo.
	if guess := guessProvider(token); guess != "" && guess != provider {
		provider = guess
	}

	if provider == "" {
		return VideoToken{}, fmt.Errorf("%w: %q", ErrProviderRequired, token)
	}
	if utf8.RuneCountInString(token) > MaxTokenLength {
		return VideoToken{}, fmt.Errorf("%w: %d characters, max %d", ErrTokenTooLong, utf8.RuneCountInString(token), MaxTokenLength)
	}

	return VideoToken{token: token, provider: provider}, nil
}

func (v VideoToken) Token() string {
	return v.token
}

func (v VideoToken) Provider() Provider {
	return v.provider
}

func (v VideoToken) IsZero() bool {
	return v.token == "" && v.provider == ""
}

func (v VideoToken) String() string {
	return fmt.Sprintf("%s:%s", v.provider, v.token)
}

// ID is a deterministic UUIDv5 for the token, namespaced by provider.
func (v VideoToken) ID() uuid.UUID {
	ns := uuid.NewSHA1(uuid.NameSpaceDNS, []byte(string(v.provider)+".com"))
	return uuid.NewSHA1(ns, []byte(v.token))
}

// EmbedURL returns the iframe source for the video.
func (v VideoToken) EmbedURL() (string, error) {
	switch v.provider {
	case ProviderVimeo:
		return "https://player.vimeo.com/video/" + url.QueryEscape(v.token), nil
	case ProviderYouTube:
		return "https://www.youtube.com/embed/" + url.QueryEscape(v.token) + "?rel=0", nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedProvider, v.provider)
}

// PageURL returns the public watch page of the video.
func (v VideoToken) PageURL() (string, error) {
	switch v.provider {
	case ProviderVimeo:
		return "https://vimeo.com/" + url.QueryEscape(v.token), nil
	case ProviderYouTube:
		return "https://www.youtube.com/watch?v=" + url.QueryEscape(v.token), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedProvider, v.provider)
}

// ThumbnailURL returns a preview image for the video. YouTube thumbnails are
// formatted directly, Vimeo thumbnails are fetched through lookup. Thumbnails
// are best effort: any failure reports false and is not returned to the caller.
func (v VideoToken) ThumbnailURL(ctx context.Context, lookup ThumbnailLookup) (string, bool) {
	switch v.provider {
	case ProviderYouTube:
		return "https://img.youtube.com/vi/" + url.QueryEscape(v.token) + "/maxresdefault.jpg", true
	case ProviderVimeo:
		if lookup == nil {
			return "", false
		}
		thumb, err := lookup.VimeoThumbnail(ctx, v.token)
		if err != nil || thumb == "" {
			return "", false
		}
		return thumb, true
	}

	return "", false
}
