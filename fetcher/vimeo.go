package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/exp/slog"
)

const VimeoOEmbedEndpoint = "https://vimeo.com/api/oembed.json"

type VimeoInfo struct {
	Endpoint string
}

// Vimeo looks up thumbnails through the Vimeo oEmbed api. It does not retry or
// cache, and only applies the timeout of the http client it is given.
type Vimeo struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewVimeo(info VimeoInfo, client *http.Client, logger *slog.Logger) *Vimeo {
	endpoint := info.Endpoint
	if endpoint == "" {
		endpoint = VimeoOEmbedEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Vimeo{
		endpoint: endpoint,
		client:   client,
		logger:   logger,
	}
}

type vimeoOEmbed struct {
	ThumbnailURL string `json:"thumbnail_url"`
}

func (v *Vimeo) VimeoThumbnail(ctx context.Context, token string) (string, error) {
	thumb, err := v.fetchThumbnail(ctx, token)
	if err != nil {
		v.logger.Warn("failed to fetch vimeo thumbnail", slog.String("token", token), slog.String("err", err.Error()))
		return "", err
	}

	return thumb, nil
}

func (v *Vimeo) fetchThumbnail(ctx context.Context, token string) (string, error) {
	query := url.Values{}
	query.Set("url", "https://vimeo.com/"+url.QueryEscape(token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not reach vimeo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("vimeo returned status %d", resp.StatusCode)
	}

	var body vimeoOEmbed
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	if body.ThumbnailURL == "" {
		return "", fmt.Errorf("response has no thumbnail_url")
	}

	return body.ThumbnailURL, nil
}
