package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ewintr.nl/videotoken/fetcher"
	"ewintr.nl/videotoken/model"
	"golang.org/x/exp/slog"
)

type TokenAPI struct {
	thumbs   model.ThumbnailLookup
	metadata fetcher.MetadataFetcher
	logger   *slog.Logger
}

func NewTokenAPI(thumbs model.ThumbnailLookup, metadata fetcher.MetadataFetcher, logger *slog.Logger) *TokenAPI {
	return &TokenAPI{
		thumbs:   thumbs,
		metadata: metadata,
		logger:   logger,
	}
}

func (t *TokenAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	subPath, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodGet && subPath == "":
		t.Get(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the token api", r.Method, subPath))
	}
}

type respMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

type respToken struct {
	Token        string        `json:"token"`
	Provider     string        `json:"provider"`
	ID           string        `json:"id"`
	EmbedURL     string        `json:"embed_url"`
	PageURL      string        `json:"page_url"`
	ThumbnailURL string        `json:"thumbnail_url,omitempty"`
	Metadata     *respMetadata `json:"metadata,omitempty"`
}

func (t *TokenAPI) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	vt, err := model.New(query.Get("input"), query.Get("provider"))
	if err != nil {
		t.returnErr(r.Context(), w, http.StatusBadRequest, "could not parse input", err)
		return
	}

	resp, err := t.describe(r.Context(), vt)
	if err != nil {
		t.returnErr(r.Context(), w, http.StatusInternalServerError, "could not build urls", err)
		return
	}

	if t.metadata != nil && vt.Provider() == model.ProviderYouTube {
		mds, err := t.metadata.FetchMetadata(r.Context(), []model.VideoToken{vt})
		if err != nil {
			t.logger.Warn("failed to fetch metadata", slog.String("token", vt.String()), slog.String("err", err.Error()))
		}
		if md, ok := mds[vt]; ok {
			resp.Metadata = &respMetadata{
				Title:       md.Title,
				Description: md.Description,
				Duration:    md.Duration,
				PublishedAt: md.PublishedAt,
			}
		}
	}

	jsonBody, err := json.Marshal(resp)
	if err != nil {
		t.returnErr(r.Context(), w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(jsonBody)
}

func (t *TokenAPI) describe(ctx context.Context, vt model.VideoToken) (respToken, error) {
	embed, err := vt.EmbedURL()
	if err != nil {
		return respToken{}, err
	}
	page, err := vt.PageURL()
	if err != nil {
		return respToken{}, err
	}
	thumb, _ := vt.ThumbnailURL(ctx, t.thumbs)

	return respToken{
		Token:        vt.Token(),
		Provider:     vt.Provider().String(),
		ID:           vt.ID().String(),
		EmbedURL:     embed,
		PageURL:      page,
		ThumbnailURL: thumb,
	}, nil
}

func (t *TokenAPI) returnErr(ctx context.Context, w http.ResponseWriter, status int, message string, err error, details ...any) {
	level := slog.LevelError
	if errors.Is(err, model.ErrInvalidFormat) || errors.Is(err, model.ErrProviderRequired) || errors.Is(err, model.ErrTokenTooLong) {
		level = slog.LevelInfo
	}
	t.logger.Log(ctx, level, message, slog.String("err", err.Error()), slog.String("details", fmt.Sprintf("%+v", details)))
	Error(w, status, message, err, details...)
}
