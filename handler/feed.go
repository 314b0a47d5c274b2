package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"ewintr.nl/videotoken/fetcher"
	"golang.org/x/exp/slog"
)

// FeedAPI lists unread feed entries that link to a video and marks them read.
type FeedAPI struct {
	feedReader fetcher.FeedReader
	logger     *slog.Logger
}

func NewFeedAPI(feedReader fetcher.FeedReader, logger *slog.Logger) *FeedAPI {
	return &FeedAPI{
		feedReader: feedReader,
		logger:     logger,
	}
}

func (f *FeedAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	head, tail := ShiftPath(r.URL.Path)
	action, _ := ShiftPath(tail)

	switch {
	case r.Method == http.MethodGet && head == "":
		f.List(w, r)
	case r.Method == http.MethodPost && head != "" && action == "read":
		f.MarkRead(w, r, head)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the feed api", r.Method, r.URL.Path))
	}
}

func (f *FeedAPI) List(w http.ResponseWriter, r *http.Request) {
	entries, err := f.feedReader.Unread()
	if err != nil {
		f.returnErr(r.Context(), w, http.StatusBadGateway, "could not list feed entries", err)
		return
	}

	type respEntry struct {
		EntryID  int64  `json:"entry_id"`
		FeedID   int64  `json:"feed_id"`
		Title    string `json:"title"`
		Token    string `json:"token"`
		Provider string `json:"provider"`
	}
	resp := make([]respEntry, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, respEntry{
			EntryID:  e.EntryID,
			FeedID:   e.FeedID,
			Title:    e.Title,
			Token:    e.Token.Token(),
			Provider: e.Token.Provider().String(),
		})
	}

	jsonBody, err := json.Marshal(resp)
	if err != nil {
		f.returnErr(r.Context(), w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(jsonBody)
}

func (f *FeedAPI) MarkRead(w http.ResponseWriter, r *http.Request, rawID string) {
	entryID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		f.returnErr(r.Context(), w, http.StatusBadRequest, "invalid entry id", err)
		return
	}
	if err := f.feedReader.MarkRead(entryID); err != nil {
		f.returnErr(r.Context(), w, http.StatusBadGateway, "could not mark entry as read", err)
		return
	}

	Message(w, http.StatusOK, "entry marked as read", entryID)
}

func (f *FeedAPI) returnErr(_ context.Context, w http.ResponseWriter, status int, message string, err error, details ...any) {
	f.logger.Error(message, slog.String("err", err.Error()), slog.String("details", fmt.Sprintf("%+v", details)))
	Error(w, status, message, err, details...)
}
