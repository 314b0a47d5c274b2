package fetcher

import (
	"fmt"

	"ewintr.nl/videotoken/model"
	"golang.org/x/exp/slog"
	"miniflux.app/client"
)

type MinifluxInfo struct {
	Endpoint string
	ApiKey   string
}

// Miniflux reads video links from the unread entries of a miniflux instance.
type Miniflux struct {
	client *client.Client
	logger *slog.Logger
}

func NewMiniflux(mflInfo MinifluxInfo, logger *slog.Logger) *Miniflux {
	return &Miniflux{
		client: client.New(mflInfo.Endpoint, mflInfo.ApiKey),
		logger: logger,
	}
}

// Unread returns the unread entries that link to a video. Entries with other
// links are skipped and stay unread.
func (m *Miniflux) Unread() ([]FeedEntry, error) {
	result, err := m.client.Entries(&client.Filter{Status: "unread"})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unread entries: %w", err)
	}

	entries := make([]FeedEntry, 0, len(result.Entries))
	for _, entry := range result.Entries {
		token, err := model.New(entry.URL, "")
		if err != nil {
			m.logger.Info("skipping entry", slog.Int64("entryid", entry.ID), slog.String("url", entry.URL), slog.String("reason", err.Error()))
			continue
		}
		entries = append(entries, FeedEntry{
			EntryID: entry.ID,
			FeedID:  entry.FeedID,
			Title:   entry.Title,
			Token:   token,
		})
	}

	return entries, nil
}

func (m *Miniflux) MarkRead(entryID int64) error {
	if err := m.client.UpdateEntries([]int64{entryID}, "read"); err != nil {
		return fmt.Errorf("failed to mark entry %d as read: %w", entryID, err)
	}

	return nil
}
