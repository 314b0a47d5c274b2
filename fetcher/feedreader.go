package fetcher

import "ewintr.nl/videotoken/model"

type FeedEntry struct {
	EntryID int64
	FeedID  int64
	Title   string
	Token   model.VideoToken
}

type FeedReader interface {
	Unread() ([]FeedEntry, error)
	MarkRead(entryID int64) error
}
