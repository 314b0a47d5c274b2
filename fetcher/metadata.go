package fetcher

import (
	"context"

	"ewintr.nl/videotoken/model"
)

type Metadata struct {
	Title       string
	Description string
	Duration    string
	PublishedAt string
	Thumbnail   string
}

type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, tokens []model.VideoToken) (map[model.VideoToken]Metadata, error)
}
