package fetcher

import (
	"context"
	"fmt"

	"ewintr.nl/videotoken/model"
	"google.golang.org/api/youtube/v3"
)

// maxVideosPerCall is the page limit of the videos endpoint.
const maxVideosPerCall = 50

type Youtube struct {
	Client *youtube.Service
}

func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{Client: client}
}

// FetchMetadata looks up the YouTube tokens among the given ones. Tokens of
// other providers and videos the api does not know are left out of the result.
func (y *Youtube) FetchMetadata(ctx context.Context, tokens []model.VideoToken) (map[model.VideoToken]Metadata, error) {
	byID := make(map[string]model.VideoToken, len(tokens))
	ids := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Provider() != model.ProviderYouTube {
			continue
		}
		if _, ok := byID[t.Token()]; ok {
			continue
		}
		byID[t.Token()] = t
		ids = append(ids, t.Token())
	}

	mds := make(map[model.VideoToken]Metadata, len(ids))
	for start := 0; start < len(ids); start += maxVideosPerCall {
		end := start + maxVideosPerCall
		if end > len(ids) {
			end = len(ids)
		}

		response, err := y.Client.Videos.
			List([]string{"snippet", "contentDetails"}).
			Id(ids[start:end]...).
			Context(ctx).
			Do()
		if err != nil {
			return map[model.VideoToken]Metadata{}, fmt.Errorf("failed to list videos: %w", err)
		}

		for _, item := range response.Items {
			t, ok := byID[item.Id]
			if !ok || item.Snippet == nil {
				continue
			}
			md := Metadata{
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
				PublishedAt: item.Snippet.PublishedAt,
				Thumbnail:   bestThumbnail(item.Snippet.Thumbnails),
			}
			if item.ContentDetails != nil {
				md.Duration = item.ContentDetails.Duration
			}

			mds[t] = md
		}
	}

	return mds, nil
}

func bestThumbnail(td *youtube.ThumbnailDetails) string {
	if td == nil {
		return ""
	}
	for _, th := range []*youtube.Thumbnail{td.Maxres, td.Standard, td.High, td.Medium, td.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}

	return ""
}
