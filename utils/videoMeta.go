package utils

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// VideoMeta is the subset of oEmbed data shown on the lesson page.
type VideoMeta struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// FetchVideoMeta resolves oEmbed metadata for a lesson's video link. Callers
// treat failures as cosmetic; the lesson still renders without metadata.
func FetchVideoMeta(videoURL string) (*VideoMeta, error) {
	client := resty.New().SetTimeout(3 * time.Second)

	var meta VideoMeta
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"url":    videoURL,
			"format": "json",
		}).
		SetResult(&meta).
		Get("https://www.youtube.com/oembed")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("oembed lookup failed with status %d", resp.StatusCode())
	}
	return &meta, nil
}
