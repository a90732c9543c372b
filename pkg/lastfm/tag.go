package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
)

// TagService provides tag lookups.
type TagService struct {
	client *Client
}

// Info fetches a tag's full record.
func (s *TagService) Info(ctx context.Context, tag string) (*Tag, error) {
	body, err := s.client.call(ctx, "tag.getInfo", map[string]string{"tag": tag}, "tag")
	if err != nil {
		return nil, err
	}

	var resp tagInfoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse tag info: %w", err)
	}

	return mapTag(resp.Tag)
}

// tagInfoResponse is the JSON response for tag.getInfo.
type tagInfoResponse struct {
	Tag tagInfo `json:"tag"`
}

type tagInfo struct {
	URL   string    `json:"url"`
	Name  string    `json:"name"`
	Image imageList `json:"image"`
	Reach count     `json:"reach"`
	Total count     `json:"total"`
	Wiki  struct {
		Content string `json:"content"`
	} `json:"wiki"`
	TopArtists struct {
		Artist oneOrMany[nameURL] `json:"artist"`
	} `json:"topartists"`
	TopAlbums struct {
		Album oneOrMany[nameURL] `json:"album"`
	} `json:"topalbums"`
	TopTracks struct {
		Track oneOrMany[nameURL] `json:"track"`
	} `json:"toptracks"`
}

// mapTag shapes a raw tag payload into a Tag.
func mapTag(t tagInfo) (*Tag, error) {
	reach, err := parseCount("tag.reach", t.Reach)
	if err != nil {
		return nil, err
	}
	total, err := parseCount("tag.total", t.Total)
	if err != nil {
		return nil, err
	}

	return &Tag{
		URL:        t.URL,
		Name:       t.Name,
		Wiki:       t.Wiki.Content,
		Image:      t.Image.largest(),
		Reach:      reach,
		Total:      total,
		TopArtists: nameURLs(t.TopArtists.Artist),
		TopAlbums:  nameURLs(t.TopAlbums.Album),
		TopTracks:  nameURLs(t.TopTracks.Track),
	}, nil
}
