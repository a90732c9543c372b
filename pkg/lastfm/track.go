package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
)

// TrackService provides track lookups.
type TrackService struct {
	client *Client
}

// Info fetches a track's full record for a user, the username scoping
// the personal play count.
func (s *TrackService) Info(ctx context.Context, artist, track, user string) (*Track, error) {
	body, err := s.client.call(ctx, "track.getInfo", map[string]string{
		"username": user,
		"artist":   artist,
		"track":    track,
	}, "track")
	if err != nil {
		return nil, err
	}

	var resp trackInfoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse track info: %w", err)
	}

	return mapTrack(resp.Track)
}

// trackInfoResponse is the JSON response for track.getInfo.
type trackInfoResponse struct {
	Track trackInfo `json:"track"`
}

type trackInfo struct {
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	Image     imageList `json:"image"`
	Playcount count     `json:"userplaycount"`
	Artist    nameURL   `json:"artist"`
	Album     *nameURL  `json:"album"`
	TopTags   struct {
		Tag oneOrMany[nameURL] `json:"tag"`
	} `json:"toptags"`
}

// mapTrack shapes a raw track payload into a Track. The album
// reference stays absent for tracks the API knows no album for.
func mapTrack(t trackInfo) (*Track, error) {
	plays, err := parseCount("track.userplaycount", t.Playcount)
	if err != nil {
		return nil, err
	}

	track := &Track{
		URL:    t.URL,
		Name:   t.Name,
		Image:  t.Image.largest(),
		Plays:  plays,
		Artist: NameURL{Name: t.Artist.Name, URL: t.Artist.URL},
		Tags:   nameURLs(t.TopTags.Tag),
	}
	if t.Album != nil {
		track.Album = &NameURL{Name: t.Album.Name, URL: t.Album.URL}
	}
	return track, nil
}
