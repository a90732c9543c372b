package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
)

// AlbumService provides album lookups.
type AlbumService struct {
	client *Client
}

// Info fetches an album's full record. The user parameter is required
// for the same reason as ArtistService.Info: the personal play count
// only appears when a username accompanies the request.
func (s *AlbumService) Info(ctx context.Context, artist, album, user string) (*Album, error) {
	params := map[string]string{
		"artist": artist,
		"album":  album,
	}
	if user != "" {
		params["username"] = user
	}
	body, err := s.client.call(ctx, "album.getInfo", params, "album")
	if err != nil {
		return nil, err
	}

	var resp albumInfoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse album info: %w", err)
	}

	return mapAlbum(resp.Album)
}

// albumInfoResponse is the JSON response for album.getInfo.
type albumInfoResponse struct {
	Album albumInfo `json:"album"`
}

type albumInfo struct {
	URL           string    `json:"url"`
	Name          string    `json:"name"`
	Image         imageList `json:"image"`
	UserPlaycount count     `json:"userplaycount"`
	Artist        nameURL   `json:"artist"`
	Tracks        struct {
		Track oneOrMany[albumTrack] `json:"track"`
	} `json:"tracks"`
	Tags struct {
		Tag oneOrMany[nameURL] `json:"tag"`
	} `json:"tags"`
}

type albumTrack struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Duration count  `json:"duration"`
}

// mapAlbum shapes a raw album payload into an Album.
func mapAlbum(a albumInfo) (*Album, error) {
	plays, err := parseCount("album.userplaycount", a.UserPlaycount)
	if err != nil {
		return nil, err
	}

	tracks := make([]AlbumTrack, len(a.Tracks.Track))
	for i, t := range a.Tracks.Track {
		duration, err := parseOptCount("track.duration", t.Duration)
		if err != nil {
			return nil, err
		}
		tracks[i] = AlbumTrack{URL: t.URL, Name: t.Name, Duration: duration}
	}

	return &Album{
		URL:    a.URL,
		Name:   a.Name,
		Image:  a.Image.largest(),
		Plays:  plays,
		Artist: NameURL{Name: a.Artist.Name, URL: a.Artist.URL},
		Tracks: tracks,
		Tags:   nameURLs(a.Tags.Tag),
	}, nil
}
