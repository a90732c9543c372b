package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
)

// ArtistService provides artist lookups.
type ArtistService struct {
	client *Client
}

// Info fetches an artist's full record. The user parameter is required
// because the API only includes the personal play count when a username
// accompanies the request, and the record carries that count.
func (s *ArtistService) Info(ctx context.Context, artist, user string) (*Artist, error) {
	params := map[string]string{"artist": artist}
	if user != "" {
		params["username"] = user
	}
	body, err := s.client.call(ctx, "artist.getInfo", params, "artist")
	if err != nil {
		return nil, err
	}

	var resp artistInfoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse artist info: %w", err)
	}

	return mapArtist(resp.Artist)
}

// artistInfoResponse is the JSON response for artist.getInfo.
type artistInfoResponse struct {
	Artist artistInfo `json:"artist"`
}

type artistInfo struct {
	URL   string    `json:"url"`
	Name  string    `json:"name"`
	Image imageList `json:"image"`
	Stats struct {
		Listeners     count `json:"listeners"`
		Playcount     count `json:"playcount"`
		UserPlaycount count `json:"userplaycount"`
	} `json:"stats"`
	Bio struct {
		Content string `json:"content"`
	} `json:"bio"`
	Tags struct {
		Tag oneOrMany[nameURL] `json:"tag"`
	} `json:"tags"`
	Similar struct {
		Artist oneOrMany[nameURL] `json:"artist"`
	} `json:"similar"`
	TopTracks struct {
		Track oneOrMany[nameURL] `json:"track"`
	} `json:"toptracks"`
	TopAlbums struct {
		Album oneOrMany[nameURL] `json:"album"`
	} `json:"topalbums"`
}

// mapArtist shapes a raw artist payload into an Artist.
func mapArtist(a artistInfo) (*Artist, error) {
	plays, err := parseCount("artist.stats.userplaycount", a.Stats.UserPlaycount)
	if err != nil {
		return nil, err
	}
	listeners, err := parseCount("artist.stats.listeners", a.Stats.Listeners)
	if err != nil {
		return nil, err
	}
	playcount, err := parseCount("artist.stats.playcount", a.Stats.Playcount)
	if err != nil {
		return nil, err
	}

	return &Artist{
		URL:       a.URL,
		Name:      a.Name,
		Image:     a.Image.largest(),
		Plays:     plays,
		Listeners: listeners,
		Playcount: playcount,
		Bio:       a.Bio.Content,
		Tags:      nameURLs(a.Tags.Tag),
		Similar:   nameURLs(a.Similar.Artist),
		Tracks:    nameURLs(a.TopTracks.Track),
		Albums:    nameURLs(a.TopAlbums.Album),
	}, nil
}
