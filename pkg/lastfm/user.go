package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// UserService provides user-centric operations: profile lookup,
// listening history and ranked top lists.
type UserService struct {
	client *Client
}

// Info fetches a user's profile.
func (s *UserService) Info(ctx context.Context, user string) (*Profile, error) {
	body, err := s.client.call(ctx, "user.getInfo", map[string]string{"username": user}, "user")
	if err != nil {
		return nil, err
	}

	var resp userInfoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse user info: %w", err)
	}

	return mapProfile(resp.User)
}

// RecentTracks fetches a user's listening history, most recent first.
// A non-positive limit requests the default of 1000 entries.
func (s *UserService) RecentTracks(ctx context.Context, user string, limit int) ([]RecentTrack, error) {
	resp, err := s.recentTracks(ctx, user, limit)
	if err != nil {
		return nil, err
	}

	tracks := make([]RecentTrack, len(resp.RecentTracks.Track))
	for i, t := range resp.RecentTracks.Track {
		mapped, err := mapRecentTrack(t)
		if err != nil {
			return nil, err
		}
		tracks[i] = *mapped
	}
	return tracks, nil
}

// NowPlaying fetches the track a user is currently (or most recently)
// listening to, joined with the track's own stats, its artist, its
// album when one is named, and the user's profile.
//
// The constituent lookups run concurrently; the first failure cancels
// the rest and fails the whole call. The album portion of the result
// is omitted entirely when the played track names no album.
func (s *UserService) NowPlaying(ctx context.Context, user string) (*NowPlaying, error) {
	recent, err := s.recentTracks(ctx, user, 1)
	if err != nil {
		return nil, err
	}
	if len(recent.RecentTracks.Track) == 0 {
		return nil, missingFieldError("recenttracks")
	}
	played := recent.RecentTracks.Track[0]
	artistName := played.Artist.displayName()

	var (
		userResp   userInfoResponse
		trackResp  trackInfoResponse
		artistResp artistInfoResponse
		albumResp  *albumInfoResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		body, err := s.client.call(gctx, "user.getInfo", map[string]string{"username": user}, "user")
		if err != nil {
			return err
		}
		return json.Unmarshal(body, &userResp)
	})
	g.Go(func() error {
		body, err := s.client.call(gctx, "track.getInfo", map[string]string{
			"username": user,
			"artist":   artistName,
			"track":    played.Name,
		}, "track")
		if err != nil {
			return err
		}
		return json.Unmarshal(body, &trackResp)
	})
	g.Go(func() error {
		body, err := s.client.call(gctx, "artist.getInfo", map[string]string{
			"username": user,
			"artist":   artistName,
		}, "artist")
		if err != nil {
			return err
		}
		return json.Unmarshal(body, &artistResp)
	})
	if played.Album.Text != "" {
		g.Go(func() error {
			body, err := s.client.call(gctx, "album.getInfo", map[string]string{
				"username": user,
				"artist":   artistName,
				"album":    played.Album.Text,
			}, "album")
			if err != nil {
				return err
			}
			albumResp = &albumInfoResponse{}
			return json.Unmarshal(body, albumResp)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	plays, err := parseCount("track.userplaycount", trackResp.Track.Playcount)
	if err != nil {
		return nil, err
	}
	artistPlays, err := parseCount("artist.stats.userplaycount", artistResp.Artist.Stats.UserPlaycount)
	if err != nil {
		return nil, err
	}
	profile, err := mapProfile(userResp.User)
	if err != nil {
		return nil, err
	}

	now := &NowPlaying{
		URL:     trackResp.Track.URL,
		Name:    trackResp.Track.Name,
		Image:   played.Image.largest(),
		Plays:   plays,
		Playing: played.Date == nil,
		Artist: ArtistSummary{
			URL:   artistResp.Artist.URL,
			Name:  artistResp.Artist.Name,
			Image: artistResp.Artist.Image.largest(),
			Plays: artistPlays,
		},
		User: *profile,
	}

	if albumResp != nil {
		albumPlays, err := parseCount("album.userplaycount", albumResp.Album.UserPlaycount)
		if err != nil {
			return nil, err
		}
		tracks := make([]NameURL, len(albumResp.Album.Tracks.Track))
		for i, t := range albumResp.Album.Tracks.Track {
			tracks[i] = NameURL{Name: t.Name, URL: t.URL}
		}
		now.Album = &NowPlayingAlbum{
			URL:    albumResp.Album.URL,
			Name:   albumResp.Album.Name,
			Image:  albumResp.Album.Image.largest(),
			Plays:  albumPlays,
			Tracks: tracks,
		}
	}

	return now, nil
}

// TopArtists fetches a user's most played artists over a period.
func (s *UserService) TopArtists(ctx context.Context, user string, period Period, limit int) ([]ArtistSummary, error) {
	body, err := s.client.call(ctx, "user.getTopArtists", topListParams(user, period, limit), "topartists")
	if err != nil {
		return nil, err
	}

	var resp topArtistsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse top artists: %w", err)
	}

	artists := make([]ArtistSummary, len(resp.TopArtists.Artist))
	for i, a := range resp.TopArtists.Artist {
		plays, err := parseCount("artist.playcount", a.Playcount)
		if err != nil {
			return nil, err
		}
		artists[i] = ArtistSummary{URL: a.URL, Name: a.Name, Image: a.Image.largest(), Plays: plays}
	}
	return artists, nil
}

// TopTracks fetches a user's most played tracks over a period.
func (s *UserService) TopTracks(ctx context.Context, user string, period Period, limit int) ([]RankedTrack, error) {
	body, err := s.client.call(ctx, "user.getTopTracks", topListParams(user, period, limit), "toptracks")
	if err != nil {
		return nil, err
	}

	var resp topTracksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse top tracks: %w", err)
	}

	tracks := make([]RankedTrack, len(resp.TopTracks.Track))
	for i, t := range resp.TopTracks.Track {
		plays, err := parseCount("track.playcount", t.Playcount)
		if err != nil {
			return nil, err
		}
		tracks[i] = RankedTrack{
			URL:    t.URL,
			Name:   t.Name,
			Image:  t.Image.largest(),
			Plays:  plays,
			Artist: NameURL{Name: t.Artist.Name, URL: t.Artist.URL},
		}
	}
	return tracks, nil
}

// TopAlbums fetches a user's most played albums over a period.
func (s *UserService) TopAlbums(ctx context.Context, user string, period Period, limit int) ([]RankedAlbum, error) {
	body, err := s.client.call(ctx, "user.getTopAlbums", topListParams(user, period, limit), "topalbums")
	if err != nil {
		return nil, err
	}

	var resp topAlbumsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse top albums: %w", err)
	}

	albums := make([]RankedAlbum, len(resp.TopAlbums.Album))
	for i, a := range resp.TopAlbums.Album {
		plays, err := parseCount("album.playcount", a.Playcount)
		if err != nil {
			return nil, err
		}
		albums[i] = RankedAlbum{
			URL:    a.URL,
			Name:   a.Name,
			Image:  a.Image.largest(),
			Plays:  plays,
			Artist: NameURL{Name: a.Artist.Name, URL: a.Artist.URL},
		}
	}
	return albums, nil
}

// TopTags fetches a user's most used tags over a period.
func (s *UserService) TopTags(ctx context.Context, user string, period Period, limit int) ([]NameURL, error) {
	body, err := s.client.call(ctx, "user.getTopTags", topListParams(user, period, limit), "toptags")
	if err != nil {
		return nil, err
	}

	var resp topTagsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse top tags: %w", err)
	}

	return nameURLs(resp.TopTags.Tag), nil
}

// recentTracks performs the raw user.getRecentTracks request shared by
// RecentTracks and NowPlaying.
func (s *UserService) recentTracks(ctx context.Context, user string, limit int) (*recentTracksResponse, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	body, err := s.client.call(ctx, "user.getRecentTracks", map[string]string{
		"username":     user,
		"limit":        strconv.Itoa(limit),
		"autoscorrect": "1",
	}, "recenttracks")
	if err != nil {
		return nil, err
	}

	var resp recentTracksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse recent tracks: %w", err)
	}
	return &resp, nil
}

// topListParams builds the shared parameter set of the user.getTop*
// methods.
func topListParams(user string, period Period, limit int) map[string]string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return map[string]string{
		"username": user,
		"period":   string(period),
		"limit":    strconv.Itoa(limit),
	}
}

// userInfoResponse is the JSON response for user.getInfo.
type userInfoResponse struct {
	User userInfo `json:"user"`
}

type userInfo struct {
	URL         string    `json:"url"`
	Name        string    `json:"name"`
	RealName    string    `json:"realname"`
	Image       imageList `json:"image"`
	Playcount   count     `json:"playcount"`
	ArtistCount count     `json:"artist_count"`
	AlbumCount  count     `json:"album_count"`
	TrackCount  count     `json:"track_count"`
	Registered  struct {
		Unixtime count `json:"unixtime"`
		Text     count `json:"#text"`
	} `json:"registered"`
	Country string `json:"country"`
	Age     count  `json:"age"`
	Type    string `json:"type"`
}

// mapProfile shapes a raw user payload into a Profile.
func mapProfile(u userInfo) (*Profile, error) {
	scrobbles, err := parseCount("user.playcount", u.Playcount)
	if err != nil {
		return nil, err
	}
	artists, err := parseCount("user.artist_count", u.ArtistCount)
	if err != nil {
		return nil, err
	}
	albums, err := parseCount("user.album_count", u.AlbumCount)
	if err != nil {
		return nil, err
	}
	tracks, err := parseCount("user.track_count", u.TrackCount)
	if err != nil {
		return nil, err
	}
	age, err := parseCount("user.age", u.Age)
	if err != nil {
		return nil, err
	}
	registered, err := parseCount("user.registered", u.Registered.Text)
	if err != nil {
		return nil, err
	}

	return &Profile{
		URL:      u.URL,
		Username: u.Name,
		RealName: optText(u.RealName),
		Avatar:   avatarURL(u.Image),
		Library: LibraryCounts{
			Scrobbles: scrobbles,
			Artists:   artists,
			Albums:    albums,
			Tracks:    tracks,
		},
		Registered: time.Unix(int64(registered), 0).UTC(),
		Country:    optText(u.Country),
		Age:        age,
		Pro:        u.Type == "subscriber",
	}, nil
}

// avatarURL selects the largest avatar variant, swapping the static
// .png extension for the animated .gif one the site serves.
func avatarURL(images imageList) *string {
	if len(images) == 0 {
		return nil
	}
	return optText(strings.ReplaceAll(images[len(images)-1].URL, ".png", ".gif"))
}

// recentTracksResponse is the JSON response for user.getRecentTracks.
type recentTracksResponse struct {
	RecentTracks struct {
		Track oneOrMany[recentTrack] `json:"track"`
	} `json:"recenttracks"`
}

type recentTrack struct {
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	Image     imageList `json:"image"`
	Playcount count     `json:"userplaycount"`
	Date      *struct {
		UTS  count  `json:"uts"`
		Text string `json:"#text"`
	} `json:"date"`
	Artist recentArtist `json:"artist"`
	Album  struct {
		Text string `json:"#text"`
	} `json:"album"`
}

type recentArtist struct {
	Text  string    `json:"#text"`
	Name  string    `json:"name"`
	URL   string    `json:"url"`
	Image imageList `json:"image"`
	Stats struct {
		UserPlaycount count `json:"userplaycount"`
	} `json:"stats"`
}

// displayName returns the artist name regardless of which of the two
// spellings ("#text" or "name") this response used.
func (a recentArtist) displayName() string {
	if a.Text != "" {
		return a.Text
	}
	return a.Name
}

// mapRecentTrack shapes one history entry. An entry without a date is
// the one currently playing.
func mapRecentTrack(t recentTrack) (*RecentTrack, error) {
	plays, err := parseCount("track.userplaycount", t.Playcount)
	if err != nil {
		return nil, err
	}
	artistPlays, err := parseCount("artist.stats.userplaycount", t.Artist.Stats.UserPlaycount)
	if err != nil {
		return nil, err
	}

	return &RecentTrack{
		URL:     t.URL,
		Name:    t.Name,
		Image:   t.Image.largest(),
		Plays:   plays,
		Playing: t.Date == nil,
		Artist: ArtistSummary{
			URL:   t.Artist.URL,
			Name:  t.Artist.displayName(),
			Image: t.Artist.Image.largest(),
			Plays: artistPlays,
		},
	}, nil
}

// topArtistsResponse is the JSON response for user.getTopArtists.
type topArtistsResponse struct {
	TopArtists struct {
		Artist oneOrMany[rankedArtist] `json:"artist"`
	} `json:"topartists"`
}

type rankedArtist struct {
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	Image     imageList `json:"image"`
	Playcount count     `json:"playcount"`
}

// topTracksResponse is the JSON response for user.getTopTracks.
type topTracksResponse struct {
	TopTracks struct {
		Track oneOrMany[rankedTrack] `json:"track"`
	} `json:"toptracks"`
}

type rankedTrack struct {
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	Image     imageList `json:"image"`
	Playcount count     `json:"playcount"`
	Artist    nameURL   `json:"artist"`
}

// topAlbumsResponse is the JSON response for user.getTopAlbums.
type topAlbumsResponse struct {
	TopAlbums struct {
		Album oneOrMany[rankedAlbum] `json:"album"`
	} `json:"topalbums"`
}

type rankedAlbum struct {
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	Image     imageList `json:"image"`
	Playcount count     `json:"playcount"`
	Artist    nameURL   `json:"artist"`
}

// topTagsResponse is the JSON response for user.getTopTags.
type topTagsResponse struct {
	TopTags struct {
		Tag oneOrMany[nameURL] `json:"tag"`
	} `json:"toptags"`
}
