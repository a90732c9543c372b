package lastfm

import (
	"time"
)

// NameURL is a name and canonical URL pair.
type NameURL struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LibraryCounts holds a user's library totals.
type LibraryCounts struct {
	Scrobbles int `json:"scrobbles"`
	Artists   int `json:"artists"`
	Albums    int `json:"albums"`
	Tracks    int `json:"tracks"`
}

// Profile describes a Last.fm user.
type Profile struct {
	URL        string        `json:"url"`
	Username   string        `json:"username"`
	RealName   *string       `json:"real_name,omitempty"`
	Avatar     *string       `json:"avatar,omitempty"`
	Library    LibraryCounts `json:"library"`
	Registered time.Time     `json:"registered"`
	Country    *string       `json:"country,omitempty"`
	Age        int           `json:"age"`
	Pro        bool          `json:"pro"`
}

// ArtistSummary is the compact artist shape used inside composite
// results and ranked artist lists.
type ArtistSummary struct {
	URL   string  `json:"url"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
	Plays int     `json:"plays"`
}

// RecentTrack is one entry of a user's listening history. Playing is
// true only for the entry the user is listening to right now.
type RecentTrack struct {
	URL     string        `json:"url"`
	Name    string        `json:"name"`
	Image   *string       `json:"image,omitempty"`
	Plays   int           `json:"plays"`
	Playing bool          `json:"playing"`
	Artist  ArtistSummary `json:"artist"`
}

// NowPlayingAlbum is the album portion of a NowPlaying result. It is
// present only when the played track names an album.
type NowPlayingAlbum struct {
	URL    string    `json:"url"`
	Name   string    `json:"name"`
	Image  *string   `json:"image,omitempty"`
	Plays  int       `json:"plays"`
	Tracks []NameURL `json:"tracks"`
}

// NowPlaying is the composite current-track result: the most recently
// played track with its artist, optional album and the listener's
// profile.
type NowPlaying struct {
	URL     string           `json:"url"`
	Name    string           `json:"name"`
	Image   *string          `json:"image,omitempty"`
	Plays   int              `json:"plays"`
	Playing bool             `json:"playing"`
	Artist  ArtistSummary    `json:"artist"`
	Album   *NowPlayingAlbum `json:"album,omitempty"`
	User    Profile          `json:"user"`
}

// Artist is the full artist record from artist.getInfo.
type Artist struct {
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	Image     *string   `json:"image,omitempty"`
	Plays     int       `json:"plays"`
	Listeners int       `json:"listeners"`
	Playcount int       `json:"playcount"`
	Bio       string    `json:"bio"`
	Tags      []NameURL `json:"tags"`
	Similar   []NameURL `json:"similar"`
	Tracks    []NameURL `json:"tracks"`
	Albums    []NameURL `json:"albums"`
}

// AlbumTrack is one track of an album listing. Duration is nil when
// the API does not know it.
type AlbumTrack struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Duration *int   `json:"duration,omitempty"`
}

// Album is the full album record from album.getInfo.
type Album struct {
	URL    string       `json:"url"`
	Name   string       `json:"name"`
	Image  *string      `json:"image,omitempty"`
	Plays  int          `json:"plays"`
	Artist NameURL      `json:"artist"`
	Tracks []AlbumTrack `json:"tracks"`
	Tags   []NameURL    `json:"tags"`
}

// Track is the full track record from track.getInfo. Album is nil for
// tracks without an album.
type Track struct {
	URL    string    `json:"url"`
	Name   string    `json:"name"`
	Image  *string   `json:"image,omitempty"`
	Plays  int       `json:"plays"`
	Artist NameURL   `json:"artist"`
	Album  *NameURL  `json:"album,omitempty"`
	Tags   []NameURL `json:"tags"`
}

// Tag is the full tag record from tag.getInfo.
type Tag struct {
	URL        string    `json:"url"`
	Name       string    `json:"name"`
	Wiki       string    `json:"wiki"`
	Image      *string   `json:"image,omitempty"`
	Reach      int       `json:"reach"`
	Total      int       `json:"total"`
	TopArtists []NameURL `json:"top_artists"`
	TopAlbums  []NameURL `json:"top_albums"`
	TopTracks  []NameURL `json:"top_tracks"`
}

// RankedTrack is one entry of a top-tracks list.
type RankedTrack struct {
	URL    string  `json:"url"`
	Name   string  `json:"name"`
	Image  *string `json:"image,omitempty"`
	Plays  int     `json:"plays"`
	Artist NameURL `json:"artist"`
}

// RankedAlbum is one entry of a top-albums list.
type RankedAlbum struct {
	URL    string  `json:"url"`
	Name   string  `json:"name"`
	Image  *string `json:"image,omitempty"`
	Plays  int     `json:"plays"`
	Artist NameURL `json:"artist"`
}

// LibrarySnapshot aggregates the four ranked lists of a user's library
// over the overall period.
type LibrarySnapshot struct {
	Artists []ArtistSummary `json:"artists"`
	Albums  []RankedAlbum   `json:"albums"`
	Tracks  []RankedTrack   `json:"tracks"`
	Tags    []NameURL       `json:"tags"`
}
