// Package render turns client records into terminal tables.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/imeis/lastfm/pkg/lastfm"
)

// table renders a header and rows into an ASCII table.
func table(header []string, rows [][]string) string {
	out := new(bytes.Buffer)
	t := tablewriter.NewWriter(out)
	t.Header(header)
	for _, row := range rows {
		if err := t.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := t.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	return out.String()
}

// orDash substitutes a dash for absent optional values.
func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// Artists renders a ranked artist list.
func Artists(artists []lastfm.ArtistSummary) string {
	rows := make([][]string, len(artists))
	for i, a := range artists {
		rows[i] = []string{strconv.Itoa(i + 1), a.Name, strconv.Itoa(a.Plays), a.URL}
	}
	return table([]string{"#", "Artist", "Plays", "URL"}, rows)
}

// Albums renders a ranked album list.
func Albums(albums []lastfm.RankedAlbum) string {
	rows := make([][]string, len(albums))
	for i, a := range albums {
		rows[i] = []string{strconv.Itoa(i + 1), a.Name, a.Artist.Name, strconv.Itoa(a.Plays)}
	}
	return table([]string{"#", "Album", "Artist", "Plays"}, rows)
}

// Tracks renders a ranked track list.
func Tracks(tracks []lastfm.RankedTrack) string {
	rows := make([][]string, len(tracks))
	for i, t := range tracks {
		rows[i] = []string{strconv.Itoa(i + 1), t.Name, t.Artist.Name, strconv.Itoa(t.Plays)}
	}
	return table([]string{"#", "Track", "Artist", "Plays"}, rows)
}

// Tags renders a tag list.
func Tags(tags []lastfm.NameURL) string {
	rows := make([][]string, len(tags))
	for i, tag := range tags {
		rows[i] = []string{strconv.Itoa(i + 1), tag.Name, tag.URL}
	}
	return table([]string{"#", "Tag", "URL"}, rows)
}

// RecentTracks renders a listening history, marking the entry playing
// right now.
func RecentTracks(tracks []lastfm.RecentTrack) string {
	rows := make([][]string, len(tracks))
	for i, t := range tracks {
		state := ""
		if t.Playing {
			state = "now playing"
		}
		rows[i] = []string{t.Name, t.Artist.Name, strconv.Itoa(t.Plays), state}
	}
	return table([]string{"Track", "Artist", "Plays", ""}, rows)
}

// Profile renders a user profile.
func Profile(p *lastfm.Profile) string {
	rows := [][]string{
		{"Username", p.Username},
		{"Real name", orDash(p.RealName)},
		{"URL", p.URL},
		{"Country", orDash(p.Country)},
		{"Registered", p.Registered.Format(time.DateOnly)},
		{"Scrobbles", strconv.Itoa(p.Library.Scrobbles)},
		{"Artists", strconv.Itoa(p.Library.Artists)},
		{"Albums", strconv.Itoa(p.Library.Albums)},
		{"Tracks", strconv.Itoa(p.Library.Tracks)},
		{"Pro", strconv.FormatBool(p.Pro)},
	}
	return table([]string{"Field", "Value"}, rows)
}

// names joins a name/URL list into a comma separated line.
func names(list []lastfm.NameURL) string {
	if len(list) == 0 {
		return "-"
	}
	parts := make([]string, len(list))
	for i, n := range list {
		parts[i] = n.Name
	}
	return strings.Join(parts, ", ")
}

// Artist renders a full artist record.
func Artist(a *lastfm.Artist) string {
	rows := [][]string{
		{"Artist", a.Name},
		{"URL", a.URL},
		{"Your plays", strconv.Itoa(a.Plays)},
		{"Listeners", strconv.Itoa(a.Listeners)},
		{"Scrobbles", strconv.Itoa(a.Playcount)},
		{"Tags", names(a.Tags)},
		{"Similar", names(a.Similar)},
		{"Top tracks", names(a.Tracks)},
		{"Top albums", names(a.Albums)},
	}
	out := table([]string{"Field", "Value"}, rows)
	if a.Bio != "" {
		out += "\n" + a.Bio + "\n"
	}
	return out
}

// Album renders a full album record with its track listing.
func Album(a *lastfm.Album) string {
	rows := [][]string{
		{"Album", a.Name},
		{"Artist", a.Artist.Name},
		{"URL", a.URL},
		{"Your plays", strconv.Itoa(a.Plays)},
		{"Tags", names(a.Tags)},
	}
	out := table([]string{"Field", "Value"}, rows)

	if len(a.Tracks) > 0 {
		tracks := make([][]string, len(a.Tracks))
		for i, t := range a.Tracks {
			dur := "-"
			if t.Duration != nil {
				dur = fmt.Sprintf("%d:%02d", *t.Duration/60, *t.Duration%60)
			}
			tracks[i] = []string{strconv.Itoa(i + 1), t.Name, dur}
		}
		out += "\n" + table([]string{"#", "Track", "Length"}, tracks)
	}
	return out
}

// Track renders a full track record.
func Track(t *lastfm.Track) string {
	album := "-"
	if t.Album != nil {
		album = t.Album.Name
	}
	rows := [][]string{
		{"Track", t.Name},
		{"Artist", t.Artist.Name},
		{"Album", album},
		{"URL", t.URL},
		{"Your plays", strconv.Itoa(t.Plays)},
		{"Tags", names(t.Tags)},
	}
	return table([]string{"Field", "Value"}, rows)
}

// Tag renders a full tag record.
func Tag(t *lastfm.Tag) string {
	rows := [][]string{
		{"Tag", t.Name},
		{"URL", t.URL},
		{"Reach", strconv.Itoa(t.Reach)},
		{"Taggings", strconv.Itoa(t.Total)},
		{"Top artists", names(t.TopArtists)},
		{"Top albums", names(t.TopAlbums)},
		{"Top tracks", names(t.TopTracks)},
	}
	out := table([]string{"Field", "Value"}, rows)
	if t.Wiki != "" {
		out += "\n" + t.Wiki + "\n"
	}
	return out
}

// Snapshot renders the four ranked lists of a library snapshot,
// trimmed to the given number of entries per list.
func Snapshot(s *lastfm.LibrarySnapshot, top int) string {
	out := new(bytes.Buffer)
	fmt.Fprintf(out, "Top artists\n%s\n", Artists(clip(s.Artists, top)))
	fmt.Fprintf(out, "Top albums\n%s\n", Albums(clip(s.Albums, top)))
	fmt.Fprintf(out, "Top tracks\n%s\n", Tracks(clip(s.Tracks, top)))
	fmt.Fprintf(out, "Top tags\n%s", Tags(clip(s.Tags, top)))
	return out.String()
}

func clip[T any](list []T, n int) []T {
	if n > 0 && len(list) > n {
		return list[:n]
	}
	return list
}
