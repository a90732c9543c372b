package render

import (
	"strings"
	"testing"
	"time"

	"github.com/imeis/lastfm/pkg/lastfm"
)

func TestArtists(t *testing.T) {
	out := Artists([]lastfm.ArtistSummary{
		{URL: "http://a/low", Name: "Low", Plays: 500},
		{URL: "http://a/codeine", Name: "Codeine", Plays: 120},
	})

	for _, want := range []string{"Low", "Codeine", "500", "120", "http://a/low"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Low") > strings.Index(out, "Codeine") {
		t.Error("expected ranked order to be preserved")
	}
}

func TestRecentTracks_MarksPlaying(t *testing.T) {
	out := RecentTracks([]lastfm.RecentTrack{
		{Name: "Canada", Artist: lastfm.ArtistSummary{Name: "Low"}, Plays: 17, Playing: true},
		{Name: "Sunflower", Artist: lastfm.ArtistSummary{Name: "Low"}, Plays: 8},
	})

	if !strings.Contains(out, "now playing") {
		t.Errorf("expected playing marker in output:\n%s", out)
	}
}

func TestProfile_AbsentFieldsDashed(t *testing.T) {
	out := Profile(&lastfm.Profile{
		Username:   "alice",
		URL:        "http://u/alice",
		Registered: time.Unix(1037793040, 0).UTC(),
	})

	if !strings.Contains(out, "alice") {
		t.Errorf("expected username in output:\n%s", out)
	}
	if !strings.Contains(out, "-") {
		t.Errorf("expected dash for absent fields:\n%s", out)
	}
}

func TestArtist_IncludesBioAndLists(t *testing.T) {
	out := Artist(&lastfm.Artist{
		Name:      "Low",
		URL:       "http://a/low",
		Plays:     500,
		Listeners: 300000,
		Playcount: 9000000,
		Bio:       "Formed in Duluth in 1993.",
		Tags:      []lastfm.NameURL{{Name: "slowcore"}, {Name: "indie"}},
		Similar:   []lastfm.NameURL{{Name: "Codeine"}},
	})

	for _, want := range []string{"Low", "slowcore, indie", "Codeine", "Formed in Duluth"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestAlbum_TrackDurations(t *testing.T) {
	dur := 337
	out := Album(&lastfm.Album{
		Name:   "Things We Lost in the Fire",
		Artist: lastfm.NameURL{Name: "Low"},
		Tracks: []lastfm.AlbumTrack{
			{Name: "Sunflower", Duration: &dur},
			{Name: "Whitetail"},
		},
	})

	if !strings.Contains(out, "5:37") {
		t.Errorf("expected formatted duration in output:\n%s", out)
	}
	if !strings.Contains(out, "Whitetail") {
		t.Errorf("expected track without duration in output:\n%s", out)
	}
}

func TestTrack_AbsentAlbumDashed(t *testing.T) {
	out := Track(&lastfm.Track{
		Name:   "Those Girls",
		Artist: lastfm.NameURL{Name: "Low"},
	})

	if !strings.Contains(out, "-") {
		t.Errorf("expected dash for absent album:\n%s", out)
	}
}

func TestTag_TopLists(t *testing.T) {
	out := Tag(&lastfm.Tag{
		Name:       "slowcore",
		Reach:      12000,
		Total:      40000,
		Wiki:       "Slow tempos and minimal arrangements.",
		TopArtists: []lastfm.NameURL{{Name: "Low"}, {Name: "Codeine"}},
	})

	for _, want := range []string{"slowcore", "12000", "Low, Codeine", "Slow tempos"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestSnapshot_ClipsLists(t *testing.T) {
	snapshot := &lastfm.LibrarySnapshot{
		Artists: []lastfm.ArtistSummary{{Name: "Alpha"}, {Name: "Bravo"}, {Name: "Zebra"}},
	}
	out := Snapshot(snapshot, 2)

	if !strings.Contains(out, "Bravo") {
		t.Errorf("expected second entry in output:\n%s", out)
	}
	if strings.Contains(out, "Zebra") {
		t.Errorf("expected third entry to be clipped:\n%s", out)
	}
}
