package lastfm

import (
	"context"
	"fmt"
	"net/http"
	"testing"
)

// TestAlbumService_Info tests the album mapping, including optional
// track durations.
func TestAlbumService_Info(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("artist") != "Low" || q.Get("album") != "Trust" {
			t.Errorf("unexpected lookup %q / %q", q.Get("artist"), q.Get("album"))
		}
		fmt.Fprint(w, `{"album": {
			"url": "http://al/trust", "name": "Trust",
			"image": [{"size": "extralarge", "#text": "http://i/trust.png"}],
			"userplaycount": "88",
			"artist": {"name": "Low", "url": "http://a/low"},
			"tracks": {"track": [
				{"url": "http://t/1", "name": "(That's How You Sing) Amazing Grace", "duration": "337"},
				{"url": "http://t/2", "name": "Canada", "duration": null}
			]},
			"tags": {"tag": [
				{"name": "slowcore", "url": "http://t/slowcore"},
				{"name": "sadcore", "url": "http://t/sadcore"}
			]}
		}}`)
	})

	album, err := client.Album().Info(context.Background(), "Low", "Trust", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if album.Plays != 88 {
		t.Errorf("expected plays 88, got %d", album.Plays)
	}
	if album.Artist != (NameURL{Name: "Low", URL: "http://a/low"}) {
		t.Errorf("unexpected artist reference %+v", album.Artist)
	}
	if len(album.Tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(album.Tracks))
	}
	if album.Tracks[0].Duration == nil || *album.Tracks[0].Duration != 337 {
		t.Errorf("unexpected duration %v", album.Tracks[0].Duration)
	}
	if album.Tracks[1].Duration != nil {
		t.Errorf("expected absent duration, got %d", *album.Tracks[1].Duration)
	}
	if len(album.Tags) != 2 || album.Tags[0].Name != "slowcore" {
		t.Errorf("unexpected tags %+v", album.Tags)
	}
}

// TestAlbumService_Info_SingleTrack verifies the single-object track
// payload normalizes to a one-element list.
func TestAlbumService_Info_SingleTrack(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"album": {
			"url": "u", "name": "Single", "image": [], "userplaycount": "1",
			"artist": {"name": "A", "url": "ua"},
			"tracks": {"track": {"url": "http://t/only", "name": "Only One", "duration": "200"}},
			"tags": {"tag": []}
		}}`)
	})

	album, err := client.Album().Info(context.Background(), "A", "Single", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(album.Tracks) != 1 || album.Tracks[0].Name != "Only One" {
		t.Errorf("expected one-element track list, got %+v", album.Tracks)
	}
}

// TestAlbumService_Info_MissingPayload tests the required-field check.
func TestAlbumService_Info_MissingPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})

	_, err := client.Album().Info(context.Background(), "A", "B", "alice")
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != `expected field "album" missing from response` {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
}
