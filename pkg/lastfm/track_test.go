package lastfm

import (
	"context"
	"fmt"
	"net/http"
	"testing"
)

// TestTrackService_Info tests the track mapping with an album present.
func TestTrackService_Info(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("username") != "alice" || q.Get("artist") != "Low" || q.Get("track") != "Canada" {
			t.Errorf("unexpected lookup %v", q)
		}
		fmt.Fprint(w, `{"track": {
			"url": "http://t/canada", "name": "Canada",
			"image": [{"size": "extralarge", "#text": "http://i/canada.png"}],
			"userplaycount": "17",
			"artist": {"name": "Low", "url": "http://a/low"},
			"album": {"name": "Trust", "url": "http://al/trust"},
			"toptags": {"tag": [{"name": "slowcore", "url": "http://t/slowcore"}]}
		}}`)
	})

	track, err := client.Track().Info(context.Background(), "Low", "Canada", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if track.Plays != 17 {
		t.Errorf("expected plays 17, got %d", track.Plays)
	}
	if track.Artist != (NameURL{Name: "Low", URL: "http://a/low"}) {
		t.Errorf("unexpected artist %+v", track.Artist)
	}
	if track.Album == nil || *track.Album != (NameURL{Name: "Trust", URL: "http://al/trust"}) {
		t.Errorf("unexpected album %+v", track.Album)
	}
	if len(track.Tags) != 1 {
		t.Errorf("unexpected tags %+v", track.Tags)
	}
}

// TestTrackService_Info_NoAlbum verifies tracks without an album keep
// the reference absent.
func TestTrackService_Info_NoAlbum(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"track": {
			"url": "u", "name": "Stray", "image": [], "userplaycount": "2",
			"artist": {"name": "A", "url": "ua"},
			"toptags": {"tag": []}
		}}`)
	})

	track, err := client.Track().Info(context.Background(), "A", "Stray", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.Album != nil {
		t.Errorf("expected absent album, got %+v", track.Album)
	}
}
