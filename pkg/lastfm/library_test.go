package lastfm

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
)

// libraryHandler serves the four ranked list requests of a snapshot.
func libraryHandler(t *testing.T, failMethod string, calls *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		q := r.URL.Query()
		method := q.Get("method")
		if method == failMethod {
			fmt.Fprint(w, `{"error": 8}`)
			return
		}
		if got := q.Get("period"); got != "overall" {
			t.Errorf("expected period overall, got %q", got)
		}
		if got := q.Get("limit"); got != "1000" {
			t.Errorf("expected default limit 1000, got %q", got)
		}
		switch method {
		case "user.getTopArtists":
			fmt.Fprint(w, `{"topartists": {"artist": [
				{"url": "u1", "name": "Low", "image": [], "playcount": "500"}
			]}}`)
		case "user.getTopAlbums":
			fmt.Fprint(w, `{"topalbums": {"album": [
				{"url": "u2", "name": "Trust", "image": [], "playcount": "88",
					"artist": {"name": "Low", "url": "u1"}}
			]}}`)
		case "user.getTopTracks":
			fmt.Fprint(w, `{"toptracks": {"track": [
				{"url": "u3", "name": "Canada", "image": [], "playcount": "17",
					"artist": {"name": "Low", "url": "u1"}}
			]}}`)
		case "user.getTopTags":
			fmt.Fprint(w, `{"toptags": {"tag": [
				{"name": "slowcore", "url": "u4"}
			]}}`)
		default:
			t.Errorf("unexpected method %q", method)
			fmt.Fprint(w, `{"error": 3}`)
		}
	}
}

// TestLibraryService_Snapshot tests the 4-way fan-out and assembly by
// role.
func TestLibraryService_Snapshot(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, libraryHandler(t, "", &calls))

	snapshot, err := client.Library().Snapshot(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 4 {
		t.Errorf("expected exactly 4 sub-requests, got %d", got)
	}
	if len(snapshot.Artists) != 1 || snapshot.Artists[0].Name != "Low" {
		t.Errorf("unexpected artists %+v", snapshot.Artists)
	}
	if len(snapshot.Albums) != 1 || snapshot.Albums[0].Plays != 88 {
		t.Errorf("unexpected albums %+v", snapshot.Albums)
	}
	if len(snapshot.Tracks) != 1 || snapshot.Tracks[0].Name != "Canada" {
		t.Errorf("unexpected tracks %+v", snapshot.Tracks)
	}
	if len(snapshot.Tags) != 1 || snapshot.Tags[0].Name != "slowcore" {
		t.Errorf("unexpected tags %+v", snapshot.Tags)
	}
}

// TestLibraryService_Snapshot_BranchFailure verifies any failing
// branch fails the whole call with no partial result.
func TestLibraryService_Snapshot_BranchFailure(t *testing.T) {
	for _, failMethod := range []string{
		"user.getTopArtists",
		"user.getTopAlbums",
		"user.getTopTracks",
		"user.getTopTags",
	} {
		t.Run(failMethod, func(t *testing.T) {
			var calls atomic.Int32
			client, _ := newTestClient(t, libraryHandler(t, failMethod, &calls))

			snapshot, err := client.Library().Snapshot(context.Background(), "alice")
			if err == nil {
				t.Fatal("expected snapshot to fail")
			}
			if snapshot != nil {
				t.Errorf("expected no partial snapshot, got %+v", snapshot)
			}
		})
	}
}

// TestLibraryService_Tags passes the period through to the API.
func TestLibraryService_Tags(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("method"); got != "user.getTopTags" {
			t.Errorf("expected method user.getTopTags, got %q", got)
		}
		if got := q.Get("period"); got != "3month" {
			t.Errorf("expected period 3month, got %q", got)
		}
		fmt.Fprint(w, `{"toptags": {"tag": {"name": "ambient", "url": "u"}}}`)
	})

	tags, err := client.Library().Tags(context.Background(), "alice", PeriodQuarter, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 1 || tags[0].Name != "ambient" {
		t.Errorf("unexpected tags %+v", tags)
	}
}
