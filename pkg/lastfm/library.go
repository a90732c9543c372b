package lastfm

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// LibraryService aggregates a user's library: the ranked artist, album,
// track and tag lists.
type LibraryService struct {
	client *Client
}

// Artists returns the user's most played artists over a period.
func (s *LibraryService) Artists(ctx context.Context, user string, period Period, limit int) ([]ArtistSummary, error) {
	return s.client.user.TopArtists(ctx, user, period, limit)
}

// Albums returns the user's most played albums over a period.
func (s *LibraryService) Albums(ctx context.Context, user string, period Period, limit int) ([]RankedAlbum, error) {
	return s.client.user.TopAlbums(ctx, user, period, limit)
}

// Tracks returns the user's most played tracks over a period.
func (s *LibraryService) Tracks(ctx context.Context, user string, period Period, limit int) ([]RankedTrack, error) {
	return s.client.user.TopTracks(ctx, user, period, limit)
}

// Tags returns the user's most used tags over a period.
func (s *LibraryService) Tags(ctx context.Context, user string, period Period, limit int) ([]NameURL, error) {
	return s.client.user.TopTags(ctx, user, period, limit)
}

// Snapshot fetches the four overall ranked lists concurrently and
// joins them into one record. The four requests are independent; the
// first failure cancels the rest and fails the whole call, never
// returning a partial snapshot.
func (s *LibraryService) Snapshot(ctx context.Context, user string) (*LibrarySnapshot, error) {
	var snapshot LibrarySnapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		artists, err := s.Artists(gctx, user, PeriodOverall, 0)
		if err != nil {
			return err
		}
		snapshot.Artists = artists
		return nil
	})
	g.Go(func() error {
		albums, err := s.Albums(gctx, user, PeriodOverall, 0)
		if err != nil {
			return err
		}
		snapshot.Albums = albums
		return nil
	})
	g.Go(func() error {
		tracks, err := s.Tracks(gctx, user, PeriodOverall, 0)
		if err != nil {
			return err
		}
		snapshot.Tracks = tracks
		return nil
	})
	g.Go(func() error {
		tags, err := s.Tags(gctx, user, PeriodOverall, 0)
		if err != nil {
			return err
		}
		snapshot.Tags = tags
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snapshot, nil
}
