// Package lastfm provides a read-only client for the Last.fm API 2.0.
//
// This package implements the query side of the Last.fm API: user
// profiles, recently played tracks, artist/album/track/tag lookups,
// and ranked library lists. It is designed to be used as a standalone
// SDK.
//
// Example usage:
//
//	import "github.com/imeis/lastfm/pkg/lastfm"
//
//	client, err := lastfm.NewClient(lastfm.Config{
//	    APIKey: "your-api-key",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	profile, err := client.User().Info(ctx, "alice")
package lastfm

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds client configuration.
type Config struct {
	APIKey     string        // Required: Last.fm API key
	HTTPClient *http.Client  // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL    string        // Optional: Base URL for API (defaults to Last.fm API, used for testing)
	Timeout    time.Duration // Optional: Per-request timeout applied when HTTPClient is nil
	Logger     Logger        // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Last.fm API operations.
//
// The zero value is not usable; construct with NewClient. A Client is
// safe for concurrent use by multiple goroutines.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     Logger

	user    *UserService
	artist  *ArtistService
	album   *AlbumService
	track   *TrackService
	tag     *TagService
	library *LibraryService
}

const (
	// DefaultBaseURL is the default Last.fm API endpoint.
	DefaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

	// DefaultLimit is the number of entries requested for ranked lists
	// when the caller passes a non-positive limit.
	DefaultLimit = 1000
)

// Period selects the time window for ranked list queries.
type Period string

// Periods accepted by the user.getTop* methods.
const (
	PeriodOverall  Period = "overall"
	PeriodWeek     Period = "7day"
	PeriodMonth    Period = "1month"
	PeriodQuarter  Period = "3month"
	PeriodHalfYear Period = "6month"
	PeriodYear     Period = "12month"
)

// NewClient creates a new Last.fm API client.
//
// Returns an error if the required APIKey is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("lastfm: APIKey is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		if cfg.Timeout > 0 {
			httpClient = &http.Client{Timeout: cfg.Timeout}
		} else {
			httpClient = http.DefaultClient
		}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     cfg.Logger,
	}

	c.user = &UserService{client: c}
	c.artist = &ArtistService{client: c}
	c.album = &AlbumService{client: c}
	c.track = &TrackService{client: c}
	c.tag = &TagService{client: c}
	c.library = &LibraryService{client: c}

	return c, nil
}

// User returns the user service.
func (c *Client) User() *UserService {
	return c.user
}

// Artist returns the artist service.
func (c *Client) Artist() *ArtistService {
	return c.artist
}

// Album returns the album service.
func (c *Client) Album() *AlbumService {
	return c.album
}

// Track returns the track service.
func (c *Client) Track() *TrackService {
	return c.track
}

// Tag returns the tag service.
func (c *Client) Tag() *TagService {
	return c.tag
}

// Library returns the library service.
func (c *Client) Library() *LibraryService {
	return c.library
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
