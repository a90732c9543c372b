package lastfm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// envelope is the part of every response the transport inspects before
// handing the body to a mapper: the error indicator, if any.
type envelope struct {
	Error   *int   `json:"error"`
	Message string `json:"message"`
}

// call makes a single HTTP GET request to the Last.fm API.
//
// It appends the API key and the JSON format selector to the supplied
// method parameters, decodes the response envelope, and maps upstream
// error codes into *Error. When want is non-empty, the decoded body
// must contain a non-empty top-level field of that name; Last.fm
// sometimes answers HTTP 200 with a body that is neither an error nor
// a payload, and that case must fail rather than reach a mapper.
//
// On success the raw body is returned unmodified; all shape validation
// and transformation is the caller's responsibility. There are no
// retries and no rate-limit handling.
func (c *Client) call(ctx context.Context, method string, params map[string]string, want string) (json.RawMessage, error) {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	values.Set("method", method)
	values.Set("api_key", c.apiKey)
	values.Set("format", "json")

	c.logDebugf("lastfm: calling %s", method)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "lastfm-go/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Error responses arrive with non-200 statuses but still carry a
	// JSON envelope, so the body is decoded regardless of status.
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code %d: %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if env.Error != nil {
		return nil, apiError(*env.Error)
	}

	if want != "" {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, fmt.Errorf("failed to parse JSON response: %w", err)
		}
		if emptyJSON(fields[want]) {
			return nil, missingFieldError(want)
		}
	}

	c.logDebugf("lastfm: %s succeeded", method)
	return body, nil
}

// emptyJSON reports whether a raw top-level field is absent or carries
// no payload. Mirrors the falsiness check the API's "200 but empty"
// responses require: missing, null, "", {}, [], 0 and false all count
// as empty. The raw value is compacted first so whitespace inside
// delimiters does not hide an empty payload.
func emptyJSON(raw json.RawMessage) bool {
	buf := new(bytes.Buffer)
	if err := json.Compact(buf, raw); err != nil {
		return len(bytes.TrimSpace(raw)) == 0
	}
	switch buf.String() {
	case "", "null", `""`, "{}", "[]", "0", "false":
		return true
	}
	return false
}
