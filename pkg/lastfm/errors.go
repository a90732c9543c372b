package lastfm

import (
	"fmt"
)

// Error represents a Last.fm API error.
//
// The Error type provides structured error information including
// the Last.fm error code and message. It covers three failure causes:
// a catalogued upstream error code, an upstream error code missing
// from the catalogue (Unmapped reports true), and a success response
// missing its expected top-level payload field (Code is zero).
type Error struct {
	Code     int    // Last.fm error code, 0 for missing-field errors
	Message  string // Human-readable message
	unmapped bool
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("lastfm: %s", e.Message)
	}
	return fmt.Sprintf("lastfm: error %d: %s", e.Code, e.Message)
}

// Is checks if the target error is a Last.fm error with the same code.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Unmapped reports whether the upstream error code was absent from the
// message catalogue. Unmapped codes are never masked as success; they
// surface with a generic "unknown error code" message.
func (e *Error) Unmapped() bool {
	return e.unmapped
}

// Temporary returns true if the error indicates a transient upstream
// condition. The client performs no retries itself; this is advisory
// for callers.
func (e *Error) Temporary() bool {
	switch e.Code {
	case ErrCodeServiceOffline:
		return true
	case ErrCodeTempUnavailable:
		return true
	case ErrCodeRateLimitExceeded:
		return true
	default:
		return false
	}
}

// Common Last.fm error codes.
const (
	ErrCodeInvalidService       = 2
	ErrCodeInvalidMethod        = 3
	ErrCodeAuthenticationFailed = 4
	ErrCodeInvalidFormat        = 5
	ErrCodeNotFound             = 6
	ErrCodeInvalidParameters    = 7
	ErrCodeBackendFailure       = 8
	ErrCodeInvalidResourceSpec  = 9
	ErrCodeInvalidAPIKey        = 10
	ErrCodeServiceOffline       = 11
	ErrCodeSubscribersOnly      = 12
	ErrCodeInvalidSignature     = 13
	ErrCodeUnauthorizedToken    = 14
	ErrCodeExpiredToken         = 15
	ErrCodeTempUnavailable      = 16
	ErrCodePrivateProfile       = 17
	ErrCodeSuspendedAPIKey      = 26
	ErrCodeDeprecatedMethod     = 27
	ErrCodeRateLimitExceeded    = 29
)

// errorMessages maps the Last.fm error codes to their human-readable
// messages. Codes absent from this table surface as Unmapped errors.
var errorMessages = map[int]string{
	2:  "Invalid service - This service does not exist",
	3:  "Invalid method - No method with that name in this package",
	4:  "Authentication Failed - You do not have permissions to access the service",
	5:  "Invalid format - This service doesn't exist in that format",
	6:  "User/artist not found",
	7:  "Invalid parameters - Your request is missing a required parameter",
	8:  "Backend issue",
	9:  "Invalid resource specified",
	10: "Invalid API key",
	11: "Service Offline - This service is temporarily offline. Try again later.",
	12: "This service is only available to paid subscribers",
	13: "Invalid method signature supplied",
	14: "Unauthorized token - this token has not been authorized",
	15: "This token has not been authorized",
	16: "There was a temporary error processing your request. Please try again",
	17: "Users privacy settings blocking this request",
	18: "There was a temporary error processing your request. Please try again",
	19: "You must be logged in to do that",
	20: "This operation requires authentication",
	21: "You do not have permissions to access the service",
	22: "There was a temporary error processing your request. Please try again",
	23: "Operation failed - Most likely the backend service failed. Please try again.",
	24: "Invalid session key - Please re-authenticate",
	25: "Radio station not found",
	26: "Access for your account has been suspended, please contact Last.fm",
	27: "This method is deprecated and no longer available",
	29: "Rate limit exceeded",
}

// apiError builds an *Error for an upstream error code, looking the
// message up in the catalogue. Uncatalogued codes are flagged rather
// than swallowed.
func apiError(code int) *Error {
	msg, ok := errorMessages[code]
	if !ok {
		return &Error{
			Code:     code,
			Message:  fmt.Sprintf("unknown error code %d", code),
			unmapped: true,
		}
	}
	return &Error{Code: code, Message: msg}
}

// missingFieldError builds an *Error for a success response whose
// expected top-level payload field was absent or empty.
func missingFieldError(field string) *Error {
	return &Error{Message: fmt.Sprintf("expected field %q missing from response", field)}
}
