package calendar

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// ErrAPI indicates that a Calendar API request failed: the API rejected the
// caller's authorization (revoked scope, expired grant) or the transport
// failed. Callers can detect it with errors.Is.
var ErrAPI = errors.New("calendar api request failed")

// apiError wraps an API failure in ErrAPI, keeping the operation name and a
// distinct message for authorization rejections.
func apiError(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s: authorization rejected: %w", ErrAPI, op, err)
		}
		return fmt.Errorf("%w: %s: HTTP %d: %w", ErrAPI, op, gerr.Code, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrAPI, op, err)
}

// IsAuthRejected reports whether err is an API-side authorization rejection
// rather than a transport failure.
func IsAuthRejected(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden
	}
	return false
}
