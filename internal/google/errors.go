package google

import "errors"

// ErrAuth indicates that no credential could be obtained: the user declined
// consent, the authorization flow timed out, or a revoked refresh token could
// not be replaced. Callers can detect it with errors.Is.
var ErrAuth = errors.New("authorization failed")
