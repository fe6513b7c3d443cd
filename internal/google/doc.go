// Package google provides OAuth2 authentication and token management for the
// Google Calendar API.
//
// The Manager drives the credential lifecycle: it loads a cached token from a
// TokenStore, refreshes it when expired, and falls back to an interactive
// browser consent flow when no usable token exists. Both the store and the
// flow are interfaces so the refresh/cache logic can be exercised in tests
// without touching disk or a real browser.
//
// The token cache file contains access and refresh tokens and must be treated
// as a secret. The client registration file (credentials.json) only carries
// the application identity and is not secret.
package google
