package google

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
)

var errInvalidCredentials = errors.New("invalid credentials.json (expected installed/web client_id and client_secret)")

// ClientCredentials is the non-secret application identity registered with
// Google, read from a credentials.json file.
type ClientCredentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type clientCredentialsFile struct {
	Installed *struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	} `json:"installed"`
	Web *struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	} `json:"web"`
}

// ParseClientCredentials decodes a Google OAuth client JSON file. Both the
// "installed" and "web" client shapes are accepted.
func ParseClientCredentials(b []byte) (ClientCredentials, error) {
	var f clientCredentialsFile
	if err := json.Unmarshal(b, &f); err != nil {
		return ClientCredentials{}, fmt.Errorf("decode credentials json: %w", err)
	}

	var clientID, clientSecret string
	if f.Installed != nil {
		clientID, clientSecret = f.Installed.ClientID, f.Installed.ClientSecret
	} else if f.Web != nil {
		clientID, clientSecret = f.Web.ClientID, f.Web.ClientSecret
	}

	if clientID == "" || clientSecret == "" {
		return ClientCredentials{}, errInvalidCredentials
	}

	return ClientCredentials{ClientID: clientID, ClientSecret: clientSecret}, nil
}

// ReadClientCredentials loads the client registration file from path.
func ReadClientCredentials(path string) (ClientCredentials, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ClientCredentials{}, fmt.Errorf("read client credentials %s: %w", path, err)
	}
	return ParseClientCredentials(b)
}

// OAuthConfig returns the OAuth2 configuration for the calendar export tool.
// Access is restricted to the single read-only calendar scope.
func OAuthConfig(creds ClientCredentials) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     googleoauth.Endpoint,
		Scopes: []string{
			calendar.CalendarReadonlyScope,
		},
	}
}
