package google

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendar "google.golang.org/api/calendar/v3"
)

func TestParseClientCredentials(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ClientCredentials
		wantErr bool
	}{
		{
			name:  "installed client",
			input: `{"installed":{"client_id":"id-1","client_secret":"sec-1"}}`,
			want:  ClientCredentials{ClientID: "id-1", ClientSecret: "sec-1"},
		},
		{
			name:  "web client",
			input: `{"web":{"client_id":"id-2","client_secret":"sec-2"}}`,
			want:  ClientCredentials{ClientID: "id-2", ClientSecret: "sec-2"},
		},
		{
			name:    "missing secret",
			input:   `{"installed":{"client_id":"id-3"}}`,
			wantErr: true,
		},
		{
			name:    "empty object",
			input:   `{}`,
			wantErr: true,
		},
		{
			name:    "not json",
			input:   `not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClientCredentials([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadClientCredentials(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"installed":{"client_id":"id","client_secret":"sec"}}`), 0o600))

	creds, err := ReadClientCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "id", creds.ClientID)

	_, err = ReadClientCredentials(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestOAuthConfig_ReadOnlyScope(t *testing.T) {
	cfg := OAuthConfig(ClientCredentials{ClientID: "id", ClientSecret: "sec"})

	require.Len(t, cfg.Scopes, 1, "export is read-only; exactly one scope expected")
	assert.Equal(t, calendar.CalendarReadonlyScope, cfg.Scopes[0])
	assert.Equal(t, "id", cfg.ClientID)
}
