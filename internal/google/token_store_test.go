package google

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	store := NewFileTokenStore(path)

	// Missing cache is not an error.
	tok, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, tok)

	want := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).Round(time.Second),
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.AccessToken, got.AccessToken)
	assert.Equal(t, want.RefreshToken, got.RefreshToken)
	assert.True(t, want.Expiry.Equal(got.Expiry))
}

func TestFileTokenStore_SaveOverwrites(t *testing.T) {
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "token.json"))

	require.NoError(t, store.Save(&oauth2.Token{AccessToken: "old"}))
	require.NoError(t, store.Save(&oauth2.Token{AccessToken: "new"}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "new", got.AccessToken)
}

func TestFileTokenStore_Delete(t *testing.T) {
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "token.json"))

	// Deleting an absent cache is fine.
	require.NoError(t, store.Delete())

	require.NoError(t, store.Save(&oauth2.Token{AccessToken: "a"}))
	require.NoError(t, store.Delete())

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, tok)
}

func TestFileTokenStore_CorruptCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := NewFileTokenStore(path)

	require.NoError(t, store.Save(&oauth2.Token{AccessToken: "a"}))
	// Truncate the file to simulate corruption.
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := store.Load()
	assert.Error(t, err)
}

func TestDefaultTokenPath(t *testing.T) {
	path := DefaultTokenPath("work")
	assert.Contains(t, path, "calexport")
	assert.Contains(t, filepath.Base(path), "token-work.json")
}
