package calendar

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

// fakeCalendarAPI serves a paginated events listing: two pages of events
// joined by a continuation token.
func fakeCalendarAPI(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Query().Get("pageToken") {
		case "":
			fmt.Fprint(w, `{"items":[{"id":"ev-1","summary":"First"},{"id":"ev-2","summary":"Second"}],"nextPageToken":"page-2"}`)
		case "page-2":
			fmt.Fprint(w, `{"items":[{"id":"ev-3","summary":"Third"}]}`)
		default:
			http.Error(w, `{"error":{"code":400,"message":"bad page token"}}`, http.StatusBadRequest)
		}
	}))
}

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), nil,
		option.WithEndpoint(endpoint),
		option.WithoutAuthentication())
	require.NoError(t, err)
	return client
}

func TestFetchWindow_FollowsPagination(t *testing.T) {
	srv := fakeCalendarAPI(t)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	events, err := client.FetchWindow(context.Background(), "primary", LastDays(time.Now(), 45))

	require.NoError(t, err)
	require.Len(t, events, 3)
	// Response order is preserved across pages.
	assert.Equal(t, "ev-1", events[0].Id)
	assert.Equal(t, "ev-2", events[1].Id)
	assert.Equal(t, "ev-3", events[2].Id)
}

func TestFetchWindow_AuthorizationRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"insufficient scope"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.FetchWindow(context.Background(), "primary", LastDays(time.Now(), 45))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPI)
	assert.True(t, IsAuthRejected(err))
}

func TestFetchWindow_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":400,"message":"invalid time range"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.FetchWindow(context.Background(), "primary", LastDays(time.Now(), 45))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPI)
	assert.False(t, IsAuthRejected(err))
}

func TestLastDays(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		days      int
		wantStart time.Time
	}{
		{days: 45, wantStart: time.Date(2024, 1, 30, 12, 0, 0, 0, time.UTC)},
		{days: 60, wantStart: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)},
		{days: 1, wantStart: time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d days", tt.days), func(t *testing.T) {
			w := LastDays(now, tt.days)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, now, w.End)
			assert.Equal(t, time.Duration(tt.days)*24*time.Hour, w.Duration())
		})
	}
}

func TestLastDays_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)

	w := LastDays(now, 7)
	assert.Equal(t, time.UTC, w.End.Location())
	assert.Equal(t, time.UTC, w.Start.Location())
}
