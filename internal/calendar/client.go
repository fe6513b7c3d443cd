package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/teemow/calexport/internal/logging"
)

// maxResultsPerPage is the page size requested from the API.
const maxResultsPerPage = 2500

// Client wraps the Google Calendar service for read-only event listing.
type Client struct {
	svc    *calendar.Service
	logger *slog.Logger
}

// NewClient creates a Calendar client authenticated by the given token
// source. Extra options are passed through to the service constructor, which
// lets tests point the client at a fake endpoint.
func NewClient(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*Client, error) {
	if ts != nil {
		opts = append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	return &Client{
		svc:    svc,
		logger: logging.WithOperation(slog.Default(), "calendar.fetch"),
	}, nil
}

// FetchWindow lists all events of calendarID inside the window, following
// continuation tokens until the listing is exhausted. Recurring events are
// expanded into single instances. Events are accumulated in response order;
// nothing is deduplicated or reordered.
func (c *Client) FetchWindow(ctx context.Context, calendarID string, w Window) ([]*calendar.Event, error) {
	c.logger.Debug("fetching events",
		logging.Calendar(calendarID),
		slog.Time("start", w.Start),
		slog.Time("end", w.End))

	var events []*calendar.Event
	pageToken := ""
	for {
		call := c.svc.Events.List(calendarID).
			TimeMin(w.Start.Format(time.RFC3339)).
			TimeMax(w.End.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			MaxResults(maxResultsPerPage).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		res, err := call.Do()
		if err != nil {
			return nil, apiError("list events", err)
		}

		events = append(events, res.Items...)

		if res.NextPageToken == "" {
			break
		}
		pageToken = res.NextPageToken
	}

	c.logger.Debug("fetched events", logging.Calendar(calendarID), logging.Count(len(events)))
	return events, nil
}
