// Package calendar provides a read-only client for the Google Calendar API.
//
// The client fetches all events of one calendar inside a trailing time
// window, following pagination tokens until the listing is exhausted. Events
// are returned in the order the API delivers them; callers must not assume a
// stronger ordering than the API documents.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx, tokenSource)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	events, err := client.FetchWindow(ctx, "primary", calendar.LastDays(time.Now(), 45))
//	if err != nil {
//	    log.Fatal(err)
//	}
package calendar
