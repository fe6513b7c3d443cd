package calendar

import "time"

// Window is the trailing time range events are fetched for.
type Window struct {
	Start time.Time
	End   time.Time
}

// LastDays returns the window covering the last days*24h ending at now. The
// bounds are normalized to UTC.
func LastDays(now time.Time, days int) Window {
	end := now.UTC()
	return Window{
		Start: end.Add(-time.Duration(days) * 24 * time.Hour),
		End:   end,
	}
}

// Duration returns the length of the window.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
