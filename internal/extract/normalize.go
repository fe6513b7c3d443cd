package extract

import (
	"fmt"
	"path"
	"strings"
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"

	listSeparator = "; "
)

// Normalize converts one calendar event into its export row. It never fails:
// missing or malformed fields become empty values and every row carries the
// full column set.
func Normalize(ev *calendar.Event) Row {
	row := Row{
		Visibility:   "default",
		Transparency: "opaque",
	}
	if ev == nil {
		return row
	}

	row.EventID = ev.Id
	row.Summary = ev.Summary
	row.Description = ev.Description
	row.Location = ev.Location
	row.Status = ev.Status
	if ev.Visibility != "" {
		row.Visibility = ev.Visibility
	}
	if ev.Transparency != "" {
		row.Transparency = ev.Transparency
	}

	normalizeTimes(ev, &row)
	normalizePeople(ev, &row)
	normalizeConference(ev, &row)

	// Recurring-series membership: the event must reference a series id other
	// than its own.
	if ev.RecurringEventId != "" && ev.RecurringEventId != ev.Id {
		row.IsRecurring = true
		row.RecurringEventID = ev.RecurringEventId
	}

	row.HTMLLink = ev.HtmlLink
	row.Created = ev.Created
	row.Updated = ev.Updated
	row.ColorID = ev.ColorId
	row.Reminders = formatReminders(ev.Reminders)
	row.Attachments = strings.Join(attachmentTitles(ev.Attachments), listSeparator)

	combined := strings.Join([]string{ev.Summary, ev.Description, ev.Location}, " ")
	scanned := ExtractEmails(combined)
	attendeeEmails := make([]string, 0, len(ev.Attendees))
	for _, att := range ev.Attendees {
		attendeeEmails = append(attendeeEmails, att.Email)
	}
	row.AllExtractedEmails = strings.Join(mergeUnique(attendeeEmails, scanned), listSeparator)
	row.ExtractedPhoneNumbers = strings.Join(ExtractPhoneNumbers(combined), listSeparator)

	return row
}

// normalizeTimes derives the date, time, all-day and duration columns. An
// event is all-day when its endpoints are bare dates rather than date-times.
func normalizeTimes(ev *calendar.Event, row *Row) {
	start, startOK, startAllDay := parseEventTime(ev.Start)
	end, endOK, endAllDay := parseEventTime(ev.End)

	if startOK {
		row.AllDay = startAllDay
	} else if endOK {
		row.AllDay = endAllDay
	}

	if startOK {
		row.StartDate = start.Format(dateLayout)
		if !row.AllDay {
			row.StartTime = start.Format(timeLayout)
		}
	}
	if endOK {
		row.EndDate = end.Format(dateLayout)
		if !row.AllDay {
			row.EndTime = end.Format(timeLayout)
		}
	}

	if startOK && endOK {
		if hours := end.Sub(start).Hours(); hours > 0 {
			row.DurationHours = hours
		}
	}
}

// parseEventTime resolves one event endpoint. The second result reports
// whether a time could be parsed at all, the third whether it was a bare
// date.
func parseEventTime(edt *calendar.EventDateTime) (time.Time, bool, bool) {
	if edt == nil {
		return time.Time{}, false, false
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t, true, false
		}
		return time.Time{}, false, false
	}
	if edt.Date != "" {
		if t, err := time.Parse(dateLayout, edt.Date); err == nil {
			return t, true, true
		}
	}
	return time.Time{}, false, false
}

func normalizePeople(ev *calendar.Event, row *Row) {
	if ev.Organizer != nil {
		row.OrganizerEmail = ev.Organizer.Email
		row.OrganizerName = nameOrLocalPart(ev.Organizer.DisplayName, ev.Organizer.Email)
	}
	if ev.Creator != nil {
		row.CreatorEmail = ev.Creator.Email
		row.CreatorName = nameOrLocalPart(ev.Creator.DisplayName, ev.Creator.Email)
	}

	emails := make([]string, 0, len(ev.Attendees))
	names := make([]string, 0, len(ev.Attendees))
	statuses := make([]string, 0, len(ev.Attendees))
	for _, att := range ev.Attendees {
		emails = append(emails, att.Email)
		names = append(names, att.DisplayName)
		statuses = append(statuses, att.ResponseStatus)
	}
	row.AttendeeEmails = strings.Join(emails, listSeparator)
	row.AttendeeNames = strings.Join(names, listSeparator)
	row.AttendeeStatuses = strings.Join(statuses, listSeparator)
	row.AttendeeCount = len(ev.Attendees)
}

// nameOrLocalPart falls back to the email local part when no display name is
// set.
func nameOrLocalPart(name, email string) string {
	if name != "" {
		return name
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return ""
}

// normalizeConference classifies the conference provider and collects video
// join links from both the structured conference data and the description
// text.
func normalizeConference(ev *calendar.Event, row *Row) {
	var structured []string
	if ev.ConferenceData != nil {
		if ev.ConferenceData.ConferenceSolution != nil {
			row.ConferenceType = ev.ConferenceData.ConferenceSolution.Name
		}
		for _, ep := range ev.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" && ep.Uri != "" {
				structured = append(structured, ep.Uri)
			}
		}
	}

	scanned := ExtractMeetingLinks(ev.Description)
	row.MeetingLinks = strings.Join(mergeUnique(structured, scanned), listSeparator)
}

// formatReminders renders the reminder settings in a compact readable form:
// "useDefault", or the overrides as "popup@10m; email@1d".
func formatReminders(r *calendar.EventReminders) string {
	if r == nil {
		return ""
	}
	if r.UseDefault {
		return "useDefault"
	}

	parts := make([]string, 0, len(r.Overrides))
	for _, o := range r.Overrides {
		parts = append(parts, fmt.Sprintf("%s@%s", o.Method, formatMinutes(o.Minutes)))
	}
	return strings.Join(parts, listSeparator)
}

func formatMinutes(m int64) string {
	switch {
	case m >= 1440 && m%1440 == 0:
		return fmt.Sprintf("%dd", m/1440)
	case m >= 60 && m%60 == 0:
		return fmt.Sprintf("%dh", m/60)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// attachmentTitles lists attachment titles, falling back to the file URL
// basename for untitled attachments.
func attachmentTitles(attachments []*calendar.EventAttachment) []string {
	var titles []string
	for _, att := range attachments {
		switch {
		case att == nil:
			continue
		case att.Title != "":
			titles = append(titles, att.Title)
		case att.FileUrl != "":
			titles = append(titles, path.Base(att.FileUrl))
		}
	}
	return titles
}
