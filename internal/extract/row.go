package extract

// Row is the flat export record derived from one calendar event. Field order
// mirrors the spreadsheet column order; Columns and Values must stay in sync
// with it.
type Row struct {
	EventID               string
	Summary               string
	Description           string
	Location              string
	Status                string
	Visibility            string
	StartDate             string
	StartTime             string
	EndDate               string
	EndTime               string
	AllDay                bool
	DurationHours         float64
	OrganizerEmail        string
	OrganizerName         string
	CreatorEmail          string
	CreatorName           string
	AttendeeEmails        string
	AttendeeNames         string
	AttendeeStatuses      string
	AttendeeCount         int
	AllExtractedEmails    string
	ExtractedPhoneNumbers string
	ConferenceType        string
	MeetingLinks          string
	HTMLLink              string
	Created               string
	Updated               string
	RecurringEventID      string
	IsRecurring           bool
	Reminders             string
	Attachments           string
	ColorID               string
	Transparency          string
}

// Columns returns the fixed spreadsheet header, in column order.
func Columns() []string {
	return []string{
		"event_id",
		"summary",
		"description",
		"location",
		"status",
		"visibility",
		"start_date",
		"start_time",
		"end_date",
		"end_time",
		"all_day",
		"duration_hours",
		"organizer_email",
		"organizer_name",
		"creator_email",
		"creator_name",
		"attendee_emails",
		"attendee_names",
		"attendee_statuses",
		"attendee_count",
		"all_extracted_emails",
		"extracted_phone_numbers",
		"conference_type",
		"meeting_links",
		"html_link",
		"created",
		"updated",
		"recurring_event_id",
		"is_recurring",
		"reminders",
		"attachments",
		"color_id",
		"transparency",
	}
}

// Values returns the row's cells in column order. Textual fields stay
// strings even when they look numeric, so a spreadsheet application cannot
// mangle phone numbers or ids; duration is numeric and the two flags are
// booleans.
func (r Row) Values() []any {
	return []any{
		r.EventID,
		r.Summary,
		r.Description,
		r.Location,
		r.Status,
		r.Visibility,
		r.StartDate,
		r.StartTime,
		r.EndDate,
		r.EndTime,
		r.AllDay,
		r.DurationHours,
		r.OrganizerEmail,
		r.OrganizerName,
		r.CreatorEmail,
		r.CreatorName,
		r.AttendeeEmails,
		r.AttendeeNames,
		r.AttendeeStatuses,
		r.AttendeeCount,
		r.AllExtractedEmails,
		r.ExtractedPhoneNumbers,
		r.ConferenceType,
		r.MeetingLinks,
		r.HTMLLink,
		r.Created,
		r.Updated,
		r.RecurringEventID,
		r.IsRecurring,
		r.Reminders,
		r.Attachments,
		r.ColorID,
		r.Transparency,
	}
}
