// Package extract normalizes Google Calendar events into flat fixed-schema
// rows for spreadsheet export.
//
// Normalize is a pure function: every event produces exactly one row, absent
// optional fields become empty values and malformed fields degrade per field
// instead of failing the run. Beyond the structured fields, the summary,
// description and location texts are scanned for email addresses, phone
// numbers and meeting links.
//
// The email and phone patterns are heuristic and can both under- and
// over-match (numeric IDs can look like phone numbers). Semicolons inside a
// name or email are not escaped in the joined list columns. Both are known
// limitations of the format, not defects to fix silently.
package extract
