package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teemow/calexport/internal/extract"
)

func TestRunExport_RejectsNonPositiveDays(t *testing.T) {
	tests := []int{0, -1, -45}

	for _, days := range tests {
		err := runExport(context.Background(), exportOptions{Days: days})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "--days must be a positive number")
	}
}

func TestRunExport_MissingCredentialsFile(t *testing.T) {
	err := runExport(context.Background(), exportOptions{
		Days:        45,
		Credentials: "does/not/exist.json",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read client credentials")
}

func TestContactSummary(t *testing.T) {
	rows := []extract.Row{
		{
			AllExtractedEmails:    "a@x.com; b@x.com",
			ExtractedPhoneNumbers: "(555) 123-4567",
		},
		{
			AllExtractedEmails:    "A@x.com; c@x.com",
			ExtractedPhoneNumbers: "(555) 123-4567; 555-987-6543",
		},
		{},
	}

	emails, phones := contactSummary(rows)
	assert.Equal(t, 3, emails, "emails dedupe case-insensitively across rows")
	assert.Equal(t, 2, phones)
}

func TestExportCmd_FlagDefaults(t *testing.T) {
	cmd := newExportCmd()

	days, err := cmd.Flags().GetInt("days")
	assert.NoError(t, err)
	assert.Equal(t, 45, days)

	output, err := cmd.Flags().GetString("output")
	assert.NoError(t, err)
	assert.Equal(t, "calendar_export.xlsx", output)

	calendarID, err := cmd.Flags().GetString("calendar")
	assert.NoError(t, err)
	assert.Equal(t, "primary", calendarID)
}
