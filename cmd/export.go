package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teemow/calexport/internal/calendar"
	"github.com/teemow/calexport/internal/extract"
	"github.com/teemow/calexport/internal/google"
	"github.com/teemow/calexport/internal/logging"
	"github.com/teemow/calexport/internal/sheet"
)

const (
	defaultWindowDays  = 45
	defaultOutput      = "calendar_export.xlsx"
	defaultCalendarID  = "primary"
	defaultCredentials = "credentials.json"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch recent calendar events and write them to an .xlsx file",
		Long: `Fetch all events of one calendar for the trailing window, normalize them
into flat rows (including email addresses and phone numbers extracted from
event texts) and write the result to a spreadsheet file.

The command runs the browser consent flow on first use and caches the
credential for subsequent runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := exportOptions{
				Days:        viper.GetInt("days"),
				Output:      viper.GetString("output"),
				CalendarID:  viper.GetString("calendar"),
				Account:     viper.GetString("account"),
				Credentials: viper.GetString("credentials"),
				AuthTimeout: viper.GetDuration("auth-timeout"),
			}
			return runExport(cmd.Context(), opts)
		},
	}

	cmd.Flags().Int("days", defaultWindowDays, "number of days to look back")
	cmd.Flags().String("output", defaultOutput, "output spreadsheet path")
	cmd.Flags().String("calendar", defaultCalendarID, "calendar ID to export")
	cmd.Flags().String("account", "default", "Google account name to use")
	cmd.Flags().String("credentials", defaultCredentials, "path to the OAuth client registration file")
	cmd.Flags().Duration("auth-timeout", 2*time.Minute, "how long to wait for browser authorization")

	for _, name := range []string{"days", "output", "calendar", "account", "credentials", "auth-timeout"} {
		_ = viper.BindPFlag(name, cmd.Flags().Lookup(name))
	}

	return cmd
}

type exportOptions struct {
	Days        int
	Output      string
	CalendarID  string
	Account     string
	Credentials string
	AuthTimeout time.Duration
}

func runExport(ctx context.Context, opts exportOptions) error {
	if opts.Days <= 0 {
		return fmt.Errorf("--days must be a positive number, got %d", opts.Days)
	}

	logger := logging.WithAccount(slog.Default(), opts.Account)

	creds, err := google.ReadClientCredentials(opts.Credentials)
	if err != nil {
		return err
	}

	manager := google.NewManager(
		google.OAuthConfig(creds),
		google.NewFileTokenStore(google.DefaultTokenPath(opts.Account)),
		&google.BrowserFlow{Timeout: opts.AuthTimeout},
		logger,
	)
	ts, err := manager.TokenSource(ctx)
	if err != nil {
		return err
	}

	client, err := calendar.NewClient(ctx, ts)
	if err != nil {
		return err
	}

	window := calendar.LastDays(time.Now(), opts.Days)
	logger.Info("fetching events",
		logging.Calendar(opts.CalendarID),
		slog.Time("from", window.Start),
		slog.Time("to", window.End))

	events, err := client.FetchWindow(ctx, opts.CalendarID, window)
	if err != nil {
		return err
	}
	logger.Info("fetched events", logging.Count(len(events)))

	rows := make([]extract.Row, 0, len(events))
	for _, ev := range events {
		rows = append(rows, extract.Normalize(ev))
	}

	emails, phones := contactSummary(rows)
	logger.Info("extracted contact information",
		slog.Int("unique_emails", emails),
		slog.Int("unique_phone_numbers", phones))

	if err := sheet.Write(rows, opts.Output); err != nil {
		return err
	}

	logger.Info("export complete", logging.Count(len(rows)), logging.Path(opts.Output))
	return nil
}

// contactSummary counts the unique emails and phone numbers across all rows.
func contactSummary(rows []extract.Row) (emails, phones int) {
	uniqueEmails := make(map[string]bool)
	uniquePhones := make(map[string]bool)
	for _, row := range rows {
		for _, e := range splitList(row.AllExtractedEmails) {
			uniqueEmails[strings.ToLower(e)] = true
		}
		for _, p := range splitList(row.ExtractedPhoneNumbers) {
			uniquePhones[p] = true
		}
	}
	return len(uniqueEmails), len(uniquePhones)
}

func splitList(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, "; ")
}

