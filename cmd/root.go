package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teemow/calexport/internal/logging"
)

var verbose bool

// rootCmd represents the base command for the calexport application
var rootCmd = &cobra.Command{
	Use:   "calexport",
	Short: "Exports Google Calendar events to a spreadsheet",
	Long: `calexport fetches the events of your primary Google Calendar for a
trailing time window, extracts contact information (email addresses, phone
numbers, meeting links) from every event, and writes one spreadsheet row per
event to an .xlsx file.

Access is read-only; the tool never modifies your calendar.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A local .env can supply CALEXPORT_* settings; a missing file is fine.
		_ = godotenv.Load()
		viper.SetEnvPrefix("calexport")
		viper.AutomaticEnv()

		logging.Setup(verbose)
	},
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "calexport version %s\n" .Version}}`)

	os.Args = withDefaultCommand(os.Args)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// withDefaultCommand inserts the export subcommand when the invocation names
// no subcommand, so `calexport --days 60` works the same as
// `calexport export --days 60`.
func withDefaultCommand(args []string) []string {
	if len(args) == 1 {
		return append(args, "export")
	}

	subcommands := map[string]bool{
		"export":     true,
		"auth":       true,
		"version":    true,
		"help":       true,
		"completion": true,
	}
	switch {
	case subcommands[args[1]]:
		return args
	case args[1] == "-h" || args[1] == "--help" || args[1] == "--version":
		return args
	}

	expanded := make([]string, 0, len(args)+1)
	expanded = append(expanded, args[0], "export")
	return append(expanded, args[1:]...)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
}
