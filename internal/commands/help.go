package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for brewlog",
	Long:  `Display detailed help for all brewlog commands, keys and settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), customHelp)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "brewlog %s (commit %s, built %s)\n", version, commit, date)
	},
}

const customHelp = `
 ( (
  ) )
........
|      |]   brewlog - terminal coffee brew logger
\      /
 '----'

COMMANDS:

  brew                    Open the brew logger (also the default)
    -e, --email           Pre-fill the login email

    Keys:
      tab/↓, shift+tab/↑  Move between fields
      ←/→                 Cycle choices, step numbers and dates
      1-5                 Set the rating
      ctrl+t              Start the timer (restart if running)
      ctrl+x              Stop the timer
      ctrl+s              Save the brew
      ctrl+r              Reset the form
      ctrl+l              Log out
      ctrl+c              Quit

  log <description>       Log a brew in one line
    -e, --email           Account email
    --bean, --roaster     Text fields
    --roast, --method,
    --grind               Choices (ASCII aliases like v60, dark, fine)
    --dose, --water,
    --temp, --drips,
    --time, -r/--rating   Numbers
    -n, --notes           Tasting notes
    -d, --date            Brew date

    Example:
      brewlog log "Kenya AA @Onibus 15g 230ml 93c v60 +4 2:50" -e me@example.com

  signup                  Create an account
    -e, --email           Account email

  version                 Print the version
  help                    Show this help

SETTINGS (.env, environment, or ~/.brewlog/secrets.toml):

  BREWLOG_BACKEND         supabase (default), postgres or sqlite
  SUPABASE_URL            Supabase project URL
  SUPABASE_ANON_KEY       Supabase anon key
  BREWLOG_DATABASE_URL    PostgreSQL connection string
  BREWLOG_DB_PATH         SQLite file (default ~/.brewlog/brewlog.db)
  BREWLOG_TIMEOUT         Network timeout, e.g. 15s
  BREWLOG_LOG_FILE        Log file (default ~/.brewlog/brewlog.log)
  BREWLOG_LOG_LEVEL       trace, debug, info, warn or error
  BREWLOG_PASSWORD        Password for log and signup

`
