package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/balkashynov/brewlog/internal/config"
	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "brewlog",
	Short: "A terminal coffee brew logger",
	Long: `brewlog records pour-over brews: a stopwatch for the brew itself and a
form for beans, grind, dose and rating, saved to your own database.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          withApp(runBrew),
}

// app holds what every command needs once configuration has loaded
type app struct {
	cfg      *config.Config
	log      hclog.Logger
	backend  gateway.Backend
	closeLog func() error
}

func (a *app) Close() {
	if err := a.backend.Close(); err != nil {
		a.log.Warn("closing backend", "error", err)
	}
	a.log.Debug("shutting down")
	_ = a.closeLog()
}

// loadConfig is swapped in tests
var loadConfig = config.Load

// setup loads configuration, opens the log file and connects the backend
func setup(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.Info("starting brewlog", "version", version, "backend", cfg.Backend)
	for key, source := range cfg.Sources {
		log.Debug("config resolved", "key", key, "source", source)
	}

	backend, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.Error("backend unavailable", "backend", cfg.Backend, "error", err)
		_ = closeLog()
		return nil, err
	}

	return &app{cfg: cfg, log: log, backend: backend, closeLog: closeLog}, nil
}

// withApp wraps a command function to set up config, logging and the backend first
func withApp(fn func(*cobra.Command, []string, *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, args, a)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command. Configuration errors are fatal: the
// message is printed and the process exits with status 1.
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())

	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		fmt.Fprintln(os.Stderr, "❌ "+cfgErr.Error())
		os.Exit(1)
	}
	return err
}

func init() {
	rootCmd.Flags().StringP("email", "e", "", "Pre-fill the login email")

	rootCmd.AddCommand(brewCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
