package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/balkashynov/brewlog/internal/brew"
	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/models"
	"github.com/balkashynov/brewlog/internal/parser"
	"github.com/balkashynov/brewlog/internal/session"
)

var logCmd = &cobra.Command{
	Use:   "log [brew description]",
	Short: "Log a brew without the TUI",
	Long: `Log a finished brew in one line.

Quick syntax:
  @roaster      Roaster (use _ for spaces: @Glitch_Coffee)
  18g           Dose in grams
  250ml         Water in ml
  92c           Water temperature
  185s or 3:05  Total brew time
  +5            Rating (1-5)
  x2            Drip count
  v60, aero...  Method; light, medium, dark: roast
  grind:fine    Explicit roast:, method:, grind:
  on:yesterday  Brew date (today, yesterday, 3_days_ago, yyyy-mm-dd)
  Anything else becomes the bean name. Flags override parsed values.

Example:
  brewlog log "Ethiopia Natural @Glitch 18g 250ml 92c v60 +5 3:05" -e me@example.com`,
	Args: cobra.ArbitraryArgs,
	RunE: withApp(runLog),
}

func runLog(cmd *cobra.Command, args []string, a *app) error {
	draft, err := buildDraft(cmd, args, time.Now())
	if err != nil {
		return err
	}

	email, _ := cmd.Flags().GetString("email")
	if strings.TrimSpace(email) == "" {
		return errors.New("--email is required")
	}
	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	inserted, err := logBrew(cmd.Context(), a.log, a.backend, draft, email, password, a.cfg.Timeout)
	if err != nil {
		a.log.Error("log brew failed", "error", err)
		return err
	}
	a.log.Info("brew saved", "id", inserted.ID, "bean", inserted.BeanName)

	printBrew(cmd, inserted)
	return nil
}

// buildDraft parses the quick syntax, then applies explicit flags on top
func buildDraft(cmd *cobra.Command, args []string, now time.Time) (brew.Draft, error) {
	draft := brew.Defaults(now)

	parsed := parser.ParseQuickLog(strings.Join(args, " "), now)
	if len(parsed.Errors) > 0 {
		return brew.Draft{}, fmt.Errorf("could not parse brew: %s", strings.Join(parsed.Errors, "; "))
	}
	parsed.Apply(&draft)

	flags := cmd.Flags()
	if flags.Changed("bean") {
		draft.BeanName, _ = flags.GetString("bean")
	}
	if flags.Changed("roaster") {
		draft.Roaster, _ = flags.GetString("roaster")
	}
	if flags.Changed("notes") {
		draft.Notes, _ = flags.GetString("notes")
	}

	choices := []struct {
		flag   string
		kind   brew.ChoiceKind
		target **string
	}{
		{"roast", brew.RoastLevel, &draft.RoastLevel},
		{"method", brew.Method, &draft.Method},
		{"grind", brew.GrindSize, &draft.GrindSize},
	}
	for _, c := range choices {
		if !flags.Changed(c.flag) {
			continue
		}
		raw, _ := flags.GetString(c.flag)
		value, err := parser.NormalizeChoice(c.kind, raw)
		if err != nil {
			return brew.Draft{}, err
		}
		*c.target = value
	}

	if flags.Changed("date") {
		raw, _ := flags.GetString("date")
		date, err := parser.ParseBrewDate(raw, now)
		if err != nil {
			return brew.Draft{}, fmt.Errorf("invalid --date: %w", err)
		}
		draft.BrewDate = date
	}

	if flags.Changed("dose") {
		dose, _ := flags.GetFloat64("dose")
		draft.DoseG = brew.DoseRange.Clamp(dose)
	}

	ints := []struct {
		flag   string
		r      brew.Range
		target *int
	}{
		{"water", brew.WaterRange, &draft.WaterML},
		{"temp", brew.TempRange, &draft.WaterTempC},
		{"drips", brew.DripRange, &draft.DripCount},
		{"rating", brew.RatingRange, &draft.Rating},
	}
	for _, f := range ints {
		if flags.Changed(f.flag) {
			v, _ := flags.GetInt(f.flag)
			*f.target = f.r.ClampInt(v)
		}
	}

	if flags.Changed("time") {
		seconds, _ := flags.GetInt("time")
		seconds = brew.TotalTimeRange.ClampInt(seconds)
		draft.TotalTimeOverride = &seconds
	}

	return draft, nil
}

// logBrew signs in, submits the draft once and signs out again
func logBrew(ctx context.Context, log hclog.Logger, backend gateway.Backend, draft brew.Draft, email, password string, timeout time.Duration) (models.Brew, error) {
	authCtx, cancel := context.WithTimeout(ctx, timeout)
	user, err := backend.SignIn(authCtx, email, password)
	cancel()
	if err != nil {
		return models.Brew{}, fmt.Errorf("sign in: %w", err)
	}

	store := session.New(nil)
	store.SetUser(user)
	store.SetDraft(draft)

	inserted, err := store.Submit(ctx, backend, timeout)

	signOutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := backend.SignOut(signOutCtx, user); err != nil {
		log.Warn("sign out failed", "error", err)
	}

	return inserted, err
}

func printBrew(cmd *cobra.Command, b models.Brew) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✅ Saved brew #%d: %s\n", b.ID, b.BeanName)
	if b.Roaster != nil {
		fmt.Fprintf(out, "  Roaster: %s\n", *b.Roaster)
	}
	fmt.Fprintf(out, "  Date: %s\n", b.BrewedAt.Format("2006-01-02"))
	fmt.Fprintf(out, "  Recipe: %.1fg", b.DoseG)
	if b.WaterML != nil {
		fmt.Fprintf(out, " / %dml", *b.WaterML)
	}
	if b.WaterTempC != nil {
		fmt.Fprintf(out, " @ %d°C", *b.WaterTempC)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Method: %s · Roast: %s · Grind: %s\n", brew.Display(b.Method), brew.Display(b.RoastLevel), brew.Display(b.GrindSize))
	fmt.Fprintf(out, "  Time: %s · Rating: %d/5\n", session.FormatElapsed(b.TotalTimeSec), b.Rating)
}

func init() {
	addLogFlags(logCmd)
}

func addLogFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("email", "e", "", "Account email (password from BREWLOG_PASSWORD or prompt)")
	cmd.Flags().String("bean", "", "Bean name")
	cmd.Flags().String("roaster", "", "Roaster")
	cmd.Flags().String("roast", "", "Roast level: light, medium, medium-dark, dark, none")
	cmd.Flags().String("method", "", "Method: v60, kalita, press, aero, espresso, other, none")
	cmd.Flags().String("grind", "", "Grind: extra-fine, fine, medium-fine, medium, medium-coarse, coarse, none")
	cmd.Flags().Float64("dose", 0, "Dose in grams (0-50)")
	cmd.Flags().Int("water", 0, "Water in ml (0-1000, 0 means not recorded)")
	cmd.Flags().Int("temp", 0, "Water temperature in °C (70-100)")
	cmd.Flags().Int("drips", 0, "Drip count (1-10)")
	cmd.Flags().Int("time", 0, "Total brew time in seconds (0-1200)")
	cmd.Flags().IntP("rating", "r", 0, "Rating (1-5)")
	cmd.Flags().StringP("notes", "n", "", "Tasting notes")
	cmd.Flags().StringP("date", "d", "", "Brew date: today, yesterday, N days ago, yyyy-mm-dd, dd/mm/yyyy")
}
