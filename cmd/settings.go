package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/flashquest/internal/store"
	"github.com/abhisek/flashquest/internal/ui/theme"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the learner's session limits",
	Long: `Show the learner's saved session limits, or change them with --daily-new
and --review-limit. FLASHQUEST_DAILY_NEW_LIMIT still overrides the saved
daily limit when set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var dailyNew, reviewLimit *int
		if cmd.Flags().Changed("daily-new") {
			n, _ := cmd.Flags().GetInt("daily-new")
			dailyNew = &n
		}
		if cmd.Flags().Changed("review-limit") {
			n, _ := cmd.Flags().GetInt("review-limit")
			reviewLimit = &n
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		learner := d.cfg.LearnerID
		var st store.Settings
		if dailyNew != nil || reviewLimit != nil {
			st, err = d.study.UpdateSettings(ctx, learner, dailyNew, reviewLimit)
		} else {
			st, err = d.study.Settings(ctx, learner)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		lipgloss.Fprintln(out, theme.Title.Render("Learner "+learner))
		fmt.Fprintf(out, "Daily new cards: %d\n", st.DailyNewLimit)
		fmt.Fprintf(out, "Review limit:    %d\n", st.ReviewSessionLimit)
		if d.cfg.DailyNewLimit >= 0 {
			lipgloss.Fprintln(out, theme.Hint.Render(fmt.Sprintf(
				"FLASHQUEST_DAILY_NEW_LIMIT=%d overrides the daily limit", d.cfg.DailyNewLimit)))
		}
		return nil
	},
}

func init() {
	settingsCmd.Flags().Int("daily-new", 0, "New cards introduced per day")
	settingsCmd.Flags().Int("review-limit", 0, "Reviewed cards considered per session")
}
