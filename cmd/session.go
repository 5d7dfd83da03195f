package cmd

import (
	"fmt"
	"strconv"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/flashquest/internal/session"
	"github.com/abhisek/flashquest/internal/spacedrep"
	"github.com/abhisek/flashquest/internal/study"
	"github.com/abhisek/flashquest/internal/ui/components"
	"github.com/abhisek/flashquest/internal/ui/theme"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session <deck>",
	Short: "Show the cards the next study session would cover",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dueOnly, _ := cmd.Flags().GetBool("due-only")

		d, err := openDeps(cmd, study.WithDueOnly(dueOnly))
		if err != nil {
			return err
		}
		defer d.Close()

		sess, err := d.study.PlanSession(cmd.Context(), d.cfg.LearnerID, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		lipgloss.Fprintln(out, theme.Title.Render(sess.Deck.Name), theme.Subtitle.Render(fmt.Sprintf(
			"%d cards: %d new, %d review (new today %d/%d)",
			sess.Plan.Len(), sess.Plan.NewCount, sess.Plan.ReviewCount,
			sess.IntroducedToday, sess.Limits.DailyNewLimit)))
		if sess.Plan.Len() == 0 {
			fmt.Fprintln(out, "Nothing to study right now.")
			return nil
		}
		lipgloss.Fprintln(out, components.Table(
			[]string{"#", "Term", "Stage", "Status", "Due"},
			planRows(sess.Plan, sess.StartedAt),
		))
		return nil
	},
}

func planRows(plan *session.Plan, now time.Time) [][]string {
	rows := make([][]string, 0, plan.Len())
	for i, c := range plan.Cards {
		status := string(spacedrep.Status(c.DueAt, now))
		due := "-"
		if c.DueAt != nil {
			due = formatDue(*c.DueAt, now)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			components.Truncate(c.Term, 32),
			theme.StageStyle(string(c.Stage)).Render(string(c.Stage)),
			theme.StatusStyle(status).Render(status),
			due,
		})
	}
	return rows
}

// formatDue renders a due time relative to now.
func formatDue(due, now time.Time) string {
	m := spacedrep.MinutesUntilDue(&due, now)
	switch {
	case m == 0:
		return "now"
	case m < 60:
		return fmt.Sprintf("in %dm", m)
	case m < 48*60:
		return fmt.Sprintf("in %dh", m/60)
	default:
		return due.Local().Format("2006-01-02")
	}
}

func init() {
	sessionCmd.Flags().Bool("due-only", false, "Leave out reviewed cards that are not due yet")
}
