package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/flashquest/internal/gems"
	"github.com/abhisek/flashquest/internal/study"
	"github.com/abhisek/flashquest/internal/ui/theme"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <card-id>",
	Short: "Record one graded review of a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, _ := cmd.Flags().GetInt("grade")

		a := study.Answer{CardID: args[0], Grade: g}
		if cmd.Flags().Changed("response-ms") {
			ms, _ := cmd.Flags().GetFloat64("response-ms")
			a.ResponseMs = &ms
		}
		if cmd.Flags().Changed("confidence") {
			c, _ := cmd.Flags().GetFloat64("confidence")
			a.Confidence = &c
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		a.LearnerID = d.cfg.LearnerID
		res, err := d.study.SubmitAnswer(cmd.Context(), a)
		if err != nil {
			return err
		}
		printAnswerResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func printAnswerResult(out io.Writer, res *study.AnswerResult) {
	verdict := theme.Correct.Render("✓ correct")
	if !res.Correct {
		verdict = theme.Incorrect.Render("✗ again")
	}
	s := res.Schedule
	lipgloss.Fprintf(out, "%s  %s  stage %s\n",
		verdict, theme.Title.Render(res.Card.Term),
		theme.StageStyle(string(res.Stage)).Render(string(res.Stage)))
	lipgloss.Fprintln(out, theme.Subtitle.Render(fmt.Sprintf(
		"ease %.2f  reps %d  interval %s  due %s",
		s.EaseFactor, s.Repetitions, formatInterval(s.NextIntervalMinutes), s.NextDueAtISO)))
	for _, g := range res.Gems {
		printGem(out, g)
	}
}

func printGem(out io.Writer, g gems.GemAward) {
	lipgloss.Fprintf(out, "%s %s gem (%s) %s\n",
		g.Type.Icon(), g.Type.DisplayName(),
		theme.RarityStyle(string(g.Rarity)).Render(g.Rarity.DisplayName()),
		theme.Hint.Render(g.Reason))
}

// formatInterval renders a minute count in the largest whole unit. It
// stays in float minutes since intervals can outgrow time.Duration.
func formatInterval(minutes float64) string {
	const (
		hour = 60
		day  = 24 * hour
		year = 365 * day
	)
	switch {
	case minutes >= year:
		return fmt.Sprintf("%.1fy", minutes/year)
	case minutes >= day:
		return fmt.Sprintf("%.1fd", minutes/day)
	case minutes >= hour:
		return fmt.Sprintf("%.1fh", minutes/hour)
	default:
		return fmt.Sprintf("%dm", int(minutes))
	}
}

func init() {
	reviewCmd.Flags().IntP("grade", "g", 4, "Recall grade 0-5 (below 3 counts as a failure)")
	reviewCmd.Flags().Float64("response-ms", 0, "Response time in milliseconds")
	reviewCmd.Flags().Float64("confidence", 0, "Self-reported confidence 0-1")
}
