package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/flashquest/internal/gems"
	"github.com/abhisek/flashquest/internal/session"
	"github.com/abhisek/flashquest/internal/store"
	"github.com/abhisek/flashquest/internal/study"
	"github.com/abhisek/flashquest/internal/ui/components"
	"github.com/abhisek/flashquest/internal/ui/theme"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [deck]",
	Short: "Show learning statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("sessions")
		gemLimit, _ := cmd.Flags().GetInt("gems")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		learner := d.cfg.LearnerID
		out := cmd.OutOrStdout()

		var decks []store.Deck
		if len(args) == 1 {
			deck, err := d.store.DeckRepo().GetDeck(ctx, args[0])
			if err != nil {
				return err
			}
			decks = []store.Deck{*deck}
		} else {
			if decks, err = d.store.DeckRepo().ListDecks(ctx); err != nil {
				return err
			}
		}

		lipgloss.Fprintln(out, theme.Title.Render("Learner "+learner))
		fmt.Fprintln(out)

		for _, deck := range decks {
			ds, err := d.study.DeckStats(ctx, learner, deck.ID)
			if err != nil {
				return err
			}
			printDeckStats(out, ds)
		}

		sessions, err := d.store.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{
			LearnerID: learner,
			Limit:     limit,
		})
		if err != nil {
			return err
		}
		if len(sessions) > 0 {
			names := make(map[string]string, len(decks))
			for _, deck := range decks {
				names[deck.ID] = deck.Name
			}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				if len(args) == 1 && names[s.DeckID] == "" {
					continue
				}
				rows = append(rows, sessionRow(s, names))
			}
			if len(rows) > 0 {
				lipgloss.Fprintln(out, theme.Subtitle.Render("Recent sessions"))
				lipgloss.Fprintln(out, components.Table(
					[]string{"When", "Deck", "Answered", "Correct", "Streak", "Time", "Gems"}, rows))
			}
		}

		counts, total, err := d.gems.Counts(ctx, learner)
		if err != nil {
			return err
		}
		printGemCounts(out, counts, total)
		if total == 0 || gemLimit <= 0 {
			return nil
		}

		recent, err := d.store.EventRepo().QueryGemEvents(ctx, store.QueryOpts{
			LearnerID: learner,
			Limit:     gemLimit,
		})
		if err != nil {
			return err
		}
		printRecentGems(out, recent)
		return nil
	},
}

func printDeckStats(out io.Writer, ds *study.DeckStats) {
	known := ds.ByStage[session.StageKnow]
	lipgloss.Fprintf(out, "%s  %s\n",
		theme.Title.Render(ds.Deck.Name),
		theme.Subtitle.Render(fmt.Sprintf("%d cards, %d new, %d due", ds.Total, ds.New, ds.Due)))
	lipgloss.Fprintln(out, components.Ratio("Known", known, ds.Total, 50).View())

	var parts []string
	for _, st := range session.AllStages() {
		parts = append(parts, theme.StageStyle(string(st)).Render(fmt.Sprintf("%s %d", st, ds.ByStage[st])))
	}
	lipgloss.Fprintln(out, strings.Join(parts, "   "))

	if ds.NextDue != nil {
		lipgloss.Fprintln(out, theme.Hint.Render("Next review "+formatDue(*ds.NextDue, time.Now())))
	}
	fmt.Fprintln(out)
}

func sessionRow(s store.SessionSummaryRecord, names map[string]string) []string {
	deck := names[s.DeckID]
	if deck == "" {
		deck = s.DeckID
	}
	return []string{
		s.Timestamp.Local().Format("2006-01-02 15:04"),
		components.Truncate(deck, 20),
		strconv.Itoa(s.CardsAnswered),
		strconv.Itoa(s.CorrectAnswers),
		strconv.Itoa(s.BestStreak),
		(time.Duration(s.DurationSecs) * time.Second).String(),
		strconv.Itoa(s.GemCount),
	}
}

func printGemCounts(out io.Writer, counts map[gems.GemType]int, total int) {
	if total == 0 {
		fmt.Fprintln(out, "No gems yet.")
		return
	}
	line := fmt.Sprintf("Gems: %d", total)
	for _, t := range gems.AllGemTypes() {
		if n := counts[t]; n > 0 {
			line += fmt.Sprintf("   %s %s %d", t.Icon(), t.DisplayName(), n)
		}
	}
	lipgloss.Fprintln(out, theme.Body.Render(line))
}

// printRecentGems lists gem events newest first and names the rarest one.
func printRecentGems(out io.Writer, recent []store.GemEventRecord) {
	if len(recent) == 0 {
		return
	}
	best := gems.RarityCommon
	rows := make([][]string, 0, len(recent))
	for _, g := range recent {
		rarity := gems.ParseRarity(g.Rarity)
		if rarity.Rank() > best.Rank() {
			best = rarity
		}
		t := gems.GemType(g.GemType)
		rows = append(rows, []string{
			g.Timestamp.Local().Format("2006-01-02 15:04"),
			t.Icon() + " " + t.DisplayName(),
			theme.RarityStyle(string(rarity)).Render(rarity.DisplayName()),
			components.Truncate(g.Reason, 40),
		})
	}
	lipgloss.Fprintln(out, theme.Subtitle.Render("Recent gems"),
		theme.Hint.Render("best: "+best.DisplayName()))
	lipgloss.Fprintln(out, components.Table([]string{"When", "Gem", "Rarity", "Reason"}, rows))
}

func init() {
	statsCmd.Flags().Int("sessions", 10, "Number of recent sessions to show")
	statsCmd.Flags().Int("gems", 5, "Number of recent gems to show")
}
