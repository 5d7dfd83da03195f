package cmd

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/flashquest/internal/spacedrep"
	"github.com/abhisek/flashquest/internal/store"
	"github.com/abhisek/flashquest/internal/ui/components"
	"github.com/abhisek/flashquest/internal/ui/theme"
	"github.com/spf13/cobra"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage cards in a deck",
}

var cardAddCmd = &cobra.Command{
	Use:   "add <deck> <term> <definition>",
	Short: "Add a card to a deck",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		deck, err := d.store.DeckRepo().GetDeck(ctx, args[0])
		if err != nil {
			return err
		}
		card, err := d.store.CardRepo().AddCard(ctx, deck.ID, args[1], args[2])
		if err != nil {
			return err
		}
		lipgloss.Fprintln(cmd.OutOrStdout(), "Added", theme.Title.Render(card.Term), "to", deck.Name, theme.Hint.Render(card.ID))
		return nil
	},
}

var cardListCmd = &cobra.Command{
	Use:   "list <deck>",
	Short: "List a deck's cards with the learner's progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		deck, err := d.store.DeckRepo().GetDeck(ctx, args[0])
		if err != nil {
			return err
		}
		cards, err := d.store.CardRepo().ListCards(ctx, deck.ID)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(cards) == 0 {
			fmt.Fprintf(out, "Deck %s has no cards.\n", deck.Name)
			return nil
		}
		progress, err := d.store.ProgressRepo().ListForDeck(ctx, d.cfg.LearnerID, deck.ID)
		if err != nil {
			return err
		}
		byCard := make(map[string]store.Progress, len(progress))
		for _, p := range progress {
			byCard[p.CardID] = p
		}

		now := time.Now()
		rows := make([][]string, 0, len(cards))
		for _, c := range cards {
			stage, due := "learn", "-"
			var dueAt *time.Time
			if p, ok := byCard[c.ID]; ok {
				stage = p.Stage
				dueAt = p.DueAt
				if dueAt != nil {
					due = formatDue(*dueAt, now)
				}
			}
			status := string(spacedrep.Status(dueAt, now))
			rows = append(rows, []string{
				components.Truncate(c.Term, 24),
				components.Truncate(c.Definition, 40),
				theme.StageStyle(stage).Render(stage),
				theme.StatusStyle(status).Render(status),
				due,
				c.ID,
			})
		}
		lipgloss.Fprintln(out, components.Table([]string{"Term", "Definition", "Stage", "Status", "Due", "ID"}, rows))
		return nil
	},
}

var cardDeleteCmd = &cobra.Command{
	Use:   "delete <card-id>",
	Short: "Delete a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.store.CardRepo().DeleteCard(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted card %s\n", args[0])
		return nil
	},
}

func init() {
	cardCmd.AddCommand(cardAddCmd)
	cardCmd.AddCommand(cardListCmd)
	cardCmd.AddCommand(cardDeleteCmd)
}
