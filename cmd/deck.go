package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/flashquest/internal/ui/components"
	"github.com/abhisek/flashquest/internal/ui/theme"
	"github.com/spf13/cobra"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage decks",
}

var deckCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, _ := cmd.Flags().GetString("description")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		deck, err := d.store.DeckRepo().CreateDeck(cmd.Context(), args[0], desc)
		if err != nil {
			return err
		}
		lipgloss.Fprintln(cmd.OutOrStdout(), "Created deck", theme.Title.Render(deck.Name), theme.Hint.Render(deck.ID))
		return nil
	},
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List decks",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		decks, err := d.store.DeckRepo().ListDecks(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(decks) == 0 {
			fmt.Fprintln(out, "No decks yet. Create one with: flashquest deck create <name>")
			return nil
		}

		rows := make([][]string, 0, len(decks))
		for _, deck := range decks {
			cards, err := d.store.CardRepo().ListCards(ctx, deck.ID)
			if err != nil {
				return err
			}
			rows = append(rows, []string{
				deck.Name,
				strconv.Itoa(len(cards)),
				components.Truncate(deck.Description, 40),
				deck.ID,
			})
		}
		lipgloss.Fprintln(out, components.Table([]string{"Name", "Cards", "Description", "ID"}, rows))
		return nil
	},
}

var deckEditCmd = &cobra.Command{
	Use:   "edit <deck>",
	Short: "Rename a deck or change its description",
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
		name, desc := deck.Name, deck.Description
		if cmd.Flags().Changed("name") {
			name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("description") {
			desc, _ = cmd.Flags().GetString("description")
		}
		if name == "" {
			return fmt.Errorf("deck name must not be empty")
		}
		if err := d.store.DeckRepo().UpdateDeck(ctx, deck.ID, name, desc); err != nil {
			return err
		}
		lipgloss.Fprintln(cmd.OutOrStdout(), "Updated deck", theme.Title.Render(name), theme.Hint.Render(deck.ID))
		return nil
	},
}

var deckDeleteCmd = &cobra.Command{
	Use:   "delete <deck>",
	Short: "Delete a deck with its cards and progress",
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
		if err := d.store.DeckRepo().DeleteDeck(ctx, deck.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted deck %s\n", deck.Name)
		return nil
	},
}

func init() {
	deckCreateCmd.Flags().StringP("description", "d", "", "Deck description")
	deckEditCmd.Flags().String("name", "", "New deck name")
	deckEditCmd.Flags().StringP("description", "d", "", "New deck description")

	deckCmd.AddCommand(deckCreateCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckEditCmd)
	deckCmd.AddCommand(deckDeleteCmd)
}
