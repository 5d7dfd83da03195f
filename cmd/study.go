package cmd

import (
	"github.com/abhisek/flashquest/internal/app"
	"github.com/abhisek/flashquest/internal/study"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study <deck>",
	Short: "Start an interactive study session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dueOnly, _ := cmd.Flags().GetBool("due-only")

		d, err := openDeps(cmd, study.WithDueOnly(dueOnly))
		if err != nil {
			return err
		}
		defer d.Close()

		return app.Run(cmd.Context(), app.Options{
			Service:   d.study,
			LearnerID: d.cfg.LearnerID,
			DeckRef:   args[0],
		})
	},
}

func init() {
	studyCmd.Flags().Bool("due-only", false, "Leave out reviewed cards that are not due yet")
}
