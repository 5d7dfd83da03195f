package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a learner's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		learner := d.cfg.LearnerID
		if !yes {
			return fmt.Errorf("this deletes all progress for learner %q; re-run with --yes to confirm", learner)
		}

		n, err := d.study.ResetLearner(cmd.Context(), learner)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reset %d card(s) for learner %s\n", n, learner)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Confirm the reset")
}
