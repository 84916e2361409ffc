package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contacomigo/backend/internal/application/usecase/data"
)

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateResetCmd)
	stateCmd.AddCommand(stateRolloverCmd)

	stateShowCmd.Flags().Bool("compact", false, "Print the state on a single line")
	stateResetCmd.Flags().Bool("yes", false, "Confirm the reset")
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or maintain the stored progression state",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current state as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		compact, _ := cmd.Flags().GetBool("compact")

		inj, err := buildInjector(cmd.Context())
		if err != nil {
			return err
		}
		defer inj.Close()

		enc := json.NewEncoder(cmd.OutOrStdout())
		if !compact {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(inj.Engine.State())
	},
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase transactions, XP, missions and settings",
	Long: `Erase all progression data and restore the defaults. The login
session and the profile are kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to reset without --yes")
		}

		inj, err := buildInjector(cmd.Context())
		if err != nil {
			return err
		}
		defer inj.Close()

		out, err := data.NewResetDataUseCase(inj.Engine).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Message)
		return nil
	},
}

var stateRolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Apply the day rollover now",
	Long:  `Reset daily missions and break the streak when a day was skipped, as the midnight job does.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		inj, err := buildInjector(cmd.Context())
		if err != nil {
			return err
		}
		defer inj.Close()

		res := inj.Engine.Rollover(cmd.Context())
		fmt.Fprintf(cmd.OutOrStdout(), "missions reset: %t\nstreak broken: %t\n", res.MissionsReset, res.StreakBroken)
		return nil
	},
}
