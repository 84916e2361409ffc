package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tipCmd)
	tipCmd.Flags().Bool("summary", false, "Print the summary sent to the model instead of a tip")
}

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Ask the assistant for a financial tip based on the current state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		inj, err := buildInjector(cmd.Context())
		if err != nil {
			return err
		}
		defer inj.Close()

		if summary, _ := cmd.Flags().GetBool("summary"); summary {
			fmt.Fprintln(cmd.OutOrStdout(), inj.TipUseCase.Summary())
			return nil
		}

		out, err := inj.TipUseCase.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n(source: %s)\n", out.Tip, out.Source)
		return nil
	},
}
