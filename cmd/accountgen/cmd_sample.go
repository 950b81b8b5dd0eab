package main

import (
	"github.com/spf13/cobra"
)

func sampleCmd(flags *globalFlags) *cobra.Command {
	var (
		count  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample account profiles",
		Long: `Sample account profiles: a weighted account type, a persona of that
type, and one value per modifier category. Persona overrides fix or
narrow modifiers where the persona implies them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			n := count
			if n <= 0 {
				n = app.cfg.Sampling.Count
			}
			accounts, err := app.sampler.SampleAccounts(n)
			if err != nil {
				return err
			}
			return writeAccounts(app.out, accounts, app.format(format))
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of accounts (default: sampling.count)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json or yaml")

	return cmd
}
