package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/accountgen/config"
)

func taxonomyCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Inspect, validate and export the account taxonomy",
	}

	cmd.AddCommand(
		taxonomyListCmd(flags),
		taxonomyShowCmd(flags),
		taxonomyValidateCmd(flags),
		taxonomyExportCmd(flags),
	)
	return cmd
}

func taxonomyListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List account types with their weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			w := app.out
			fmt.Fprintf(w, "%-28s %7s %9s %11s %10s\n", "ACCOUNT TYPE", "WEIGHT", "PERSONAS", "CATEGORIES", "OVERRIDES")
			for _, at := range app.tax.AccountTypes() {
				fmt.Fprintf(w, "%-28s %7.2f %9d %11d %10d\n",
					at.Name(), at.Weight(), len(at.Personas()), len(at.CategoryNames()), len(at.OverriddenPersonas()))
			}
			return nil
		},
	}
}

func taxonomyShowCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account-type>",
		Short: "Show personas, modifier categories and overrides of an account type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			at, err := app.tax.Lookup(args[0])
			if err != nil {
				return err
			}

			w := app.out
			fmt.Fprintf(w, "%s (weight %.2f)\n", at.Name(), at.Weight())
			fmt.Fprintln(w, "\nPersonas:")
			for _, p := range at.Personas() {
				fmt.Fprintf(w, "  %s\n", p)
			}
			fmt.Fprintln(w, "\nModifiers:")
			for _, c := range at.Categories() {
				fmt.Fprintf(w, "  %s: %s\n", c.Name, strings.Join(c.Options, ", "))
			}
			if personas := at.OverriddenPersonas(); len(personas) > 0 {
				fmt.Fprintln(w, "\nOverrides:")
				for _, p := range personas {
					fmt.Fprintf(w, "  %s\n", p)
					for _, c := range at.CategoryNames() {
						if o, ok := at.Override(p, c); ok {
							fmt.Fprintf(w, "    %s: %s\n", c, o)
						}
					}
				}
			}
			return nil
		},
	}
}

func taxonomyValidateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file-or-directory]",
		Short: "Validate a taxonomy (default: the configured one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Taxonomy.Path = args[0]
			}

			tax, err := cfg.LoadTaxonomy()
			if err != nil {
				return fmt.Errorf("taxonomy is invalid:\n%w", err)
			}

			personas := 0
			for _, at := range tax.AccountTypes() {
				personas += len(at.Personas())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d account types, %d personas\n", tax.Len(), personas)
			return nil
		},
	}
}

func taxonomyExportCmd(flags *globalFlags) *cobra.Command {
	var (
		outPath string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the taxonomy in file form",
		Long: `Write the active taxonomy as YAML or JSON. With --out the format
follows the file extension; otherwise it is written to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			table := app.tax.ToConfig()
			if outPath != "" {
				if err := table.SaveToFile(outPath); err != nil {
					return err
				}
				fmt.Fprintf(app.out, "Wrote %s\n", outPath)
				return nil
			}
			return encode(app.out, table, format)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatYAML, "Stdout format: json or yaml")

	return cmd
}
