package main

import (
	"github.com/spf13/cobra"

	"github.com/c360studio/accountgen/prompts"
)

func promptCmd(flags *globalFlags) *cobra.Command {
	var (
		accountType string
		persona     string
		posts       int
		format      string
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Render the generation prompt for one account",
		Long: `Render the system prompt and hand-off instructions for one account.
The account is sampled unless --type (and optionally --persona) pin it.
Text output prints the prompt; json and yaml print the full envelope.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			a, err := app.Account(accountType, persona)
			if err != nil {
				return err
			}
			env := prompts.PostsEnvelope(a, app.postCount(posts))
			return writeEnvelope(app.out, env, app.format(format))
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "", "Account type (default: weighted draw)")
	cmd.Flags().StringVar(&persona, "persona", "", "Persona of --type (default: uniform draw)")
	cmd.Flags().IntVarP(&posts, "posts", "p", 0, "Number of posts to request (default: generation.post_count)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json or yaml")

	return cmd
}
