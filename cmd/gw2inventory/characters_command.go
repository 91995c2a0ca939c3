package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gw2inventory/internal/session"
)

func newCharactersCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "characters",
		Short: "List the account's characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.environment(cmd)
			if err != nil {
				return err
			}
			names, err := session.NewLoader(env.client, env.cache, session.WithLogger(env.logger)).Characters(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				if names == nil {
					names = []string{}
				}
				return writeJSON(cmd, names)
			}
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "No characters on this account.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
