package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gw2inventory/internal/browse"
	"gw2inventory/internal/session"
	"gw2inventory/internal/tui"
)

type browseOptions struct {
	characters []string
}

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	var opts browseOptions

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive item browser",
		Long: `Open the interactive item browser.

Type to filter by item name, PgUp/PgDn to page, Esc to clear the filter and
Alt+Q to exit. When stdout is not a terminal the consolidated items are
printed as a table instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.characters, "character", nil, "Only include this character (repeatable); skips the picker")
	return cmd
}

func runBrowse(cmd *cobra.Command, ctx *commandContext, opts browseOptions) error {
	if !interactive(cmd) {
		return runItems(cmd, ctx, itemsOptions{characters: opts.characters})
	}

	env, err := ctx.environment(cmd)
	if err != nil {
		return err
	}

	selector := session.SelectNamed(opts.characters)
	if len(opts.characters) == 0 {
		selector = func(c context.Context, names []string) ([]string, error) {
			return tui.PickCharacters(c, names, env.cfg.UI.SelectAllByDefault, tui.Options{Logger: env.logger})
		}
	}

	loader := session.NewLoader(env.client, env.cache,
		session.WithSelector(selector),
		session.WithLogger(env.logger))

	fmt.Fprintln(cmd.ErrOrStderr(), "Loading item catalog and inventories...")
	result, err := loader.Load(cmd.Context())
	if err != nil {
		if errors.Is(err, session.ErrNoCharacters) || errors.Is(err, tui.ErrCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "No characters selected.")
			return nil
		}
		return err
	}

	return tui.Browse(cmd.Context(), browse.New(result.Items), tui.Options{
		TickInterval: env.cfg.TickInterval(),
		Logger:       env.logger,
		AltScreen:    true,
	})
}
