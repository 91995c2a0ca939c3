package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gw2inventory/internal/browse"
	"gw2inventory/internal/inventory"
	"gw2inventory/internal/session"
	"gw2inventory/internal/textutil"
)

type itemsOptions struct {
	query      string
	characters []string
	jsonOutput bool
}

type itemJSON struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Count       int    `json:"count"`
	Character   string `json:"character"`
	Rarity      string `json:"rarity,omitempty"`
	Type        string `json:"type,omitempty"`
	Level       int    `json:"level"`
	Description string `json:"description,omitempty"`
}

func newItemsCommand(ctx *commandContext) *cobra.Command {
	var opts itemsOptions

	cmd := &cobra.Command{
		Use:   "items",
		Short: "Print consolidated items as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItems(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Fuzzy filter applied to item names")
	cmd.Flags().StringArrayVar(&opts.characters, "character", nil, "Only include this character (repeatable)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func runItems(cmd *cobra.Command, ctx *commandContext, opts itemsOptions) error {
	env, err := ctx.environment(cmd)
	if err != nil {
		return err
	}

	loader := session.NewLoader(env.client, env.cache,
		session.WithSelector(session.SelectNamed(opts.characters)),
		session.WithLogger(env.logger))
	result, err := loader.Load(cmd.Context())
	if err != nil {
		if errors.Is(err, session.ErrNoCharacters) {
			fmt.Fprintln(cmd.OutOrStdout(), "No characters on this account.")
			return nil
		}
		return err
	}

	matches := browse.Filter(result.Items, opts.query, textutil.FuzzyScore)

	if opts.jsonOutput {
		out := make([]itemJSON, 0, len(matches))
		for _, item := range matches {
			out = append(out, itemJSON{
				ID:          item.ID,
				Name:        item.Name,
				Count:       item.Count,
				Character:   item.Character,
				Rarity:      item.Rarity,
				Type:        item.Type,
				Level:       item.Level,
				Description: item.Description,
			})
		}
		return writeJSON(cmd, out)
	}

	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintln(out, "No matching items.")
		return nil
	}
	fmt.Fprintln(out, renderItemsTable(matches))
	totals := inventory.Summary(matches)
	fmt.Fprintf(out, "%d of %d stacks, %d items across %d characters\n",
		totals.Distinct, len(result.Items), totals.Count, len(totals.ByCharacter))
	return nil
}

func renderItemsTable(items []inventory.Item) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Name,
			strconv.Itoa(item.Count),
			item.Character,
			item.Rarity,
			item.Type,
			strconv.Itoa(item.Level),
		})
	}
	return renderTable(
		[]string{"Item", "Count", "Character", "Rarity", "Type", "Level"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignRight},
	)
}
