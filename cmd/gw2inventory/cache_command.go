package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"gw2inventory/internal/itemcache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the item metadata snapshot",
	}

	cacheCmd.AddCommand(newCacheInfoCommand(ctx))
	cacheCmd.AddCommand(newCacheRefreshCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show snapshot location, size and item count",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.environment(cmd)
			if err != nil {
				return err
			}
			info, err := itemcache.Stat(env.cache.Path())
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Path", info.Path},
				{"Exists", yesNo(info.Exists)},
			}
			if info.Exists {
				// Populate reads the existing snapshot and never reaches the remote.
				if err := env.cache.Populate(cmd.Context(), nil); err != nil {
					return err
				}
				rows = append(rows,
					[]string{"Items", strconv.Itoa(env.cache.Len())},
					[]string{"Size", humanize.Bytes(uint64(info.SizeBytes))},
					[]string{"Updated", fmt.Sprintf("%s (%s)", info.ModTime.Local().Format("2006-01-02 15:04"), humanize.Time(info.ModTime))},
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}
}

func newCacheRefreshCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Discard the snapshot and download the item catalog again",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.environment(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Downloading item catalog...")
			if err := env.cache.Refresh(cmd.Context(), env.client); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cached %d items at %s\n", env.cache.Len(), env.cache.Path())
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the snapshot; the next run downloads the catalog again",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.environment(cmd)
			if err != nil {
				return err
			}
			path := env.cache.Path()
			info, err := itemcache.Stat(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !info.Exists {
				fmt.Fprintf(out, "No snapshot at %s\n", path)
				return nil
			}
			if err := itemcache.RemoveSnapshot(path); err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed snapshot %s\n", path)
			return nil
		},
	}
}
