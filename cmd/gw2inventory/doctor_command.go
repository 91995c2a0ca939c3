package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gw2inventory/internal/failures"
	"gw2inventory/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the API key permissions and local paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.environment(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			results := preflight.RunAll(cmd.Context(), env.cfg, env.client)
			for _, line := range renderSectionHeader("Readiness", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, result := range results {
				kind := statusOK
				if !result.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			if preflight.Failed(results) {
				return failures.Wrap(failures.ErrConfiguration, "doctor", "preflight", "one or more checks failed", errors.New("see report above"))
			}
			return nil
		},
	}
}
