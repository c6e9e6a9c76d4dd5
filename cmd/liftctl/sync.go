package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync <username>",
	Short: "Pull workouts from Hevy and rebuild records and aggregates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := lookupUser(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		orchestrator, cleanup := newOrchestrator(cmd.Context())
		defer cleanup()

		result, err := orchestrator.Sync(cmd.Context(), user.ID)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		return printJSON(result)
	},
}

var recomputeCmd = &cobra.Command{
	Use:   "recompute <username>",
	Short: "Recompute volumes, records and aggregates from stored workouts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := lookupUser(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		orchestrator, cleanup := newOrchestrator(cmd.Context())
		defer cleanup()

		result, err := orchestrator.Recompute(cmd.Context(), user.ID)
		if err != nil {
			return fmt.Errorf("recompute failed: %w", err)
		}
		return printJSON(result)
	},
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
