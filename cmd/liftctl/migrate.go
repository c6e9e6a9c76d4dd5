package main

import (
	"fmt"

	"github.com/2beens/liftstats/internal/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the liftstats tables (idempotent)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Migrate(cmd.Context(), dbPool); err != nil {
			return err
		}
		fmt.Println("schema up to date")
		return nil
	},
}
