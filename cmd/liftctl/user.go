package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/2beens/liftstats/internal/auth"
	"github.com/2beens/liftstats/pkg"

	"github.com/spf13/cobra"
)

const passwordEnvVar = "LIFTSTATS_NEW_USER_PASSWORD"

var userPassword string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Create a user",
	Long: `Create a user that can log in to the backend.

The password is taken from --password or, when empty, from the
` + passwordEnvVar + ` env var.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password := userPassword
		if password == "" {
			password = os.Getenv(passwordEnvVar)
		}
		if len(password) < 8 {
			return errors.New("password must have at least 8 characters")
		}

		hash, err := pkg.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user, err := auth.NewUsersRepo(dbPool).AddUser(cmd.Context(), args[0], hash)
		if err != nil {
			return err
		}
		fmt.Printf("user %s created: %s\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userPassword, "password", "", "password for the new user")
	userCmd.AddCommand(userAddCmd)
}
