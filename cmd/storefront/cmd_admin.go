package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/services"
	"github.com/bedjos/storefront/config"
	"github.com/bedjos/storefront/pkg/auth"
)

var adminEmail, adminPassword string

// storefront admin:create --email a@b.c --password secret
var adminCreateCmd = &cobra.Command{
	Use:   "admin:create",
	Short: "Create an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminEmail == "" || adminPassword == "" {
			return errors.New("--email and --password are required")
		}

		return withDB(func(db *gorm.DB) error {
			svc := services.NewAuthService(db, auth.NewTokenManager(config.JWTSecret(), config.JWTTTL()))
			admin, err := svc.CreateAdmin(cmd.Context(), adminEmail, adminPassword)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Admin created: %s\n", admin.Email)
			return nil
		})
	},
}

func init() {
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "admin email address")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")
}
