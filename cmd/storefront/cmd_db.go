package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/bedjos/storefront/config"
	"github.com/bedjos/storefront/database/seeders"
	"github.com/bedjos/storefront/pkg/database"
	"github.com/bedjos/storefront/pkg/logger"
	"github.com/bedjos/storefront/pkg/migration"
)

// bootDB loads and validates config, sets up logging and opens the database.
func bootDB() (*gorm.DB, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	logger.Setup(config.AppEnv(), config.LogLevel())

	return database.Connect(config.DatabaseDriver(), config.DatabaseDSN())
}

// withDB runs fn against a freshly opened database and closes it afterwards.
func withDB(fn func(db *gorm.DB) error) error {
	db, err := bootDB()
	if err != nil {
		return err
	}
	defer database.Close(db)
	return fn(db)
}

// storefront migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Running migrations…")
			return migration.New(db).WithOutput(cmd.OutOrStdout()).Run()
		})
	},
}

// storefront migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Roll back the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Rolling back last batch…")
			return migration.New(db).WithOutput(cmd.OutOrStdout()).Rollback()
		})
	},
}

// storefront migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			return migration.New(db).WithOutput(cmd.OutOrStdout()).Status()
		})
	},
}

// storefront seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the default admin and the sample catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Running seeders…")
			return seeders.RunAll(cmd.Context(), db, cmd.OutOrStdout())
		})
	},
}
