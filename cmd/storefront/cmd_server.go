package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/notifications"
	"github.com/bedjos/storefront/app/routes"
	"github.com/bedjos/storefront/app/services"
	"github.com/bedjos/storefront/config"
	"github.com/bedjos/storefront/internal/kernel"
	"github.com/bedjos/storefront/internal/server"
	"github.com/bedjos/storefront/pkg/auth"
	"github.com/bedjos/storefront/pkg/logger"
	"github.com/bedjos/storefront/pkg/mail"
	"github.com/bedjos/storefront/pkg/migration"
	"github.com/bedjos/storefront/pkg/notification"
	"github.com/bedjos/storefront/pkg/workerpool"
)

// storefront serve
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run"},
	Short:   "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			return serve(cmd, db)
		})
	},
}

func serve(cmd *cobra.Command, db *gorm.DB) error {
	if config.AutoMigrate() {
		if err := migration.New(db).WithOutput(io.Discard).Run(); err != nil {
			return err
		}
	}

	tokens := auth.NewTokenManager(config.JWTSecret(), config.JWTTTL())

	if email, password := config.AdminEmail(), config.AdminPassword(); email != "" && password != "" {
		if _, err := services.NewAuthService(db, tokens).EnsureAdmin(cmd.Context(), email, password); err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
	}

	mailer := mail.New(mail.SMTP{
		Host:     config.MailHost(),
		Port:     config.MailPort(),
		Username: config.MailUsername(),
		Password: config.MailPassword(),
		From:     config.MailFrom(),
	})
	if !mailer.Enabled() {
		logger.Warn("mail disabled, contact notifications will be dropped")
	}

	pool := workerpool.New("notify", config.NotifyWorkers())
	defer pool.Shutdown()

	dispatcher := notification.NewDispatcher(pool, mailer, config.ContactNotifyTo())

	handler, _ := kernel.New(routes.Deps{
		DB:            db,
		Tokens:        tokens,
		Notifier:      notifications.NewContactNotifier(dispatcher),
		PaymentPrefix: config.PaymentReferencePrefix(),
	}, kernel.Options{CORSOrigins: config.CORSOrigins()})

	return server.Start(":"+config.AppPort(), handler, config.ShutdownTimeout())
}

// storefront route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := auth.NewTokenManager(config.JWTSecret(), config.JWTTTL())
		_, r := kernel.New(routes.Deps{Tokens: tokens}, kernel.Options{})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range r.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
