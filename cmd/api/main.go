package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title Wedding Invites API
// @version 1.0
// @description Guest list import, invitation generation and scheduled invitation mailing.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /api/login.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "api",
		Short:         "Wedding invitation backend",
		Long:          "Imports guest lists, generates invitations and programmes, and mails invitations on a schedule.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newImportGuestsCmd())
	return root
}
