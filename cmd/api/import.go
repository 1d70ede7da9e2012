package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weddinginvites/config"
	"weddinginvites/internal/repository/postgres"
	"weddinginvites/internal/services"
)

func newImportGuestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-guests <file.csv>",
		Short: "Import a guest list CSV without the HTTP layer",
		Long:  "Reads name, email, relation and interest positionally from each row, skips header and incomplete rows, and inserts the rest.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := config.NewLogger(cfg.Environment)

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			db, err := openDB(cmd.Context(), cfg.DBUrl)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := services.NewGuestService(postgres.NewGuestRepository(db), logger, cfg.ContextTimeout)
			n, err := svc.ImportCSV(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d guest(s)\n", n)
			return nil
		},
	}
}
