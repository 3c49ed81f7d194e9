package cmd

import (
	"fmt"

	"country-currency/feature/countries/models"
	"country-currency/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the tables and reports the resulting schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the database schema",
	Long:  `Creates the countries and refresh_metadata tables if needed and verifies them against the models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// bootstrap runs the migration.
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		report, err := checks.CheckSchema(a.db, models.All()...)
		if err != nil {
			return err
		}
		if !report.Matched {
			a.logger.Error("Schema mismatch after migration",
				zap.Any("tables", report.Tables),
				zap.Strings("errors", report.Errors))
			return fmt.Errorf("schema does not match the models")
		}

		a.logger.Info("Database schema is up to date")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
