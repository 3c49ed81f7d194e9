package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// refreshCmd runs a single refresh outside the HTTP server.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the country cache once",
	Long: `Fetches countries and exchange rates, reconciles them into the database
and regenerates the summary image, then exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		res, err := a.countries.Refresher().Refresh(cmd.Context())
		if err != nil {
			return err
		}

		a.logger.Info("Refresh complete",
			zap.Int("inserted", res.Inserted),
			zap.Int("updated", res.Updated),
			zap.Int64("total", res.Total),
			zap.Bool("artifact_generated", res.ArtifactGenerated))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Inserted:    %d\n", res.Inserted)
		fmt.Fprintf(out, "Updated:     %d\n", res.Updated)
		fmt.Fprintf(out, "Total:       %d\n", res.Total)
		fmt.Fprintf(out, "RefreshedAt: %s\n", res.RefreshedAt.UTC().Format(time.RFC3339))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(refreshCmd)
}
