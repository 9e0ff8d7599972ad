package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRunsCommand() *cobra.Command {
	var (
		storePath string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List persisted extraction runs",
		Long: `List extraction runs recorded in the run store, newest first.

Each run shows its identifier, manifest name, status, resource count
and start time. Use --json for machine-readable output.`,
		Example: `  # Show the last 20 runs
  dscforge runs --store runs.db

  # Show more runs as JSON
  dscforge runs --store runs.db --limit 100 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx, storePath)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(ctx, limit, 0)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(runs)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tMANIFEST\tSTATUS\tRESOURCES\tSTARTED")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					r.ID, r.ManifestName, r.Status, r.ResourceCount,
					r.StartedAt.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&storePath, "store", "runs.db", "SQLite run store path")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")

	return cmd
}
