package main

import (
	"github.com/spf13/cobra"

	"lrcollect/internal/migration"
)

func newPlanCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the collections an import would create",
		Long: `Reads the catalog and the source folders, matches them and resolves every
source image, then prints a report. The catalog is not modified.`,
		Example: `  # Print the report
  lrcollect plan --source ~/Exports --catalog ~/Photos.lrcat --root-folder 2011

  # Also save the full plan
  lrcollect plan --output plan.yaml`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.withLogger(cmd.Context())

			db, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			plan, err := a.newPipeline(db).Plan(ctx)
			if err != nil {
				return err
			}

			if err := plan.Stats.Print(cmd.OutOrStdout()); err != nil {
				return err
			}

			if output != "" {
				if err := migration.WritePlanFile(output, plan); err != nil {
					return err
				}
				a.logger.Info("Plan written", "path", output, "run_id", plan.RunID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the plan as YAML to this file")

	return cmd
}
