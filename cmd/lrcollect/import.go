package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lrcollect/internal/migration"
	"lrcollect/internal/prompt"
)

const backupWarning = "WARNING: This action is irreversible and could break your catalog. Back up the catalog before continuing!"

func newImportCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Create the planned collections in the catalog",
		Long: `Builds the plan like "plan", prints the report and asks for confirmation
before writing. Anything but "y" or "yes" aborts without touching the catalog.`,
		Example: `  lrcollect import --source ~/Exports --catalog ~/Photos.lrcat --root-folder 2011

  # Skip the confirmation prompt
  lrcollect import --yes`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.withLogger(cmd.Context())
			out := cmd.OutOrStdout()

			db, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			confirm := func(ctx context.Context, plan *migration.Plan) (bool, error) {
				if err := plan.Stats.Print(out); err != nil {
					return false, err
				}
				if yes {
					return true, nil
				}
				fmt.Fprintln(out)
				return prompt.Confirm(cmd.InOrStdin(), out,
					"Continue with creating new collections in the catalog?", backupWarning)
			}

			plan, result, err := a.newPipeline(db).Run(ctx, confirm)
			if result != nil {
				fmt.Fprintln(out)
				if perr := plan.Stats.Print(out); perr != nil && err == nil {
					err = perr
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "create collections without asking")

	return cmd
}
