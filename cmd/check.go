package main

import (
	"context"
	"encoding/json"
	"os"

	"course-sectioning/cmd/bootstrap"
	"course-sectioning/internal/pkg/errs"
	"course-sectioning/internal/usecase/sectioning"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newCheckCmd() *cobra.Command {
	var (
		offeringIDs    []int64
		skipStudentIDs []int64
		studentIDs     []int64
		actor          string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run one resectioning pass over the given offerings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(offeringIDs) == 0 {
				return errs.New("at least one --offering is required")
			}

			var engine sectioning.Engine
			app := fx.New(
				bootstrap.EngineModule,
				fx.Populate(&engine),
				fx.NopLogger,
			)
			if err := app.Start(cmd.Context()); err != nil {
				return errs.Wrap(err, "failed to start engine")
			}
			defer func() { _ = app.Stop(context.Background()) }()

			result, err := engine.CheckOfferings(cmd.Context(), sectioning.CheckParams{
				OfferingIDs:    offeringIDs,
				SkipStudentIDs: skipStudentIDs,
				StudentIDs:     studentIDs,
				Actor:          actor,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return errs.Wrap(err, "failed to encode result")
			}
			if !result.Succeeded {
				return errs.New("one or more offerings failed")
			}
			return nil
		},
	}

	cmd.Flags().Int64SliceVar(&offeringIDs, "offering", nil, "offering id to check (repeatable)")
	cmd.Flags().Int64SliceVar(&skipStudentIDs, "skip-student", nil, "student id to leave untouched (repeatable)")
	cmd.Flags().Int64SliceVar(&studentIDs, "student", nil, "only resection these students (repeatable)")
	cmd.Flags().StringVar(&actor, "actor", "", "external id recorded as changed_by")

	return cmd
}
