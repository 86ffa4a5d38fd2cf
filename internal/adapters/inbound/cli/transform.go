package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	appconfig "github.com/railport/railport/internal/adapters/outbound/config"
	"github.com/railport/railport/internal/adapters/outbound/csvio"
	"github.com/railport/railport/internal/adapters/outbound/report"
	"github.com/railport/railport/internal/adapters/outbound/tui"
	"github.com/railport/railport/internal/application"
)

func newTransformCmd() *cobra.Command {
	var (
		configPath  string
		preValidate bool
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "transform <input.csv> <output.csv>",
		Short: "Convert a TestRail export into a Jira import file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, outputPath := args[0], args[1]

			reader := csvio.NewReader()
			loader := appconfig.New()

			if preValidate {
				validateSvc := application.NewValidateService(reader, loader, report.New())
				result, err := validateSvc.Validate(inputPath, configPath, "")
				if err != nil {
					return fmt.Errorf("validating input: %w", err)
				}
				if !result.Valid {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(inputPath, result))
					return fmt.Errorf("input validation failed: %d error(s)", len(result.Errors))
				}
			}

			svc := application.NewTransformService(reader, csvio.NewWriter(), loader)
			result, err := svc.Transform(inputPath, outputPath, configPath)
			if err != nil {
				return fmt.Errorf("transform failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(inputPath, result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	cmd.Flags().BoolVar(&preValidate, "validate", false, "Validate the input before transforming")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run summary as JSON")

	return cmd
}
