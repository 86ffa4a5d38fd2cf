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

func newValidateCmd() *cobra.Command {
	var (
		configPath string
		reportPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "validate <input.csv>",
		Short: "Check a TestRail export without converting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewValidateService(csvio.NewReader(), appconfig.New(), report.New())

			result, err := svc.Validate(args[0], configPath, reportPath)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(args[0], result))
				if reportPath != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  Report saved to %s\n", reportPath)
				}
			}

			if !result.Valid {
				return fmt.Errorf("validation failed: %d error(s)", len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	cmd.Flags().StringVar(&reportPath, "report", "", "Save a validation report to this file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the validation result as JSON")

	return cmd
}
