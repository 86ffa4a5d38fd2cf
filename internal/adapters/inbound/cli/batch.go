package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	appconfig "github.com/railport/railport/internal/adapters/outbound/config"
	"github.com/railport/railport/internal/adapters/outbound/csvio"
	"github.com/railport/railport/internal/adapters/outbound/tui"
	"github.com/railport/railport/internal/application"
)

func newBatchCmd() *cobra.Command {
	var (
		configPath string
		pattern    string
	)

	cmd := &cobra.Command{
		Use:   "batch <input-dir> <output-dir>",
		Short: "Convert every matching export in a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			transformSvc := application.NewTransformService(csvio.NewReader(), csvio.NewWriter(), appconfig.New())
			svc := application.NewBatchService(transformSvc)

			summary, err := svc.Run(args[0], args[1], pattern, configPath)
			if err != nil {
				return fmt.Errorf("batch failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderBatch(summary))

			if summary.Failed > 0 {
				return fmt.Errorf("%d file(s) failed", summary.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "*.csv", "File pattern to match")

	return cmd
}
