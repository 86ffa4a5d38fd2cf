package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	appconfig "github.com/railport/railport/internal/adapters/outbound/config"
	"github.com/railport/railport/internal/adapters/outbound/csvio"
	"github.com/railport/railport/internal/adapters/outbound/tui"
	"github.com/railport/railport/internal/application"
)

func newPreviewCmd() *cobra.Command {
	var (
		configPath string
		rows       int
	)

	cmd := &cobra.Command{
		Use:   "preview <input.csv>",
		Short: "Show what a transform would produce without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewTransformService(csvio.NewReader(), csvio.NewWriter(), appconfig.New())

			result, err := svc.Preview(args[0], configPath)
			if err != nil {
				return fmt.Errorf("preview failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPreview(result, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	cmd.Flags().IntVarP(&rows, "rows", "r", 5, "Number of rows to preview")

	return cmd
}
