package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "railport",
		Short:         "Convert TestRail exports into Jira/Zephyr import files",
		Long:          "Railport maps TestRail test-case CSV exports onto the Jira/Zephyr import schema: fixed columns, composed descriptions, derived labels.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newTransformCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newInitConfigCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
