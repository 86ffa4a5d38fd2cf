package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// sampleConfig documents every knob with its default.
const sampleConfig = `# railport configuration
#
# Source column overrides. Keys are railport's logical field names, values
# are the column headers of your TestRail export. Omitted fields keep the
# stock TestRail column names.
columns:
  identifier: ID
  title: Title
  type: Type
  automation: Automation Type
  overview: Overview
  preconditions: Preconditions
  steps: Steps
  expected: Expected Result

# Constants stamped into every output row. Also settable via the
# RAILPORT_PRODUCT, RAILPORT_PARENT and RAILPORT_TEAM environment variables.
static_values:
  product: Platform
  parent: "3074219"
  engineering_team: Team Platinum

# Label derivation. By default a value is lower-cased and hyphenated
# ("Smoke Test" -> smoke-test). Overrides pin raw values to fixed labels;
# unknown is used when a value produces no label at all.
type_labels:
  overrides: {}
  unknown: other
automation_labels:
  overrides: {}
  unknown: other

# Logical fields that may be blank without skipping the row.
optional_fields: []

# Jira import limits. 0 disables a check.
max_summary_length: 255
max_description_length: 32767
`

func newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config <config.yaml>",
		Short: "Write a commented sample configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", path)
			return nil
		},
	}
}
