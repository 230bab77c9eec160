package commands

import (
	"github.com/GriffinCanCode/explorer/internal/providers"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find [pattern]",
	Short: "Find entries whose name contains a substring",
	Long: `Find entries in the current directory whose name contains pattern.
An empty pattern matches everything. With -r, subdirectories are searched
too; symbolic links to directories are followed, each directory at most once.

Examples:
  explorer find .log
  explorer find -r config`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recursive, _ := cmd.Flags().GetBool("recursive")
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}
		return run(cmd, providers.ToolSearch, map[string]interface{}{
			"pattern":   pattern,
			"recursive": recursive,
		}, matchesView)
	},
}

var globCmd = &cobra.Command{
	Use:   "glob <pattern>",
	Short: "Match paths with a glob pattern",
	Long: `Match paths below the current directory. "**" matches any number of
directories and {a,b} alternatives are supported.

Examples:
  explorer glob '**/*.go'
  explorer glob 'docs/*.{md,txt}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, providers.ToolGlob, map[string]interface{}{"pattern": args[0]}, matchesView)
	},
}

var duCmd = &cobra.Command{
	Use:   "du [directory]",
	Short: "Show the total size of a directory tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := map[string]interface{}{}
		if len(args) == 1 {
			params["path"] = args[0]
		}
		return run(cmd, providers.ToolUsage, params, usageView)
	},
}

func init() {
	findCmd.Flags().BoolP("recursive", "r", false, "Search subdirectories")
}
