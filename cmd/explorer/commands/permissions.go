package commands

import (
	"github.com/GriffinCanCode/explorer/internal/providers"
	"github.com/spf13/cobra"
)

var statCmd = &cobra.Command{
	Use:   "stat <path>",
	Short: "Show permissions, owner, group and size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, providers.ToolStat, map[string]interface{}{"path": args[0]}, permissionView)
	},
}

var chmodCmd = &cobra.Command{
	Use:   "chmod <mode> <path>",
	Short: "Change permissions",
	Long: `Apply a three digit octal mode to a file or directory.

Examples:
  explorer chmod 755 run.sh
  explorer chmod 600 secrets.env`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, providers.ToolChmod, map[string]interface{}{
			"mode": args[0],
			"path": args[1],
		}, nil)
	},
}
