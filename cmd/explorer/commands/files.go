package commands

import (
	"fmt"

	"github.com/GriffinCanCode/explorer/internal/cli/prompt"
	"github.com/GriffinCanCode/explorer/internal/providers"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the current directory",
	Long: `List the current directory, directories first, each group sorted by name.

Examples:
  # Names only
  explorer ls

  # With permissions, size, owner and modification time
  explorer ls -l

  # As JSON
  explorer ls -l -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		detailed, _ := cmd.Flags().GetBool("long")
		return run(cmd, providers.ToolList, map[string]interface{}{"detailed": detailed}, listingView)
	},
}

var touchCmd = &cobra.Command{
	Use:   "touch <file>",
	Short: "Create an empty file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, providers.ToolTouch, map[string]interface{}{"path": args[0]}, nil)
	},
}

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <directory>",
	Short: "Create a directory",
	Long:  `Create a single directory. Missing parent directories are not created.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, providers.ToolMkdir, map[string]interface{}{"path": args[0]}, nil)
	},
}

var cpCmd = &cobra.Command{
	Use:   "cp <source> <destination>",
	Short: "Copy a file",
	Long:  `Copy the contents of a file. An existing destination is overwritten.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, providers.ToolCopy, pairParams(args), nil)
	},
}

var mvCmd = &cobra.Command{
	Use:   "mv <source> <destination>",
	Short: "Move or rename a file or directory",
	Long:  `Rename a file or directory. Source and destination must be on the same volume.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, providers.ToolMove, pairParams(args), nil)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Delete a file or an empty directory",
	Long: `Delete a file or an empty directory. Non-empty directories are refused.

Examples:
  # Ask before deleting
  explorer rm notes.txt

  # Delete without asking
  explorer rm -f notes.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		ok, err := confirmer.ConfirmWithForce(fmt.Sprintf("Delete %s", args[0]), force)
		if err != nil {
			if prompt.IsAborted(err) {
				printer(cmd).Warning("Aborted.")
				return nil
			}
			return err
		}
		if !ok {
			printer(cmd).Warning("Deletion cancelled.")
			return nil
		}
		return run(cmd, providers.ToolDelete, map[string]interface{}{"path": args[0]}, nil)
	},
}

// confirmer reads answers from the terminal; tests replace it.
var confirmer = prompt.Confirmer{}

func init() {
	lsCmd.Flags().BoolP("long", "l", false, "Show permissions, size, owner and modification time")
	rmCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
}

func pairParams(args []string) map[string]interface{} {
	return map[string]interface{}{"source": args[0], "destination": args[1]}
}
