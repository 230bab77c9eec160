package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/GriffinCanCode/explorer/internal/cli/output"
	"github.com/GriffinCanCode/explorer/internal/providers"
	"github.com/GriffinCanCode/explorer/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session",
	Long: `Start an interactive session. The current directory persists between
commands; type "help" for the list of commands and "exit" to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sh := &shell{
			cmd: cmd,
			in:  bufio.NewScanner(cmd.InOrStdin()),
			out: cmd.OutOrStdout(),
		}
		return sh.loop()
	},
}

const shellHelp = `Navigation & listing:
  ls [-l]                 list the current directory
  cd [dir]                change directory (no argument or .. for parent)
  pwd                     show the current directory
File operations:
  touch <file>            create an empty file
  mkdir <dir>             create a directory
  cp <src> <dst>          copy a file
  mv <src> <dst>          move or rename
  rm [-f] <path>          delete a file or an empty directory
Search:
  find [-r] [pattern]     names containing pattern
  glob <pattern>          ** glob below the current directory
  du [dir]                total size of a directory tree
Permissions:
  stat <path>             show permissions, owner, group and size
  chmod <mode> <path>     apply an octal mode such as 755
Session:
  stats                   operation counters and registry totals
  help                    this text and the registered tools
  exit                    leave the shell`

type shell struct {
	cmd *cobra.Command
	in  *bufio.Scanner
	out io.Writer
}

func (s *shell) loop() error {
	for {
		fmt.Fprintf(s.out, "%s> ", session.Explorer.CurrentDirectory())
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		fields := strings.Fields(s.in.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			return nil
		}
		if err := s.dispatch(fields[0], fields[1:]); err != nil && !Reported(err) {
			printer(s.cmd).Error("Error: " + err.Error())
		}
	}
}

func (s *shell) dispatch(name string, args []string) error {
	flags, args := splitFlags(args)

	switch name {
	case "help":
		fmt.Fprintln(s.out, shellHelp)
		fmt.Fprintln(s.out, "Registered tools:")
		return output.PrintTable(s.out, output.ToolsView(session.Registry.Tools()))
	case "stats":
		return printer(s.cmd).Print(output.StatsView{
			Session:  session.Stats(),
			Registry: session.Registry.Stats(),
		})
	case "pwd":
		return s.exec(providers.ToolPwd, nil, nil)
	case "ls":
		return s.exec(providers.ToolList, map[string]interface{}{"detailed": flags["l"]}, listingView)
	case "cd":
		return s.exec(providers.ToolCd, map[string]interface{}{"path": optional(args)}, nil)
	case "find":
		return s.exec(providers.ToolSearch, map[string]interface{}{
			"pattern":   optional(args),
			"recursive": flags["r"],
		}, matchesView)
	case "du":
		params := map[string]interface{}{}
		if len(args) > 0 {
			params["path"] = args[0]
		}
		return s.exec(providers.ToolUsage, params, usageView)
	}

	required := map[string]int{
		"touch": 1, "mkdir": 1, "rm": 1, "glob": 1, "stat": 1,
		"cp": 2, "mv": 2, "chmod": 2,
	}
	n, known := required[name]
	if !known {
		return fmt.Errorf("unknown command %q (type help)", name)
	}
	if len(args) != n {
		return fmt.Errorf("%s expects %d argument(s)", name, n)
	}

	switch name {
	case "touch":
		return s.exec(providers.ToolTouch, map[string]interface{}{"path": args[0]}, nil)
	case "mkdir":
		return s.exec(providers.ToolMkdir, map[string]interface{}{"path": args[0]}, nil)
	case "cp":
		return s.exec(providers.ToolCopy, pairParams(args), nil)
	case "mv":
		return s.exec(providers.ToolMove, pairParams(args), nil)
	case "glob":
		return s.exec(providers.ToolGlob, map[string]interface{}{"pattern": args[0]}, matchesView)
	case "stat":
		return s.exec(providers.ToolStat, map[string]interface{}{"path": args[0]}, permissionView)
	case "chmod":
		return s.exec(providers.ToolChmod, map[string]interface{}{"mode": args[0], "path": args[1]}, nil)
	default: // rm
		if !flags["f"] && !s.confirm(fmt.Sprintf("Are you sure you want to delete %s? (y/n): ", args[0])) {
			printer(s.cmd).Warning("Deletion cancelled.")
			return nil
		}
		return s.exec(providers.ToolDelete, map[string]interface{}{"path": args[0]}, nil)
	}
}

func (s *shell) exec(toolID string, params map[string]interface{}, view func(*types.Result) output.TableRenderer) error {
	session.Logger.Debug("shell command", zap.String("tool", toolID))
	return run(s.cmd, toolID, params, view)
}

// confirm reads the answer from the shell's own input stream.
func (s *shell) confirm(question string) bool {
	fmt.Fprint(s.out, question)
	if !s.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(s.in.Text()))
	return answer == "y" || answer == "yes"
}

// splitFlags separates single-letter flags such as -l or -rf from arguments.
func splitFlags(args []string) (map[string]bool, []string) {
	flags := map[string]bool{}
	rest := make([]string, 0, len(args))
	for _, a := range args {
		if len(a) > 1 && a[0] == '-' {
			for _, c := range a[1:] {
				flags[string(c)] = true
			}
			continue
		}
		rest = append(rest, a)
	}
	return flags, rest
}

func optional(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
