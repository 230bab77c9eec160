package providers

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/explorer/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/explorer/internal/logging"
	"github.com/GriffinCanCode/explorer/internal/providers/filesystem"
	"github.com/GriffinCanCode/explorer/internal/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Tool IDs served by the explorer provider.
const (
	ToolList   = "explorer.list"
	ToolCd     = "explorer.cd"
	ToolPwd    = "explorer.pwd"
	ToolTouch  = "explorer.touch"
	ToolMkdir  = "explorer.mkdir"
	ToolCopy   = "explorer.copy"
	ToolMove   = "explorer.move"
	ToolDelete = "explorer.delete"
	ToolSearch = "explorer.search"
	ToolGlob   = "explorer.glob"
	ToolUsage  = "explorer.du"
	ToolStat   = "explorer.stat"
	ToolChmod  = "explorer.chmod"
)

// ExplorerOptions configures an Explorer.
type ExplorerOptions struct {
	// StartDir is the initial current directory; empty means the process
	// working directory.
	StartDir      string
	DetectContent bool
	Logger        *logging.Logger
	Metrics       *monitoring.Metrics
}

// Explorer provides interactive file browsing over the local filesystem.
// It owns the current directory; every path argument is resolved against it.
type Explorer struct {
	resolver *filesystem.Resolver
	inspect  filesystem.InspectOptions
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// NewExplorer creates an explorer provider
func NewExplorer(opts ExplorerOptions) (*Explorer, error) {
	resolver := filesystem.NewResolverFromWorkingDir()
	if opts.StartDir != "" {
		r, err := filesystem.NewResolver(opts.StartDir)
		if err != nil {
			return nil, fmt.Errorf("invalid start directory: %w", err)
		}
		resolver = r
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = monitoring.NewNopMetrics()
	}

	return &Explorer{
		resolver: resolver,
		inspect:  filesystem.InspectOptions{DetectContent: opts.DetectContent},
		logger:   logger,
		metrics:  metrics,
	}, nil
}

// Definition returns service metadata
func (e *Explorer) Definition() types.Service {
	return types.Service{
		ID:          "explorer",
		Name:        "File Explorer",
		Description: "Browse, search and manage files relative to a current directory",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"list",
			"navigate",
			"create",
			"copy",
			"move",
			"delete",
			"search",
			"permissions",
		},
		Tools: []types.Tool{
			{
				ID:          ToolList,
				Name:        "List Directory",
				Description: "List the current directory, directories first, sorted by name",
				Parameters: []types.Parameter{
					{Name: "detailed", Type: "boolean", Description: "Include permissions and sizes", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          ToolCd,
				Name:        "Change Directory",
				Description: "Change the current directory (.. or empty for parent)",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Absolute or relative directory", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          ToolPwd,
				Name:        "Current Directory",
				Description: "Show the current directory",
				Returns:     "string",
			},
			{
				ID:          ToolTouch,
				Name:        "Create File",
				Description: "Create a new empty file",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          ToolMkdir,
				Name:        "Create Directory",
				Description: "Create a single directory level",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Directory path", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          ToolCopy,
				Name:        "Copy File",
				Description: "Copy file contents, creating or truncating the destination",
				Parameters: []types.Parameter{
					{Name: "source", Type: "string", Description: "Source path", Required: true},
					{Name: "destination", Type: "string", Description: "Destination path", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          ToolMove,
				Name:        "Move/Rename",
				Description: "Rename a file or directory within one volume",
				Parameters: []types.Parameter{
					{Name: "source", Type: "string", Description: "Source path", Required: true},
					{Name: "destination", Type: "string", Description: "Destination path", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          ToolDelete,
				Name:        "Delete",
				Description: "Delete a file or an empty directory",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File or directory path", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          ToolSearch,
				Name:        "Search",
				Description: "Find entries whose name contains a substring",
				Parameters: []types.Parameter{
					{Name: "pattern", Type: "string", Description: "Substring to match (empty matches all)", Required: false},
					{Name: "recursive", Type: "boolean", Description: "Descend into subdirectories", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          ToolGlob,
				Name:        "Glob",
				Description: "Match paths below the current directory with ** patterns",
				Parameters: []types.Parameter{
					{Name: "pattern", Type: "string", Description: "Glob pattern (e.g., '**/*.go')", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          ToolUsage,
				Name:        "Directory Usage",
				Description: "Total size of a directory tree",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Directory path (default current)", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          ToolStat,
				Name:        "Show Permissions",
				Description: "Show permissions, owner, group and size",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File or directory path", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          ToolChmod,
				Name:        "Change Permissions",
				Description: "Apply a 3-digit octal mode",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File or directory path", Required: true},
					{Name: "mode", Type: "string", Description: "Octal mode (e.g., 755)", Required: true},
				},
				Returns: "boolean",
			},
		},
	}
}

// Execute runs an explorer operation
func (e *Explorer) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return failure(filesystem.KindIOError, fmt.Sprintf("cancelled: %v", err))
	}

	switch toolID {
	case ToolList:
		return e.List(ctx, boolParam(params, "detailed"))
	case ToolCd:
		return e.ChangeDirectory(ctx, stringParam(params, "path"))
	case ToolPwd:
		return e.WorkingDirectory(ctx)
	case ToolTouch:
		return e.CreateFile(ctx, stringParam(params, "path"))
	case ToolMkdir:
		return e.CreateDirectory(ctx, stringParam(params, "path"))
	case ToolCopy:
		return e.Copy(ctx, stringParam(params, "source"), stringParam(params, "destination"))
	case ToolMove:
		return e.Move(ctx, stringParam(params, "source"), stringParam(params, "destination"))
	case ToolDelete:
		return e.Delete(ctx, stringParam(params, "path"))
	case ToolSearch:
		return e.Search(ctx, stringParam(params, "pattern"), boolParam(params, "recursive"))
	case ToolGlob:
		return e.Glob(ctx, stringParam(params, "pattern"))
	case ToolUsage:
		return e.Usage(ctx, stringParam(params, "path"))
	case ToolStat:
		return e.ShowPermissions(ctx, stringParam(params, "path"))
	case ToolChmod:
		return e.ChangePermissions(ctx, stringParam(params, "path"), stringParam(params, "mode"))
	default:
		return failure(filesystem.KindInvalidArgument, fmt.Sprintf("unknown tool: %s", toolID))
	}
}

// CurrentDirectory returns the directory relative paths resolve against.
func (e *Explorer) CurrentDirectory() string {
	return e.resolver.Current()
}

// List lists the current directory
func (e *Explorer) List(ctx context.Context, detailed bool) (*types.Result, error) {
	op := e.begin(ToolList)
	dir := e.resolver.Current()

	listing, err := filesystem.List(dir, detailed)
	if err != nil {
		return op.fail(err)
	}

	e.metrics.AddEntriesListed(listing.Total())
	return op.ok(
		fmt.Sprintf("Total: %d directories, %d files", len(listing.Directories), len(listing.Files)),
		map[string]interface{}{
			"path":        listing.Path,
			"detailed":    detailed,
			"directories": listing.Directories,
			"files":       listing.Files,
			"count":       listing.Total(),
		},
	)
}

// ChangeDirectory changes the current directory
func (e *Explorer) ChangeDirectory(ctx context.Context, path string) (*types.Result, error) {
	op := e.begin(ToolCd)

	dir, err := e.resolver.ChangeDirectory(path)
	if err != nil {
		return op.fail(err)
	}
	return op.ok(fmt.Sprintf("Changed directory to: %s", dir), map[string]interface{}{"path": dir})
}

// WorkingDirectory reports the current directory
func (e *Explorer) WorkingDirectory(ctx context.Context) (*types.Result, error) {
	op := e.begin(ToolPwd)
	dir := e.resolver.Current()
	return op.ok(dir, map[string]interface{}{"path": dir})
}

// CreateFile creates an empty file
func (e *Explorer) CreateFile(ctx context.Context, name string) (*types.Result, error) {
	op := e.begin(ToolTouch)

	path, err := e.resolver.ResolveName(name)
	if err != nil {
		return op.fail(err)
	}
	if err := filesystem.Create(path); err != nil {
		return op.fail(err)
	}
	return op.ok(fmt.Sprintf("File created successfully: %s", name),
		map[string]interface{}{"created": true, "path": path})
}

// CreateDirectory creates a directory
func (e *Explorer) CreateDirectory(ctx context.Context, name string) (*types.Result, error) {
	op := e.begin(ToolMkdir)

	path, err := e.resolver.ResolveName(name)
	if err != nil {
		return op.fail(err)
	}
	if err := filesystem.CreateDirectory(path); err != nil {
		return op.fail(err)
	}
	return op.ok(fmt.Sprintf("Directory created successfully: %s", name),
		map[string]interface{}{"created": true, "path": path})
}

// Copy copies a file
func (e *Explorer) Copy(ctx context.Context, source, destination string) (*types.Result, error) {
	op := e.begin(ToolCopy)

	src, dst, err := e.resolvePair(source, destination)
	if err != nil {
		return op.fail(err)
	}
	n, err := filesystem.Copy(src, dst)
	if err != nil {
		return op.fail(err)
	}
	return op.ok(fmt.Sprintf("File copied successfully: %s -> %s", source, destination),
		map[string]interface{}{"source": src, "destination": dst, "bytes": n})
}

// Move moves or renames a file or directory
func (e *Explorer) Move(ctx context.Context, source, destination string) (*types.Result, error) {
	op := e.begin(ToolMove)

	src, dst, err := e.resolvePair(source, destination)
	if err != nil {
		return op.fail(err)
	}
	if err := filesystem.Move(src, dst); err != nil {
		return op.fail(err)
	}
	return op.ok(fmt.Sprintf("File moved successfully: %s -> %s", source, destination),
		map[string]interface{}{"source": src, "destination": dst})
}

// Delete deletes a file or an empty directory
func (e *Explorer) Delete(ctx context.Context, target string) (*types.Result, error) {
	op := e.begin(ToolDelete)

	path, err := e.resolver.ResolveName(target)
	if err != nil {
		return op.fail(err)
	}
	kind, err := filesystem.Delete(path)
	if err != nil {
		return op.fail(err)
	}

	msg := fmt.Sprintf("File deleted successfully: %s", target)
	if kind == filesystem.KindDirectory {
		msg = fmt.Sprintf("Directory deleted successfully: %s", target)
	}
	return op.ok(msg, map[string]interface{}{"deleted": true, "path": path, "kind": kind})
}

// Search finds entries below the current directory whose name contains pattern
func (e *Explorer) Search(ctx context.Context, pattern string, recursive bool) (*types.Result, error) {
	op := e.begin(ToolSearch)
	root := e.resolver.Current()

	matches, err := filesystem.Search(root, pattern, recursive)
	if err != nil {
		return op.fail(err)
	}

	e.metrics.AddSearchMatches(len(matches))
	msg := fmt.Sprintf("Found %d match(es)", len(matches))
	if len(matches) == 0 {
		msg = fmt.Sprintf("No files found matching: %s", pattern)
	}
	return op.ok(msg, map[string]interface{}{
		"root":      root,
		"pattern":   pattern,
		"recursive": recursive,
		"matches":   matches,
		"count":     len(matches),
	})
}

// Glob matches a ** pattern below the current directory
func (e *Explorer) Glob(ctx context.Context, pattern string) (*types.Result, error) {
	op := e.begin(ToolGlob)
	root := e.resolver.Current()

	matches, err := filesystem.Glob(root, pattern)
	if err != nil {
		return op.fail(err)
	}

	e.metrics.AddSearchMatches(len(matches))
	return op.ok(fmt.Sprintf("Found %d match(es)", len(matches)), map[string]interface{}{
		"root":    root,
		"pattern": pattern,
		"matches": matches,
		"count":   len(matches),
	})
}

// Usage totals the size of a directory tree; an empty target means the
// current directory.
func (e *Explorer) Usage(ctx context.Context, target string) (*types.Result, error) {
	op := e.begin(ToolUsage)

	dir := e.resolver.Current()
	if target != "" {
		dir = e.resolver.Resolve(target)
	}
	usage, err := filesystem.Usage(ctx, dir)
	if err != nil {
		return op.fail(err)
	}
	return op.ok(fmt.Sprintf("%s in %d files", usage.Size, usage.Files),
		map[string]interface{}{"usage": usage})
}

// ShowPermissions reports permissions, ownership and size of target
func (e *Explorer) ShowPermissions(ctx context.Context, target string) (*types.Result, error) {
	op := e.begin(ToolStat)

	path, err := e.resolver.ResolveName(target)
	if err != nil {
		return op.fail(err)
	}
	info, err := filesystem.Inspect(path, e.inspect)
	if err != nil {
		return op.fail(err)
	}
	return op.ok(fmt.Sprintf("%s %s", info.Symbolic, target), map[string]interface{}{"info": info})
}

// ChangePermissions applies a 3-digit octal mode to target. The mode is
// validated before the filesystem is touched.
func (e *Explorer) ChangePermissions(ctx context.Context, target, octal string) (*types.Result, error) {
	op := e.begin(ToolChmod)

	mode, err := filesystem.ParseOctal(octal)
	if err != nil {
		return op.fail(err)
	}
	path, err := e.resolver.ResolveName(target)
	if err != nil {
		return op.fail(err)
	}
	if err := filesystem.SetPermissions(path, mode); err != nil {
		return op.fail(err)
	}
	return op.ok(fmt.Sprintf("Permissions changed successfully for: %s", target),
		map[string]interface{}{"path": path, "octal": mode.Octal(), "permissions": mode.Symbolic()})
}

func (e *Explorer) resolvePair(source, destination string) (string, string, error) {
	src, err := e.resolver.ResolveName(source)
	if err != nil {
		return "", "", err
	}
	dst, err := e.resolver.ResolveName(destination)
	if err != nil {
		return "", "", err
	}
	return src, dst, nil
}

// operation tracks one provider call for logging and metrics.
type operation struct {
	log   *logging.Logger
	timer *monitoring.Timer
}

func (e *Explorer) begin(toolID string) *operation {
	return &operation{
		log:   e.logger.Tool(toolID, uuid.NewString()),
		timer: monitoring.NewTimer(e.metrics, toolID),
	}
}

func (o *operation) ok(message string, data map[string]interface{}) (*types.Result, error) {
	d := o.timer.Stop("")
	o.log.Debug("operation completed", zap.Duration("duration", d))
	return success(message, data)
}

func (o *operation) fail(err error) (*types.Result, error) {
	kind := filesystem.KindOf(err)
	d := o.timer.Stop(string(kind))
	o.log.Log(failureLevel(kind), "operation failed",
		zap.String("code", string(kind)),
		zap.Duration("duration", d),
		zap.Error(err),
	)
	return failure(kind, err.Error())
}

// failureLevel logs IO errors at warn and every other failure at info.
func failureLevel(kind filesystem.ErrorKind) zapcore.Level {
	if kind == filesystem.KindIOError {
		return zapcore.WarnLevel
	}
	return zapcore.InfoLevel
}
