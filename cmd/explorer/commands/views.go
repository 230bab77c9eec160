package commands

import (
	"github.com/GriffinCanCode/explorer/internal/cli/output"
	"github.com/GriffinCanCode/explorer/internal/providers/filesystem"
	"github.com/GriffinCanCode/explorer/internal/types"
)

func listingView(r *types.Result) output.TableRenderer {
	dirs, _ := r.Data["directories"].([]filesystem.Entry)
	files, _ := r.Data["files"].([]filesystem.Entry)
	path, _ := r.Data["path"].(string)
	detailed, _ := r.Data["detailed"].(bool)

	return output.ListingView{
		Listing:  &filesystem.Listing{Path: path, Directories: dirs, Files: files},
		Detailed: detailed,
	}
}

func matchesView(r *types.Result) output.TableRenderer {
	matches, _ := r.Data["matches"].([]string)
	return output.PathList(matches)
}

func permissionView(r *types.Result) output.TableRenderer {
	info, _ := r.Data["info"].(*filesystem.PermissionInfo)
	return output.PermissionView{Info: info}
}

func usageView(r *types.Result) output.TableRenderer {
	usage, _ := r.Data["usage"].(*filesystem.DirectoryUsage)
	return output.UsageView{Usage: usage}
}
