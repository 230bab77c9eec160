package output

import (
	"strconv"
	"time"

	"github.com/GriffinCanCode/explorer/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/explorer/internal/providers/filesystem"
	"github.com/GriffinCanCode/explorer/internal/service"
	"github.com/GriffinCanCode/explorer/internal/types"
)

const timeLayout = "2006-01-02 15:04"

// ListingView renders a directory listing, directories first.
type ListingView struct {
	Listing  *filesystem.Listing
	Detailed bool
}

// Headers implements TableRenderer.
func (v ListingView) Headers() []string {
	if v.Detailed {
		return []string{"TYPE", "NAME", "PERMISSIONS", "SIZE", "OWNER", "GROUP", "MODIFIED"}
	}
	return []string{"TYPE", "NAME"}
}

// Rows implements TableRenderer.
func (v ListingView) Rows() [][]string {
	if v.Listing == nil {
		return nil
	}

	rows := make([][]string, 0, v.Listing.Total())
	for _, e := range v.Listing.Directories {
		rows = append(rows, v.row("[DIR]", e))
	}
	for _, e := range v.Listing.Files {
		rows = append(rows, v.row("[FILE]", e))
	}
	return rows
}

func (v ListingView) row(tag string, e filesystem.Entry) []string {
	if !v.Detailed {
		return []string{tag, e.Name}
	}
	modified := "-"
	if e.Modified != nil {
		modified = formatTime(*e.Modified)
	}
	return []string{tag, e.Name, e.Permissions, emptyOr(e.HumanSize, "-"), e.Owner(), e.Group(), modified}
}

// PathList renders search and glob matches, one per row.
type PathList []string

// Headers implements TableRenderer.
func (l PathList) Headers() []string {
	return []string{"PATH"}
}

// Rows implements TableRenderer.
func (l PathList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, p := range l {
		rows = append(rows, []string{p})
	}
	return rows
}

// PermissionView renders the result of a stat as key/value pairs.
type PermissionView struct {
	Info *filesystem.PermissionInfo
}

// Headers implements TableRenderer.
func (v PermissionView) Headers() []string {
	return []string{"FIELD", "VALUE"}
}

// Rows implements TableRenderer.
func (v PermissionView) Rows() [][]string {
	if v.Info == nil {
		return nil
	}
	info := v.Info
	rows := [][]string{
		{"File", info.Path},
		{"Permissions", info.Symbolic},
		{"Octal", info.Octal},
		{"Owner", info.Owner},
		{"Group", info.Group},
		{"Size", info.Size},
		{"Modified", formatTime(info.Modified)},
	}
	if info.MIMEType != "" {
		rows = append(rows, []string{"Type", info.MIMEType})
	}
	if info.Charset != "" {
		rows = append(rows, []string{"Charset", info.Charset})
	}
	return rows
}

// UsageView renders subtree totals.
type UsageView struct {
	Usage *filesystem.DirectoryUsage
}

// Headers implements TableRenderer.
func (v UsageView) Headers() []string {
	return []string{"PATH", "SIZE", "FILES", "DIRECTORIES"}
}

// Rows implements TableRenderer.
func (v UsageView) Rows() [][]string {
	if v.Usage == nil {
		return nil
	}
	u := v.Usage
	return [][]string{{
		u.Path,
		u.Size,
		strconv.FormatInt(u.Files, 10),
		strconv.FormatInt(u.Directories, 10),
	}}
}

// StatsView renders the session's operation counters and registry totals.
type StatsView struct {
	Session  monitoring.Snapshot `json:"session" yaml:"session" toml:"session"`
	Registry service.Stats       `json:"registry" yaml:"registry" toml:"registry"`
}

// Headers implements TableRenderer.
func (v StatsView) Headers() []string {
	return []string{"METRIC", "VALUE"}
}

// Rows implements TableRenderer.
func (v StatsView) Rows() [][]string {
	return [][]string{
		{"operations", strconv.FormatInt(v.Session.Operations, 10)},
		{"failures", strconv.FormatInt(v.Session.Failures, 10)},
		{"entries listed", strconv.FormatInt(v.Session.EntriesListed, 10)},
		{"search matches", strconv.FormatInt(v.Session.SearchMatches, 10)},
		{"time spent", (time.Duration(v.Session.TotalSeconds * float64(time.Second))).String()},
		{"services", strconv.Itoa(v.Registry.Services)},
		{"tools", strconv.Itoa(v.Registry.Tools)},
	}
}

// ToolsView lists registered tools.
type ToolsView []types.Tool

// Headers implements TableRenderer.
func (v ToolsView) Headers() []string {
	return []string{"TOOL", "DESCRIPTION"}
}

// Rows implements TableRenderer.
func (v ToolsView) Rows() [][]string {
	rows := make([][]string, 0, len(v))
	for _, t := range v {
		rows = append(rows, []string{t.ID, t.Description})
	}
	return rows
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

// emptyOr returns value if non-empty, otherwise fallback.
func emptyOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
