package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/GriffinCanCode/explorer/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/explorer/internal/providers/filesystem"
	"github.com/GriffinCanCode/explorer/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleListing() *filesystem.Listing {
	return &filesystem.Listing{
		Path: "/srv",
		Directories: []filesystem.Entry{
			{Name: "docs", Kind: filesystem.KindDirectory, Permissions: "drwxr-xr-x"},
		},
		Files: []filesystem.Entry{
			{Name: "a.txt", Kind: filesystem.KindFile, Permissions: "-rw-r--r--", Size: 2048, HumanSize: "2.00 KB"},
			{Name: "b.txt", Kind: filesystem.KindFile, Permissions: "-rw-------"},
		},
	}
}

func TestListingView(t *testing.T) {
	simple := ListingView{Listing: sampleListing()}
	assert.Equal(t, []string{"TYPE", "NAME"}, simple.Headers())
	assert.Equal(t, [][]string{
		{"[DIR]", "docs"},
		{"[FILE]", "a.txt"},
		{"[FILE]", "b.txt"},
	}, simple.Rows())

	detailed := ListingView{Listing: sampleListing(), Detailed: true}
	rows := detailed.Rows()
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], len(detailed.Headers()))
	assert.Equal(t, "drwxr-xr-x", rows[0][2])
	assert.Equal(t, "-", rows[0][3])
	assert.Equal(t, "2.00 KB", rows[1][3])
	assert.Equal(t, "-", rows[1][6])

	assert.Empty(t, ListingView{}.Rows())
}

func TestListingViewTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, ListingView{Listing: sampleListing()}))

	out := buf.String()
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "[DIR]")
	assert.Contains(t, out, "docs")
	assert.Contains(t, out, "b.txt")
}

func TestPathList(t *testing.T) {
	l := PathList{"/a", "/b"}
	assert.Equal(t, []string{"PATH"}, l.Headers())
	assert.Equal(t, [][]string{{"/a"}, {"/b"}}, l.Rows())
}

func TestPermissionView(t *testing.T) {
	v := PermissionView{Info: &filesystem.PermissionInfo{
		Path:     "/srv/run.sh",
		Symbolic: "-rwxr-xr-x",
		Octal:    "755",
		Owner:    "root",
		Group:    "root",
		Size:     "10.00 B",
		Modified: time.Date(2024, 1, 2, 3, 4, 0, 0, time.Local),
		MIMEType: "text/x-shellscript",
	}}

	rows := v.Rows()
	assert.Contains(t, rows, []string{"Octal", "755"})
	assert.Contains(t, rows, []string{"Modified", "2024-01-02 03:04"})
	assert.Contains(t, rows, []string{"Type", "text/x-shellscript"})
	assert.NotContains(t, rows, []string{"Charset", ""})
}

func TestUsageView(t *testing.T) {
	v := UsageView{Usage: &filesystem.DirectoryUsage{Path: "/srv", Size: "1.00 KB", Files: 3, Directories: 2}}
	assert.Equal(t, [][]string{{"/srv", "1.00 KB", "3", "2"}}, v.Rows())
}

func TestStatsView(t *testing.T) {
	v := StatsView{
		Session:  monitoring.Snapshot{Operations: 4, Failures: 1, TotalSeconds: 0.5},
		Registry: service.Stats{Services: 1, Tools: 14},
	}
	rows := v.Rows()
	assert.Equal(t, []string{"operations", "4"}, rows[0])
	assert.Equal(t, []string{"failures", "1"}, rows[1])
	assert.Equal(t, []string{"time spent", "500ms"}, rows[4])
	assert.Equal(t, []string{"services", "1"}, rows[5])
	assert.Equal(t, []string{"tools", "14"}, rows[6])
}

func TestToolsView(t *testing.T) {
	v := ToolsView{
		{ID: "explorer.cd", Description: "Change directory"},
		{ID: "explorer.list", Description: "List directory"},
	}
	assert.Equal(t, []string{"TOOL", "DESCRIPTION"}, v.Headers())
	assert.Equal(t, []string{"explorer.list", "List directory"}, v.Rows()[1])
}
