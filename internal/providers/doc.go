// Package providers implements the explorer's service provider.
//
// The Explorer provider exposes the filesystem engine through a
// tool-based interface: callers pass raw string and boolean parameters and
// receive a types.Result carrying a success flag, a human-readable message,
// an error code and structured data. Callers never resolve paths or parse
// permission strings themselves.
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters
//
// Example Usage:
//
//	exp, err := providers.NewExplorer(providers.ExplorerOptions{StartDir: "/tmp"})
//	result, err := exp.Execute(ctx, providers.ToolList, map[string]interface{}{"detailed": true})
package providers
