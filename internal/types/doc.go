// Package types provides shared data structures for the explorer.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool definition
//   - Result: Standard operation result
//
// Example Usage:
//
//	res, err := registry.Execute(ctx, "explorer.list", map[string]interface{}{"detailed": true})
//	if err == nil && !res.Success {
//	    fmt.Println(res.ErrorMessage())
//	}
package types
