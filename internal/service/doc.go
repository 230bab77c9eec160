// Package service provides the service registry used to dispatch tool calls.
//
// The registry maintains a catalog of providers and routes a tool ID of the
// form "service.tool" to the provider registered under "service".
//
// Features:
//   - Thread-safe service registration
//   - Deterministic service and tool listings
//   - Tool execution with raw parameters
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(explorer)
//	result, err := registry.Execute(ctx, "explorer.list", map[string]interface{}{"detailed": true})
package service
