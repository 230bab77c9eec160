// Package app assembles an explorer session from configuration.
//
// It builds the logger, the metrics registry, the explorer provider and the
// service registry the provider is dispatched through.
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	a, err := app.New(cfg)
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//	result, err := a.Execute(ctx, providers.ToolList, nil)
package app
