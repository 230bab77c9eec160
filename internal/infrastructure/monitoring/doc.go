/*
Package monitoring provides operation metrics for the explorer.

# Overview

Every provider operation is timed and counted with Prometheus collectors
registered on a caller-supplied registry. A small in-process snapshot mirrors
the counters so the interactive shell can print them without an exporter.

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg, "explorer")

	timer := monitoring.NewTimer(metrics, "explorer.list")
	// ... perform operation ...
	timer.Stop("")

# Metrics

  - explorer_operations_total{tool,status}
  - explorer_operation_duration_seconds{tool}
  - explorer_operation_errors_total{tool,code}
  - explorer_entries_listed_total
  - explorer_search_matches_total
*/
package monitoring
