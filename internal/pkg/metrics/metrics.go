// Package metrics defines and registers all custom Prometheus metrics for
// the super-admin console. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation and exposed by the console server on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "superadmin_console"

// ── Backend client metrics ───────────────────────────────────────────────────

// BackendRequestsTotal counts calls made to the bakery backend.
// Labels:
//   - operation: logical call name (e.g. "list_tenants", "batch_import")
//   - outcome: "ok", "client_error", "server_error", or "transport_error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests sent to the bakery backend.",
	},
	[]string{"operation", "outcome"},
)

// BackendRequestDuration measures backend round-trip latency.
// Label:
//   - operation: logical call name
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of requests sent to the bakery backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// SessionTransitionsTotal counts gate transitions.
// Label:
//   - reason: "login", "logout", "unauthorized", "expired", "rejected_role"
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session state changes, by reason.",
	},
	[]string{"reason"},
)

// ── Store metrics ────────────────────────────────────────────────────────────

// StaleResponsesTotal counts list responses discarded because a newer
// request had already been issued.
// Label:
//   - resource: "tenants" or "users"
var StaleResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_list_responses_total",
		Help:      "Total number of list responses dropped as out of date.",
	},
	[]string{"resource"},
)

// ── Batch import metrics ─────────────────────────────────────────────────────

// ImportTenantRunsTotal counts per-tenant bulk import calls.
// Label:
//   - result: "ok" or "failed"
var ImportTenantRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_tenant_runs_total",
		Help:      "Total number of per-tenant batch import calls, by result.",
	},
	[]string{"result"},
)

// ImportRecipesTotal counts recipes by import result.
// Label:
//   - result: "imported" or "skipped"
var ImportRecipesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_recipes_total",
		Help:      "Total number of recipes imported or skipped across tenants.",
	},
	[]string{"result"},
)
