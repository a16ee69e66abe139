// Package metrics defines and registers all custom Prometheus metrics for
// the billing admin API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "billing_admin"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success", "invalid_credentials", or "missing_fields"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// SessionsRevokedTotal counts sessions added to the revocation list.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of sessions revoked via logout.",
	},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// ResourceMutationsTotal counts whole-document rewrites of a resource.
// Labels:
//   - resource: the resource name (e.g. "products")
//   - op: "create", "update", "delete", "replace", or "import"
var ResourceMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_mutations_total",
		Help:      "Total number of resource document mutations, by resource and operation.",
	},
	[]string{"resource", "op"},
)

// ChangelogFailuresTotal counts best-effort audit appends that failed. The
// triggering mutation still succeeds; this counter is the only trace.
// Label:
//   - resource: the resource whose log could not be written
var ChangelogFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "changelog_failures_total",
		Help:      "Total number of swallowed change-log append failures.",
	},
	[]string{"resource"},
)
