// Package metrics defines and registers all custom Prometheus metrics for the
// portal API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry at package
// initialisation via promauto and exposed on /metrics alongside the HTTP
// request metrics collected by echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure" (bad credentials) or "locked" (throttled)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts identities created through registration.
// Label:
//   - role: the resolved role ("USER", "ADMIN", "SUPER_ADMIN")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful registrations, by role.",
	},
	[]string{"role"},
)

// TokenRejectionsTotal counts requests refused at the authentication gate.
// Label:
//   - reason: "missing", "malformed", "signature", "expired" or "unknown_subject"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of bearer tokens rejected, by reason.",
	},
	[]string{"reason"},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthorizationDenialsTotal counts requests refused by the access policy.
// Labels:
//   - operation: the guarded operation (e.g. "company:delete")
//   - role: the caller's role
var AuthorizationDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denials_total",
		Help:      "Total number of requests denied by the access policy.",
	},
	[]string{"operation", "role"},
)

// ── User administration metrics ───────────────────────────────────────────────

// UserAdminActionsTotal counts privileged user administration outcomes.
// Labels:
//   - action: "delete" or "update_role"
//   - result: "success", "self_refused" or "error"
var UserAdminActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_admin_actions_total",
		Help:      "Total number of user administration actions, by action and result.",
	},
	[]string{"action", "result"},
)
