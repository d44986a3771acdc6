// Package metrics defines and registers the custom Prometheus metrics
// for the catalog API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics use promauto and register against the default registry at
// package init; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts accounts created through /auth/register.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered accounts.",
	},
)

// TokenRejectionsTotal counts bearer tokens rejected by the auth
// middleware (bad signature, malformed payload, or expired).
var TokenRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of bearer tokens rejected during validation.",
	},
)

// FavoriteOpsTotal counts favorites mutations.
// Labels:
//   - op: "add" or "remove"
//   - result: "ok" or "error"
var FavoriteOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorite_ops_total",
		Help:      "Total number of favorites mutations, by operation and result.",
	},
	[]string{"op", "result"},
)
