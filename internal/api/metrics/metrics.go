// Package metrics defines and registers all custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics are registered with the default Prometheus registry at package
// load via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Listing metrics ───────────────────────────────────────────────────────────

// ListingsCreatedTotal counts newly created listings.
// Label:
//   - verification_tier: "unverified", "verified", or "premium_verified"
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of listings created, by verification tier.",
	},
	[]string{"verification_tier"},
)

// ── Trust metrics ─────────────────────────────────────────────────────────────

// TrustChecksTotal counts authorization decisions made by the trust engine
// ahead of listing mutations.
// Label:
//   - decision: "allowed", "suspended", or "banned"
var TrustChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trust_checks_total",
		Help:      "Total number of trust engine authorization checks, by decision.",
	},
	[]string{"decision"},
)

// PenaltiesIssuedTotal counts penalties recorded against users.
// Label:
//   - type: "warning", "suspension", or "ban"
var PenaltiesIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "penalties_issued_total",
		Help:      "Total number of penalties issued, by type.",
	},
	[]string{"type"},
)

// ── Dispute metrics ───────────────────────────────────────────────────────────

// DisputesResolvedTotal counts disputes closed with a terminal status.
// Label:
//   - outcome: "resolved" or "dismissed"
var DisputesResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "disputes_resolved_total",
		Help:      "Total number of disputes closed, by outcome.",
	},
	[]string{"outcome"},
)

// ── Review metrics ────────────────────────────────────────────────────────────

// ReviewsCreatedTotal counts reviews accepted by the uniqueness check.
var ReviewsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of listing reviews created.",
	},
)
