// Package metrics defines and registers all custom Prometheus metrics for the
// ToyShare API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "toyshare"

// ── Listing metrics ───────────────────────────────────────────────────────────

// ListingsCreatedTotal counts newly created listings.
// Label:
//   - category: the resolved category display name
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of listings created, by category.",
	},
	[]string{"category"},
)

// ListingsDeletedTotal counts listing deletions.
var ListingsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_deleted_total",
		Help:      "Total number of listings deleted.",
	},
)

// BrowseQueriesTotal counts browse queries.
// Label:
//   - filtered: "yes" when at least one predicate was supplied, else "no"
var BrowseQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "browse_queries_total",
		Help:      "Total number of browse queries, by whether filters were applied.",
	},
	[]string{"filtered"},
)

// ── Location metrics ──────────────────────────────────────────────────────────

// SuggestionQueriesTotal counts suggestion-matcher queries.
// Label:
//   - result: "open" (dropdown shown) or "empty"
var SuggestionQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suggestion_queries_total",
		Help:      "Total number of location suggestion queries, by dropdown outcome.",
	},
	[]string{"result"},
)

// GeolocationRequestsTotal counts device-location requests.
// Label:
//   - result: "ok", "unsupported", "denied", "unavailable", "timeout", "unknown"
var GeolocationRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geolocation_requests_total",
		Help:      "Total number of geolocation requests, by outcome.",
	},
	[]string{"result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionEventsTotal counts session lifecycle events.
// Labels:
//   - event: "login", "signup", "logout"
//   - result: "ok" or "error"
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of session operations, by event and result.",
	},
	[]string{"event", "result"},
)
