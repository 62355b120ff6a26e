// Package metrics defines and registers all custom Prometheus metrics for the
// blog platform API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// PostsCreatedTotal counts successfully created posts.
// Label:
//   - category: the category the post was filed under (e.g. "Technology")
var PostsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of blog posts created, by category.",
	},
	[]string{"category"},
)

// PostsDeletedTotal counts physically removed posts.
// Label:
//   - by: "owner" or "admin", whichever side of the policy allowed it
var PostsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_deleted_total",
		Help:      "Total number of blog posts deleted, by deleting role.",
	},
	[]string{"by"},
)

// AuthFailuresTotal counts rejected requests at the authentication gate.
// Label:
//   - reason: "no_token", "bad_scheme", "malformed", "expired", "user_gone"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the authentication gate, by reason.",
	},
	[]string{"reason"},
)

// LoginThrottledTotal counts logins rejected by the attempt limiter.
var LoginThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_throttled_total",
		Help:      "Total number of login requests rejected by the failed-attempt limiter.",
	},
)
