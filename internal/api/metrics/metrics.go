// Package metrics defines and registers all custom Prometheus metrics for
// the reels API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto; the
// router additionally mounts the echoprometheus request middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reels"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "conflict", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "rejected", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionResolutionsTotal counts session token resolutions performed by the
// middleware.
// Label:
//   - result: "authenticated" or "anonymous"
var SessionResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resolutions_total",
		Help:      "Total number of session resolutions, by outcome.",
	},
	[]string{"result"},
)

// VideosCreatedTotal counts videos published to the catalog.
var VideosCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "videos_created_total",
		Help:      "Total number of videos published to the catalog.",
	},
)

// UploadCredentialsIssuedTotal counts presigned upload hand-offs.
var UploadCredentialsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upload_credentials_issued_total",
		Help:      "Total number of upload credential sets issued to clients.",
	},
)

// RegisterDuration measures end-to-end registration time. Password hashing
// dominates it, so drift here usually means the bcrypt cost no longer fits
// the hardware.
var RegisterDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "register_duration_seconds",
		Help:      "Duration of registration requests including password hashing.",
		Buckets:   prometheus.DefBuckets,
	},
)
