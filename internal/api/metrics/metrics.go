// Package metrics defines and registers all custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the account role assigned at signup
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts requests rejected by the auth gate.
var AuthFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected with 401 by the auth gate.",
	},
)

// ── Chat metrics ──────────────────────────────────────────────────────────────

// WSConnectionsActive tracks currently open chat sockets.
var WSConnectionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ws_connections_active",
		Help:      "Number of websocket chat connections currently open.",
	},
)

// ChatMessagesTotal counts frames fanned out to conversation members.
var ChatMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_messages_total",
		Help:      "Total number of chat frames broadcast to conversations.",
	},
)

// ChatSendFailuresTotal counts subscribers evicted because their send buffer
// was full.
var ChatSendFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_send_failures_total",
		Help:      "Total number of chat subscribers dropped for slow consumption.",
	},
)

// ── Marketplace metrics ───────────────────────────────────────────────────────

// ApplicationDecisionsTotal counts accept/reject decisions on applications.
// Label:
//   - status: "accepted" or "rejected"
var ApplicationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_decisions_total",
		Help:      "Total number of application decisions, by resulting status.",
	},
	[]string{"status"},
)

// ScamChecksTotal counts messages run through the scam classifier.
// Label:
//   - verdict: "scam" or "clean"
var ScamChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scam_checks_total",
		Help:      "Total number of scam-classifier checks, by verdict.",
	},
	[]string{"verdict"},
)
