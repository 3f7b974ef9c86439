// Package metrics defines and registers all custom Prometheus metrics for the
// Research Nexus service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto and exposed on /metrics by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nexus"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionOperationsTotal counts session mutations by outcome.
// Labels:
//   - op: "login", "signup", "logout" or "restore"
//   - result: "ok", "error", or "stale" (a superseded result was discarded)
var SessionOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_operations_total",
		Help:      "Total number of session operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ResearchQueriesTotal counts filter queries run against the catalog.
var ResearchQueriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "research_queries_total",
		Help:      "Total number of research catalog queries.",
	},
)

// ResearchResultSize observes how many records each query returned.
var ResearchResultSize = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "research_result_size",
		Help:      "Number of records returned per catalog query.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
	},
)

// ── Chat metrics ──────────────────────────────────────────────────────────────

// ChatMessagesTotal counts messages appended to transcripts.
// Label:
//   - sender: "user" or "bot"
var ChatMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_messages_total",
		Help:      "Total number of chat messages appended, by sender.",
	},
	[]string{"sender"},
)

// ChatQueueDepth tracks the number of replies waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ChatQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "chat_queue_depth",
		Help:      "Current number of chat replies pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ChatReplyErrorsTotal counts reply jobs that failed.
var ChatReplyErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_reply_errors_total",
		Help:      "Total number of chat reply jobs that failed.",
	},
)
