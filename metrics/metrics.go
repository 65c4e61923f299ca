// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics defines the Prometheus instrumentation for the vote
// pipeline. Collectors are registered on the default registry via promauto
// and served by the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	VotesAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "impact_tokens",
		Subsystem: "votes",
		Name:      "accepted_total",
		Help:      "Vote submissions recorded",
	})

	VotesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "impact_tokens",
		Subsystem: "votes",
		Name:      "rejected_total",
		Help:      "Vote submissions rejected, by reason code",
	}, []string{"reason"})

	SelectionsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "impact_tokens",
		Subsystem: "votes",
		Name:      "selections_total",
		Help:      "Candidate selections recorded across all accepted votes",
	})

	ErasesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "impact_tokens",
		Subsystem: "admin",
		Name:      "erases_total",
		Help:      "Administrative erase-all operations performed",
	})
)
