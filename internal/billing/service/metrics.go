package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerPreviewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "warebill",
		Subsystem: "billing",
		Name:      "ledger_previews_total",
		Help:      "Number of ledger previews computed.",
	})

	ledgerEntriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "warebill",
		Subsystem: "billing",
		Name:      "ledger_entries_total",
		Help:      "Number of ledger entries generated.",
	})

	ledgerUnpricedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "warebill",
		Subsystem: "billing",
		Name:      "ledger_unpriced_entries_total",
		Help:      "Number of generated entries that could not be priced.",
	})
)
