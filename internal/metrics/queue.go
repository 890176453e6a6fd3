package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameQueuedWrites    = "queued_writes"
	NameProcessedWrites = "processed_writes"
	LabelOperation      = "operation"
	LabelStatus         = "status"
)

var QueuedWrites = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name:      NameQueuedWrites,
		Help:      "Current write operations waiting in the queue",
		Namespace: Namespace,
	},
)

var ProcessedWrites = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameProcessedWrites,
		Help:      "Total write operations processed",
		Namespace: Namespace,
	},
	[]string{LabelOperation, LabelStatus},
)
