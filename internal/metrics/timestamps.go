package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameLocalizedTimestamps = "localized_timestamps"
	NameInvalidTimestamps   = "invalid_timestamps"
	NameSkippedTimestamps   = "skipped_timestamps"
)

var LocalizedTimestamps = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameLocalizedTimestamps,
		Help:      "Total timestamps rendered in the viewer's locale",
		Namespace: Namespace,
	},
)

var InvalidTimestamps = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameInvalidTimestamps,
		Help:      "Total timestamps rendered as invalid dates",
		Namespace: Namespace,
	},
)

var SkippedTimestamps = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameSkippedTimestamps,
		Help:      "Total marked void elements left without a rendering",
		Namespace: Namespace,
	},
)
