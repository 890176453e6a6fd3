package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameCacheLookups = "cache_lookups"
	LabelCache       = "cache"
	LabelResult      = "result"
)

var CacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameCacheLookups,
		Help:      "Total cache lookups",
		Namespace: Namespace,
	},
	[]string{LabelCache, LabelResult},
)
