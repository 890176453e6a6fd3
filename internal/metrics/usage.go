package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalTopics   = "total_topics"
	NameTotalComments = "total_comments"
)

var TotalTopics = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalTopics,
		Help:      "Total topics created",
		Namespace: Namespace,
	},
)

var TotalComments = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalComments,
		Help:      "Total comments created",
		Namespace: Namespace,
	},
)
