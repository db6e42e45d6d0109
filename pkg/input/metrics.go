package input

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hyprinput",
		Name:      "events_total",
		Help:      "Raw input events dispatched, by kind.",
	}, []string{"kind"})
	metricKeysIntercepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hyprinput",
		Name:      "keys_intercepted_total",
		Help:      "Key events kept from clients by bindings, the overlay or release suppression.",
	})
	metricActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hyprinput",
		Name:      "actions_total",
		Help:      "Bound actions executed, by action.",
	}, []string{"action"})
	metricSpawnFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hyprinput",
		Name:      "spawn_failures_total",
		Help:      "Commands that could not be started.",
	})
)

func recordEvent(kind string) {
	metricEvents.WithLabelValues(kind).Inc()
}

func recordIntercept() {
	metricKeysIntercepted.Inc()
}

func recordAction(a Action) {
	metricActions.WithLabelValues(a.Kind.String()).Inc()
}

func recordSpawnFailure() {
	metricSpawnFailures.Inc()
}
