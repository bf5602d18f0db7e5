package service

import "github.com/prometheus/client_golang/prometheus"

var transitions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ritual_transitions_total",
		Help: "Count of successful ritual request status transitions",
	},
	[]string{"to"},
)

func init() { prometheus.MustRegister(transitions) }
