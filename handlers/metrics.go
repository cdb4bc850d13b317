package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var violationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "serjantbek_violations_total",
	Help: "Number of enforced violations, by category",
}, []string{"category"})
