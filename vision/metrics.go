package vision

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var visionAPIDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "serjantbek_vision_api_duration_sec",
	Help: "Duration of Vision SafeSearch API calls",
})

var visionAPICount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "serjantbek_vision_api_count",
	Help: "Number of Vision SafeSearch API calls, by HTTP status code",
}, []string{"status"})
