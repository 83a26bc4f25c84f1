package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	orgChartViewsOpened = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "org_chart",
		Name:      "views_opened_total",
		Help:      "Total number of org chart views opened broken down by result.",
	}, []string{"result"})

	orgChartToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "org_chart",
		Name:      "toggles_total",
		Help:      "Total number of org chart toggle requests broken down by outcome.",
	}, []string{"result"})
)

func recordViewOpened(ok bool) {
	result := "error"
	if ok {
		result = "ok"
	}
	orgChartViewsOpened.WithLabelValues(result).Inc()
}

func recordToggle(result string) {
	orgChartToggles.WithLabelValues(result).Inc()
}
