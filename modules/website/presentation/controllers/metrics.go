package controllers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pageRender = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "website",
	Name:      "page_render_seconds",
	Help:      "Time spent rendering website pages.",
	Buckets: []float64{
		0.001, 0.005,
		0.01, 0.05,
		0.1, 0.5,
	},
}, []string{"page"})

func observeRender(page string, start time.Time) {
	pageRender.WithLabelValues(page).Observe(time.Since(start).Seconds())
}
