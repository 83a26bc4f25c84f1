package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var contactMessages = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "website",
	Name:      "contact_messages_total",
	Help:      "Total number of contact form submissions broken down by result.",
}, []string{"result"})

func recordContactMessage(result string) {
	contactMessages.WithLabelValues(result).Inc()
}
