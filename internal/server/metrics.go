package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qbit_chat_requests_total",
		Help: "Chat requests received.",
	})
	newsletterRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qbit_newsletter_requests_total",
		Help: "Newsletter generation requests received.",
	})
)
