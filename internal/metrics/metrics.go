package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SamplesIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crypto_samples_ingested_total",
		Help: "Total number of price samples loaded from CSV files",
	})

	FilesIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crypto_files_ingested_total",
		Help: "Total number of CSV files loaded",
	})

	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crypto_http_requests_total",
		Help: "Total number of handled HTTP requests",
	}, []string{"handler"})
)
