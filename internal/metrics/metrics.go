package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	StoreOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of persistence operations per collection key.",
		},
		[]string{"key", "op"},
	)
	RepositoryCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_repository_calls_total",
			Help: "Total number of repository operations per entity.",
		},
		[]string{"entity", "op"},
	)
)

func init() {
	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(StoreOps)
	prometheus.MustRegister(RepositoryCalls)
}

func StartMetricsServer(port int) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), nil))
	}()
}
