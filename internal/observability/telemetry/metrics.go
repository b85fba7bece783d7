package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Métricas de negócio
	SwapsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bss_swaps_recorded_total",
		Help: "Total de trocas de bateria registradas",
	})

	SlotsOccupied = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bss_slots_occupied",
		Help: "Número de slots ocupados por baterias",
	})

	BillingsMarkedPaid = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bss_billings_marked_paid_total",
		Help: "Total de faturas mensais marcadas como pagas",
	})

	HealthLogsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bss_health_logs_ingested_total",
		Help: "Total de leituras de BMS recebidas",
	})

	// Métricas de infraestrutura
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bss_http_requests_total",
		Help: "Total de requisições HTTP",
	}, []string{"method", "path", "status"})
)
