package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nik_parse_total",
		Help: "Total number of NIK parse requests by outcome",
	}, []string{"result", "reason"})

	referenceLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nik_reference_loads_total",
		Help: "Total number of reference data loads by source and status",
	}, []string{"source", "status"})

	referenceEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "nik_reference_entries",
		Help: "Number of entries in each reference table after the last load",
	}, []string{"table"})
)

// ObserveParse counts one parse. reason is empty for valid results.
func ObserveParse(valid bool, reason string) {
	result := "invalid"
	if valid {
		result = "valid"
		reason = "none"
	}
	parseTotal.WithLabelValues(result, reason).Inc()
}

// ObserveReferenceLoad records a completed load and the resulting table sizes.
func ObserveReferenceLoad(source string, ok bool, provinces, regencies, districts int) {
	status := "ok"
	if !ok {
		status = "degraded"
	}
	referenceLoads.WithLabelValues(source, status).Inc()
	referenceEntries.WithLabelValues("provinces").Set(float64(provinces))
	referenceEntries.WithLabelValues("regencies").Set(float64(regencies))
	referenceEntries.WithLabelValues("districts").Set(float64(districts))
}
