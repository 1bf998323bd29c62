package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultUsed     = "used"
	ResultWrongPIN = "wrong_pin"
	ResultNotFound = "not_found"
)

type Metrics struct {
	CreatedTotal   *prometheus.CounterVec // result=ok|error
	ClaimsTotal    *prometheus.CounterVec // result=used|wrong_pin|not_found|error
	PINResetsTotal prometheus.Counter

	GatewayLatencyMS *prometheus.HistogramVec // op=lock|unlock
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservations_created_total",
				Help: "Total reservation create attempts by result",
			},
			[]string{"result"},
		),
		ClaimsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservation_claims_total",
				Help: "Total reservation claims by result",
			},
			[]string{"result"},
		),
		PINResetsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reservation_pin_resets_total",
			Help: "Total PIN resets after too many failed claims",
		}),
		GatewayLatencyMS: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "machine_gateway_latency_ms",
				Help:    "Latency of machine lock controller calls (ms)",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"op"},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.CreatedTotal,
			m.ClaimsTotal,
			m.PINResetsTotal,
			m.GatewayLatencyMS,
		)
	}

	return m
}

func (m *Metrics) IncCreated(result string) {
	if m == nil {
		return
	}
	m.CreatedTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncClaim(result string) {
	if m == nil {
		return
	}
	m.ClaimsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncPINReset() {
	if m == nil {
		return
	}
	m.PINResetsTotal.Inc()
}

func (m *Metrics) ObserveGateway(op string, ms float64) {
	if m == nil {
		return
	}
	m.GatewayLatencyMS.WithLabelValues(op).Observe(ms)
}
