package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncCreated(ResultOK)
	m.IncClaim(ResultWrongPIN)
	m.IncClaim(ResultWrongPIN)
	m.IncPINReset()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CreatedTotal.WithLabelValues(ResultOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ClaimsTotal.WithLabelValues(ResultWrongPIN)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PINResetsTotal))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncCreated(ResultError)
		m.IncClaim(ResultUsed)
		m.IncPINReset()
		m.ObserveGateway("lock", 3)
	})
}
