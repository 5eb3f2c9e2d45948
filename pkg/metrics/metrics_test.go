package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	m := NewWithRegisterer("dashboard", prometheus.NewRegistry())

	m.ObserveHTTPRequest("POST", "/api/dashboard/getcall_statistics", 200, 10*time.Millisecond)
	m.ObserveDBQuery("select", time.Millisecond, nil)
	m.ObserveDBQuery("select", time.Millisecond, errors.New("boom"))
	m.RecordCallStatistics("consultant")
	m.RecordPresaleReplace(false)
	m.SetDBPoolStats(3, 1, 2, 7)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues("dashboard", "POST", "/api/dashboard/getcall_statistics", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("dashboard", "select", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("dashboard", "select", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CallStatisticsTotal.WithLabelValues("dashboard", "consultant")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PresaleReplaceTotal.WithLabelValues("dashboard", "error")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.DBWaitCount.WithLabelValues("dashboard")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.ObserveDBQuery("select", time.Second, nil)
		m.SetDBPoolStats(1, 1, 1, 1)
		m.RecordCallStatistics("unrestricted")
		m.RecordPresaleReplace(true)
		m.RecordRateLimited()
	})
	assert.Equal(t, "", m.ServiceName())
}
