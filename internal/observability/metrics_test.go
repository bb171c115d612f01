package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMetricsRecordRequestAccumulatesLatency(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/jobs", "GET", 200, 30*time.Millisecond)
	m.RecordRequest("/jobs", "GET", 200, 70*time.Millisecond)
	m.RecordRequest("/jobs", "GET", 500, 5*time.Millisecond)

	requests, _, latency := m.Snapshot()
	require.EqualValues(t, 2, requests["/jobs|GET|200"])
	require.EqualValues(t, 1, requests["/jobs|GET|500"])
	require.EqualValues(t, 100, latency["/jobs|GET|200"])
	require.EqualValues(t, 5, latency["/jobs|GET|500"])
}

func TestMetricsRecordError(t *testing.T) {
	m := NewMetrics()
	m.RecordError("/jobs", "POST", "VALIDATION_FAILED")
	m.RecordError("/jobs", "POST", "VALIDATION_FAILED")

	_, errs, _ := m.Snapshot()
	require.EqualValues(t, 2, errs["/jobs|POST|VALIDATION_FAILED"])
}

func TestMetricsNilReceiverSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/jobs", "GET", 200, time.Millisecond)
	m.RecordError("/jobs", "GET", "INTERNAL_ERROR")

	requests, errs, latency := m.Snapshot()
	require.Empty(t, requests)
	require.Empty(t, errs)
	require.Empty(t, latency)
}
