package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orderintake/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAllocation(t *testing.T) {
	m := metrics.New()

	m.RecordAllocation("BlueDart")
	m.RecordAllocation("BlueDart")
	m.RecordAllocation("")

	expected := `
# HELP order_intake_allocations_total Courier allocation outcomes by courier, "none" when no rule matched.
# TYPE order_intake_allocations_total counter
order_intake_allocations_total{courier="BlueDart"} 2
order_intake_allocations_total{courier="none"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "order_intake_allocations_total"))
}

func TestSetOrdersByStatus_ReplacesPreviousSnapshot(t *testing.T) {
	m := metrics.New()

	m.SetOrdersByStatus(map[string]int64{"Pending": 3, "Lost": 1})
	m.SetOrdersByStatus(map[string]int64{"Pending": 2, "Delivered": 4})

	expected := `
# HELP order_intake_orders_by_status Stored orders per status as of the last snapshot.
# TYPE order_intake_orders_by_status gauge
order_intake_orders_by_status{status="Delivered"} 4
order_intake_orders_by_status{status="Pending"} 2
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "order_intake_orders_by_status"))
}

func TestRequestStarted_CountsByRouteAndStatus(t *testing.T) {
	m := metrics.New()

	done := m.RequestStarted()
	done("post", "/orders", http.StatusOK)
	m.RequestStarted()("GET", "", http.StatusNotFound)

	count, err := testutil.GatherAndCount(m.Registry(), "order_intake_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	expected := `
# HELP order_intake_http_inflight_requests Current number of in-flight HTTP requests.
# TYPE order_intake_http_inflight_requests gauge
order_intake_http_inflight_requests 0
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "order_intake_http_inflight_requests"))
}

func TestRecordJobRun(t *testing.T) {
	m := metrics.New()

	m.RecordJobRun("order_status_snapshot", 5*time.Millisecond, true)
	m.RecordJobRun("order_status_snapshot", time.Millisecond, false)
	m.RecordJobRun("", time.Millisecond, true)

	count, err := testutil.GatherAndCount(m.Registry(), "order_intake_jobs_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestHandler_ServesTextFormat(t *testing.T) {
	m := metrics.New()
	m.RecordAllocation("IndiaPost")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `order_intake_allocations_total{courier="IndiaPost"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNew_InstancesAreIndependent(t *testing.T) {
	a := metrics.New()
	b := metrics.New()

	a.RecordAllocation("BlueDart")

	count, err := testutil.GatherAndCount(b.Registry(), "order_intake_allocations_total")
	require.NoError(t, err)
	assert.Zero(t, count)
}
