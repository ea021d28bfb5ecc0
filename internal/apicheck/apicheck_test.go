package apicheck

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liamashdown/flowintel/internal/api"
	"github.com/liamashdown/flowintel/internal/config"
	"github.com/liamashdown/flowintel/internal/rng"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	log, _ := test.NewNullLogger()
	cfg := &config.Config{
		CORSOrigins: []string{"*"},
		RouteTable:  config.RouteTableBoth,
	}
	srv := httptest.NewServer(api.NewRouter(cfg, log, rng.New(rng.Deterministic, 7)))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunAgainstLiveRouter(t *testing.T) {
	t.Parallel()

	srv := newAPIServer(t)
	log, hook := test.NewNullLogger()

	report := NewRunner(NewClient(srv.URL, 0, 5*time.Second), log).Run(context.Background())

	for _, res := range report.Failed() {
		t.Errorf("%s failed: %s", res.Name, res.Detail)
	}
	assert.True(t, report.OK())
	assert.InDelta(t, 100.0, report.SuccessRate(), 0.001)
	// 16 endpoint checks, 13 filter checks, 2 validation checks
	assert.Len(t, report.Results, 31)
	assert.Len(t, hook.AllEntries(), 31)
}

func TestRunStopsFilterGroupOnFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"boom"}`))
	}))
	t.Cleanup(srv.Close)

	log, _ := test.NewNullLogger()
	report := NewRunner(NewClient(srv.URL, 0, time.Second), log).Run(context.Background())

	assert.False(t, report.OK())
	assert.Zero(t, report.Passed())
	// Detail checks are skipped and each filter group stops after one attempt.
	// 13 top level checks, 4 filter attempts, 2 validation checks
	assert.Len(t, report.Results, 19)
	for _, res := range report.Results {
		assert.Equal(t, http.StatusInternalServerError, res.Status, res.Name)
	}
}

func TestClientUnexpectedStatus(t *testing.T) {
	t.Parallel()

	srv := newAPIServer(t)
	client := NewClient(srv.URL+"/", 0, time.Second)

	status, err := client.Get(context.Background(), "does-not-exist", nil, http.StatusOK, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, err.Error(), "Not Found")
}

func TestClientCancelledContext(t *testing.T) {
	t.Parallel()

	srv := newAPIServer(t)
	client := NewClient(srv.URL, 1, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, err := client.Get(ctx, "networks", nil, http.StatusOK, nil)
	assert.Error(t, err)
	assert.Zero(t, status)
}

func TestReportRender(t *testing.T) {
	t.Parallel()

	report := &Report{
		BaseURL: "http://localhost:8001/api",
		Results: []Result{
			{Name: "Root", Endpoint: "", Status: 200, Passed: true, Elapsed: 3 * time.Millisecond},
			{Name: "Pools", Endpoint: "pools", Status: 500, Detail: "unexpected status: expected 200, got 500"},
		},
	}

	var buf bytes.Buffer
	report.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "http://localhost:8001/api")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "/pools")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, "Failed checks (1)")
	assert.Contains(t, out, "Success rate: 50.0%")
}

func TestEmptyReport(t *testing.T) {
	t.Parallel()

	report := &Report{}
	assert.False(t, report.OK())
	assert.Zero(t, report.SuccessRate())
	assert.Empty(t, report.Failed())
}
