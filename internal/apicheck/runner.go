package apicheck

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/liamashdown/flowintel/internal/metrics"
	"github.com/liamashdown/flowintel/internal/synth"
)

type rootBody struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type entitiesBody struct {
	Entities []synth.Entity `json:"entities"`
}

type searchBody struct {
	Entities     []synth.Entity      `json:"entities"`
	Transactions []synth.Transaction `json:"transactions"`
	Pools        []synth.Pool        `json:"pools"`
}

type transactionsBody struct {
	Transactions []synth.Transaction `json:"transactions"`
}

type poolsBody struct {
	Pools []synth.Pool `json:"pools"`
}

type alertsBody struct {
	Alerts []synth.Alert `json:"alerts"`
}

// Runner executes the check suite against one API
type Runner struct {
	client *Client
	log    *logrus.Logger
	report *Report
}

// NewRunner creates a runner using client
func NewRunner(client *Client, log *logrus.Logger) *Runner {
	return &Runner{client: client, log: log}
}

// Run executes every check in order and returns the report. A cancelled ctx
// fails the remaining checks.
func (r *Runner) Run(ctx context.Context) *Report {
	r.report = &Report{BaseURL: r.client.BaseURL()}

	r.checkRoot(ctx)
	r.checkNetworks(ctx)
	r.checkDashboardStats(ctx)
	r.checkEntities(ctx)
	r.checkTransactions(ctx)
	r.checkPools(ctx)
	r.checkAlerts(ctx)
	r.checkFlowGraph(ctx)
	r.checkSearch(ctx)
	r.checkPriceHistory(ctx)
	r.checkFilters(ctx)
	r.checkValidation(ctx)

	return r.report
}

// check performs one request and records its outcome. verify runs only when
// the status matched and may fail the check.
func (r *Runner) check(ctx context.Context, name, endpoint string, params url.Values, want int, out any, verify func() error) bool {
	start := time.Now()
	status, err := r.client.Get(ctx, endpoint, params, want, out)
	if err == nil && verify != nil {
		err = verify()
	}

	res := Result{
		Name:     name,
		Endpoint: endpoint,
		Status:   status,
		Passed:   err == nil,
		Elapsed:  time.Since(start),
	}
	if err != nil {
		res.Detail = err.Error()
	}
	r.record(res)
	return res.Passed
}

func (r *Runner) record(res Result) {
	r.report.Results = append(r.report.Results, res)
	metrics.RecordCheck(res.Passed)

	entry := r.log.WithFields(logrus.Fields{
		"check":      res.Name,
		"endpoint":   res.Endpoint,
		"status":     res.Status,
		"elapsed_ms": res.Elapsed.Milliseconds(),
	})
	if res.Passed {
		entry.Info("Check passed")
		return
	}
	entry.WithField("detail", res.Detail).Warn("Check failed")
}

func limitParams(limit int, kv ...string) url.Values {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limit))
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i], kv[i+1])
	}
	return v
}

func (r *Runner) checkRoot(ctx context.Context) {
	var body rootBody
	r.check(ctx, "Root", "", nil, http.StatusOK, &body, func() error {
		if body.Status != "healthy" {
			return fmt.Errorf("status %q, want healthy", body.Status)
		}
		return nil
	})
}

func (r *Runner) checkNetworks(ctx context.Context) {
	var body []map[string]any
	r.check(ctx, "Networks", "networks", nil, http.StatusOK, &body, func() error {
		if len(body) == 0 {
			return fmt.Errorf("no networks returned")
		}
		return nil
	})
}

func (r *Runner) checkDashboardStats(ctx context.Context) {
	var body synth.DashboardStats
	r.check(ctx, "Dashboard Stats", "dashboard/stats", nil, http.StatusOK, &body, nil)
}

func (r *Runner) checkEntities(ctx context.Context) {
	var list entitiesBody
	ok := r.check(ctx, "Entities", "entities", limitParams(5), http.StatusOK, &list, func() error {
		return atMost(len(list.Entities), 5)
	})
	if !ok || len(list.Entities) == 0 {
		return
	}

	address := list.Entities[0].Address
	var detail synth.Entity
	r.check(ctx, "Entity Detail", "entities/"+url.PathEscape(address), nil, http.StatusOK, &detail, func() error {
		if detail.Address != address {
			return fmt.Errorf("address %q, want %q", detail.Address, address)
		}
		return nil
	})
}

func (r *Runner) checkTransactions(ctx context.Context) {
	var list transactionsBody
	ok := r.check(ctx, "Transactions", "transactions", limitParams(5), http.StatusOK, &list, func() error {
		return atMost(len(list.Transactions), 5)
	})
	if !ok || len(list.Transactions) == 0 {
		return
	}

	hash := list.Transactions[0].Hash
	var detail synth.Transaction
	r.check(ctx, "Transaction Detail", "transactions/"+url.PathEscape(hash), nil, http.StatusOK, &detail, func() error {
		if detail.Hash != hash {
			return fmt.Errorf("hash %q, want %q", detail.Hash, hash)
		}
		return nil
	})
}

func (r *Runner) checkPools(ctx context.Context) {
	var list poolsBody
	ok := r.check(ctx, "Pools", "pools", limitParams(5), http.StatusOK, &list, func() error {
		return atMost(len(list.Pools), 5)
	})
	if !ok || len(list.Pools) == 0 {
		return
	}

	address := list.Pools[0].Address
	var detail synth.Pool
	r.check(ctx, "Pool Detail", "pools/"+url.PathEscape(address), nil, http.StatusOK, &detail, func() error {
		if len(detail.TopLPHolders) == 0 || len(detail.RecentEvents) == 0 {
			return fmt.Errorf("pool detail missing holders or events")
		}
		return nil
	})
}

func (r *Runner) checkAlerts(ctx context.Context) {
	var list alertsBody
	r.check(ctx, "Alerts", "alerts", limitParams(5), http.StatusOK, &list, func() error {
		return atMost(len(list.Alerts), 5)
	})
}

func (r *Runner) checkFlowGraph(ctx context.Context) {
	var graph synth.FlowGraph
	r.check(ctx, "Flow Graph", "flow-graph", limitParams(10), http.StatusOK, &graph, func() error {
		return atMost(len(graph.Nodes), 10)
	})
}

func (r *Runner) checkSearch(ctx context.Context) {
	var body searchBody
	r.check(ctx, "Search", "search", limitParams(5, "q", "binance"), http.StatusOK, &body, func() error {
		if len(body.Entities) != 5 {
			return fmt.Errorf("got %d entities, want 5", len(body.Entities))
		}
		if body.Transactions == nil || body.Pools == nil {
			return fmt.Errorf("search result missing transactions or pools")
		}
		return nil
	})
}

func (r *Runner) checkPriceHistory(ctx context.Context) {
	for _, period := range synth.Periods() {
		want, _ := synth.PeriodPoints(period)
		var history synth.PriceHistory
		params := url.Values{"period": {period}}
		r.check(ctx, "Price History - "+period, "price-history/ETH", params, http.StatusOK, &history, func() error {
			if len(history.Data) != want {
				return fmt.Errorf("got %d points, want %d", len(history.Data), want)
			}
			return nil
		})
	}
}

// checkFilters stops each group at its first failure
func (r *Runner) checkFilters(ctx context.Context) {
	groups := []struct {
		endpoint string
		label    string
		param    string
		values   []string
	}{
		{endpoint: "entities", label: "Entities", param: "network", values: []string{"ethereum", "bsc", "polygon", "arbitrum"}},
		{endpoint: "entities", label: "Entities", param: "entity_type", values: []string{"exchange", "wallet", "contract"}},
		{endpoint: "transactions", label: "Transactions", param: "tx_type", values: []string{"transfer", "swap", "mint"}},
		{endpoint: "alerts", label: "Alerts", param: "severity", values: []string{"critical", "important", "normal"}},
	}

	for _, g := range groups {
		for _, v := range g.values {
			name := fmt.Sprintf("%s - %s", g.label, v)
			if !r.check(ctx, name, g.endpoint, limitParams(3, g.param, v), http.StatusOK, nil, nil) {
				break
			}
		}
	}
}

func (r *Runner) checkValidation(ctx context.Context) {
	r.check(ctx, "Limit Above Maximum", "entities", limitParams(101), http.StatusUnprocessableEntity, nil, nil)
	r.check(ctx, "Search Query Too Short", "search", url.Values{"q": {"a"}}, http.StatusUnprocessableEntity, nil, nil)
}

func atMost(n, limit int) error {
	if n > limit {
		return fmt.Errorf("got %d items, limit %d", n, limit)
	}
	return nil
}
