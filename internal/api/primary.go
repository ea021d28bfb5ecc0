package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/liamashdown/flowintel/internal/catalog"
	"github.com/liamashdown/flowintel/internal/query"
	"github.com/liamashdown/flowintel/internal/synth"
)

// Service identity returned by the root route
const (
	ServiceName    = "Flow Intel Analytics API"
	ServiceVersion = "1.0.0"
)

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type entityList struct {
	Entities []synth.Entity `json:"entities"`
	Total    int            `json:"total"`
	Limit    int            `json:"limit"`
	Offset   int            `json:"offset"`
}

type transactionList struct {
	Transactions []synth.Transaction `json:"transactions"`
	Total        int                 `json:"total"`
	Limit        int                 `json:"limit"`
	Offset       int                 `json:"offset"`
}

type poolList struct {
	Pools  []synth.Pool `json:"pools"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

type alertList struct {
	Alerts []synth.Alert `json:"alerts"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type searchResult struct {
	Entities     []synth.Entity      `json:"entities"`
	Transactions []synth.Transaction `json:"transactions"`
	Pools        []synth.Pool        `json:"pools"`
	Query        string              `json:"query"`
	Total        int                 `json:"total"`
}

// Size of the synthetic corpus each list pages through
const (
	entityCorpus      = 1000
	transactionCorpus = 10000
	poolCorpus        = 500
	alertCorpus       = 250
)

// listTotal scales corpus by the share of the generated batch that passed
// the filters. It is never below returned.
func listTotal(corpus, generated, returned int) int {
	if generated <= 0 {
		return returned
	}
	return max(corpus*returned/generated, returned)
}

func (h *Handler) registerPrimary(rg *gin.RouterGroup) {
	rg.GET("/networks", h.handleNetworks)
	rg.GET("/dashboard/stats", h.handleDashboardStats)
	rg.GET("/entities", h.handleListEntities)
	rg.GET("/entities/:address", h.handleGetEntity)
	rg.GET("/transactions", h.handleListTransactions)
	rg.GET("/transactions/:hash", h.handleGetTransaction)
	rg.GET("/pools", h.handleListPools)
	rg.GET("/pools/:address", h.handleGetPool)
	rg.GET("/alerts", h.handleListAlerts)
	rg.GET("/flow-graph", h.handleFlowGraph)
	rg.GET("/search", h.handleSearch)
	rg.GET("/price-history/:symbol", h.handlePriceHistory)
}

func (h *Handler) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, rootResponse{Message: ServiceName, Version: ServiceVersion, Status: "healthy"})
}

func (h *Handler) handleNetworks(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Networks())
}

func (h *Handler) handleDashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator().DashboardStats())
}

func (h *Handler) handleListEntities(c *gin.Context) {
	var p entitiesParams
	if !bindQuery(c, &p) {
		return
	}
	entities := query.Entities(h.generator(), query.EntityQuery{
		Network:    p.Network,
		EntityType: p.EntityType,
		Search:     p.Search,
		Limit:      p.Limit,
	})
	c.JSON(http.StatusOK, entityList{Entities: entities, Total: listTotal(entityCorpus, p.Limit, len(entities)), Limit: p.Limit, Offset: p.Offset})
}

func (h *Handler) handleGetEntity(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator().EntityDetail(c.Param("address")))
}

func (h *Handler) handleListTransactions(c *gin.Context) {
	var p transactionsParams
	if !bindQuery(c, &p) {
		return
	}
	txs := query.Transactions(h.generator(), query.TransactionQuery{
		Network:  p.Network,
		TxType:   p.TxType,
		MinValue: p.MinValue,
		MaxValue: p.MaxValue,
		Address:  p.Address,
		Limit:    p.Limit,
	})
	c.JSON(http.StatusOK, transactionList{Transactions: txs, Total: listTotal(transactionCorpus, p.Limit, len(txs)), Limit: p.Limit, Offset: p.Offset})
}

func (h *Handler) handleGetTransaction(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator().TransactionDetail(c.Param("hash")))
}

func (h *Handler) handleListPools(c *gin.Context) {
	var p poolsParams
	if !bindQuery(c, &p) {
		return
	}
	pools := query.Pools(h.generator(), query.PoolQuery{
		Network:      p.Network,
		Protocol:     p.Protocol,
		MinLiquidity: p.MinLiquidity,
		Limit:        p.Limit,
	})
	c.JSON(http.StatusOK, poolList{Pools: pools, Total: listTotal(poolCorpus, p.Limit, len(pools)), Limit: p.Limit, Offset: p.Offset})
}

func (h *Handler) handleGetPool(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator().PoolDetail(c.Param("address")))
}

func (h *Handler) handleListAlerts(c *gin.Context) {
	var p alertsParams
	if !bindQuery(c, &p) {
		return
	}
	alerts := query.Alerts(h.generator(), query.AlertQuery{
		Network:   p.Network,
		AlertType: p.AlertType,
		Severity:  p.Severity,
		Limit:     p.Limit,
	})
	c.JSON(http.StatusOK, alertList{Alerts: alerts, Total: listTotal(alertCorpus, p.Limit, len(alerts)), Limit: p.Limit, Offset: p.Offset})
}

func (h *Handler) handleFlowGraph(c *gin.Context) {
	var p flowGraphParams
	if !bindQuery(c, &p) {
		return
	}
	c.JSON(http.StatusOK, h.generator().FlowGraph(p.Network, p.Limit))
}

func (h *Handler) handleSearch(c *gin.Context) {
	var p searchParams
	if !bindQuery(c, &p) {
		return
	}
	g := h.generator()
	res := searchResult{
		Entities:     query.Search(g, p.Q, p.Limit),
		Transactions: query.SearchTransactions(g, p.Q, p.Limit),
		Pools:        query.SearchPools(g, p.Q, p.Limit),
		Query:        p.Q,
	}
	res.Total = len(res.Entities) + len(res.Transactions) + len(res.Pools)
	c.JSON(http.StatusOK, res)
}

func (h *Handler) handlePriceHistory(c *gin.Context) {
	var p priceHistoryParams
	if !bindQuery(c, &p) {
		return
	}
	c.JSON(http.StatusOK, h.generator().PriceHistory(c.Param("symbol"), p.Period))
}
