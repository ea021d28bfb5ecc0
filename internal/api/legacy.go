package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/liamashdown/flowintel/internal/catalog"
	"github.com/liamashdown/flowintel/internal/synth"
)

// legacyTransferTotal is the fixed feed size the legacy pages paginate against
const legacyTransferTotal = 625

type carouselResponse struct {
	Entities []catalog.CarouselEntity `json:"entities"`
}

type flowsResponse struct {
	Flows []catalog.ExchangeFlow `json:"flows"`
}

type transfersResponse struct {
	Transfers []synth.Transfer `json:"transfers"`
	Total     int              `json:"total"`
	Page      int              `json:"page"`
}

type tokensResponse struct {
	Tokens []catalog.FeaturedToken `json:"tokens"`
}

type balanceChangesResponse struct {
	Changes []catalog.EntityBalanceChange `json:"changes"`
}

type holdersResponse struct {
	Holders []catalog.TopHolder `json:"holders"`
}

type tokenPriceHistoryResponse struct {
	TokenID string             `json:"token_id"`
	Period  string             `json:"period"`
	Data    []synth.DatedPrice `json:"data"`
}

type chartResponse struct {
	Data   []synth.VenueSample `json:"data"`
	Period string              `json:"period"`
	Type   string              `json:"type,omitempty"`
}

// registerLegacy mounts the legacy table. carouselPath is where the carousel
// lives, since /entities belongs to the primary table when both are mounted.
func (h *Handler) registerLegacy(rg *gin.RouterGroup, carouselPath string) {
	rg.GET(carouselPath, h.handleCarousel)
	rg.GET("/exchange-flows", h.handleExchangeFlows)
	rg.GET("/transfers", h.handleTransfers)
	rg.GET("/market-stats", h.handleMarketStats)
	rg.GET("/tokens", h.handleTokens)

	tokens := rg.Group("/tokens/:id")
	tokens.GET("", h.handleToken)
	tokens.GET("/balance-changes", h.handleBalanceChanges)
	tokens.GET("/holders", h.handleHolders)
	tokens.GET("/transfers", h.handleTokenTransfers)
	tokens.GET("/price-history", h.handleTokenPriceHistory)
	tokens.GET("/open-interest", h.handleOpenInterest)
	tokens.GET("/cex-volume", h.handleCEXVolume)
}

func (h *Handler) handleCarousel(c *gin.Context) {
	c.JSON(http.StatusOK, carouselResponse{Entities: catalog.CarouselEntities()})
}

func (h *Handler) handleExchangeFlows(c *gin.Context) {
	c.JSON(http.StatusOK, flowsResponse{Flows: catalog.ExchangeFlows()})
}

func (h *Handler) handleTransfers(c *gin.Context) {
	var p transfersParams
	if !bindQuery(c, &p) {
		return
	}
	c.JSON(http.StatusOK, transfersResponse{
		Transfers: h.generator().Transfers(p.Limit),
		Total:     legacyTransferTotal,
		Page:      1,
	})
}

func (h *Handler) handleMarketStats(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.CurrentMarketStats())
}

func (h *Handler) handleTokens(c *gin.Context) {
	c.JSON(http.StatusOK, tokensResponse{Tokens: catalog.FeaturedTokens()})
}

func (h *Handler) handleToken(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.FeaturedTokenOrDefault(c.Param("id")))
}

func (h *Handler) handleBalanceChanges(c *gin.Context) {
	c.JSON(http.StatusOK, balanceChangesResponse{Changes: catalog.EntityBalanceChanges()})
}

func (h *Handler) handleHolders(c *gin.Context) {
	c.JSON(http.StatusOK, holdersResponse{Holders: catalog.TopHolders()})
}

func (h *Handler) handleTokenTransfers(c *gin.Context) {
	var p tokenTransfersParams
	if !bindQuery(c, &p) {
		return
	}
	token := catalog.FeaturedTokenOrDefault(c.Param("id"))
	transfers := h.generator().Transfers(p.Limit)
	for i := range transfers {
		transfers[i].Token = token.Symbol
		transfers[i].TokenColor = catalog.TransferTokenColor(token.Symbol)
	}
	c.JSON(http.StatusOK, transfersResponse{Transfers: transfers, Total: legacyTransferTotal, Page: 1})
}

func (h *Handler) handleTokenPriceHistory(c *gin.Context) {
	var p chartParams
	if !bindQuery(c, &p) {
		return
	}
	token := catalog.FeaturedTokenOrDefault(c.Param("id"))
	c.JSON(http.StatusOK, tokenPriceHistoryResponse{
		TokenID: c.Param("id"),
		Period:  orDefault(p.Period, "ALL"),
		Data:    h.generator().TokenPriceHistory(token.Price),
	})
}

func (h *Handler) handleOpenInterest(c *gin.Context) {
	var p chartParams
	if !bindQuery(c, &p) {
		return
	}
	c.JSON(http.StatusOK, chartResponse{
		Data:   h.generator().OpenInterest(),
		Period: orDefault(p.Period, "1M"),
	})
}

func (h *Handler) handleCEXVolume(c *gin.Context) {
	var p chartParams
	if !bindQuery(c, &p) {
		return
	}
	c.JSON(http.StatusOK, chartResponse{
		Data:   h.generator().CEXVolume(),
		Period: orDefault(p.Period, "24H"),
		Type:   p.VolumeType,
	})
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
