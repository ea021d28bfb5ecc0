// Package api serves the analytics endpoints over HTTP. Every request gets
// its own random stream, so handlers share no mutable state.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/liamashdown/flowintel/internal/config"
	"github.com/liamashdown/flowintel/internal/rng"
	"github.com/liamashdown/flowintel/internal/synth"
)

// Carousel paths for the legacy table
const (
	carouselLegacyOnly = "/entities"
	carouselShared     = "/top-entities"
)

// Handler builds responses from fresh synthetic data
type Handler struct {
	rngs *rng.Factory
	now  func() time.Time
}

// NewHandler returns a handler drawing from rngs
func NewHandler(rngs *rng.Factory) *Handler {
	return &Handler{rngs: rngs, now: time.Now}
}

func (h *Handler) generator() *synth.Generator {
	return synth.New(h.rngs.Stream(), h.now())
}

// NewRouter builds the gin engine with the route tables cfg selects
func NewRouter(cfg *config.Config, log *logrus.Logger, rngs *rng.Factory) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestMetrics())
	r.Use(accessLog(log))
	r.Use(cors.New(corsConfig(cfg)))

	h := NewHandler(rngs)
	rg := r.Group("/api")
	rg.GET("/", h.handleRoot)

	if cfg.MountsPrimary() {
		h.registerPrimary(rg)
	}
	if cfg.MountsLegacy() {
		carousel := carouselLegacyOnly
		if cfg.MountsPrimary() {
			carousel = carouselShared
		}
		h.registerLegacy(rg, carousel)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Detail: "Not Found"})
	})

	return r
}

// NewServer wraps the router in an http.Server on cfg.HTTPPort
func NewServer(cfg *config.Config, log *logrus.Logger, rngs *rng.Factory) (*gin.Engine, *http.Server) {
	r := NewRouter(cfg, log, rngs)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return r, srv
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{"*"},
		MaxAge:       12 * time.Hour,
	}
	if cfg.AllowsAllOrigins() {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = cfg.CORSOrigins
	c.AllowCredentials = true
	return c
}
