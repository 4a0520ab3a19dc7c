package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/advocates/api/handlers"
	"github.com/meghashyamc/advocates/db/searchdb"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/services/records"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRoutes(router *gin.Engine, logger logger.Logger, source records.Source, facetDB searchdb.DB) {
	router.GET("/health", health())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	handlers.SetupAdvocates(api, logger, source)
	handlers.SetupFacets(api, logger, source, facetDB)

}

func health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

func newRouter(logger logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(_CORSMiddleware())
	router.Use(metricsMiddleware())
	router.Use(loggingMiddleware(logger))

	return router
}
