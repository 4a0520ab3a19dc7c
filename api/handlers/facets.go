package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/advocates/db/searchdb"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/services/facets"
	"github.com/meghashyamc/advocates/services/records"
)

func SetupFacets(router gin.IRouter, logger logger.Logger, source records.Source, facetDB searchdb.DB) {
	service := facets.New(logger, source, facetDB)
	router.GET("/advocates/facets", handleFacets(service, logger))

}

func handleFacets(service *facets.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		options, err := service.Options(c.Request.Context())
		if err != nil {
			logger.Error("could not compute facet options", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}

		writeResponse(c, options, http.StatusOK, nil)
	}
}
