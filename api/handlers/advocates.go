package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
	"github.com/meghashyamc/advocates/services/records"
	"github.com/meghashyamc/advocates/services/search"
)

// SearchRequest carries the optional search term. Any string is a legal term.
type SearchRequest struct {
	Search string `form:"search"`
}

type SearchResponse struct {
	Data   []models.Advocate `json:"data"`
	Total  int               `json:"total"`
	Search *string           `json:"search"`
}

func SetupAdvocates(router gin.IRouter, logger logger.Logger, source records.Source) {
	service := search.New(logger, source)
	router.GET("/advocates", handleSearchAdvocates(service, logger))

}

func handleSearchAdvocates(service *search.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := SearchRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from search request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract query parameters"})
			return
		}

		result, err := service.Search(c.Request.Context(), request.Search)
		if err != nil {
			logger.Error("search failed", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}

		c.JSON(http.StatusOK, SearchResponse{
			Data:   result.Records,
			Total:  result.Total,
			Search: result.Search,
		})
	}
}
