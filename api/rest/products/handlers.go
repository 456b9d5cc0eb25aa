package products

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/sqlai/server/api/rest/pagination"
	"codeberg.org/sqlai/server/internal/errors"
	"codeberg.org/sqlai/server/internal/listing"
	"codeberg.org/sqlai/server/internal/retriever"
	"github.com/gin-gonic/gin"
)

// ListHandler godoc
// @Summary List products
// @Description Proxies a page of the product catalog from Data API Builder
// @Tags products
// @Produce json
// @Param page query int false "page number" default(1)
// @Param page_size query int false "items per page" default(10)
// @Success 200 {object} listing.Page
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/products [get]
func ListHandler(lister Lister) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, err := pagination.FromQuery(c)
		if err != nil {
			errors.BadRequest(c, err.Error(), nil)
			return
		}

		page, err := lister.ListProducts(c.Request.Context(), params.Page, params.PageSize)
		if err != nil {
			var unavailable *listing.UnavailableError
			if stderrors.As(err, &unavailable) {
				errors.ServiceUnavailable(c, unavailable.Message(), err)
				return
			}

			errors.InternalError(c, "failed to list products", err)
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

// SearchHandler godoc
// @Summary Similarity search
// @Description Runs the vector-similarity stored procedure for the query
// @Tags products
// @Produce json
// @Param query query string true "search text"
// @Success 200 {object} agent.SearchResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/products/search [get]
func SearchHandler(searcher Searcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := c.GetQuery("query")
		if !ok {
			errors.BadRequest(c, "query parameter is required", nil)
			return
		}

		resp, err := searcher.SearchProducts(c.Request.Context(), query)
		if err != nil {
			var procErr *retriever.ProcedureError
			if stderrors.As(err, &procErr) {
				errors.SearchFailed(c, procErr.Reason)
				return
			}

			errors.InternalError(c, "failed to search products", err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
