package products

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, lister Lister, searcher Searcher) {
	productsGroup := router.Group("/products")
	{
		productsGroup.GET("", ListHandler(lister))
		productsGroup.GET("/search", SearchHandler(searcher))
	}
}
