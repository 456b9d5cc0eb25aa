package main

import (
	"codeberg.org/sqlai/server/api/rest/chat"
	"codeberg.org/sqlai/server/api/rest/frontend"
	"codeberg.org/sqlai/server/api/rest/health"
	"codeberg.org/sqlai/server/api/rest/products"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(RequestLogger())
	router.Use(CORSMiddleware(server.config.CORSAllowedOrigins))

	router.GET("/", health.Handler)
	router.GET("/health", health.Handler)
	router.GET("/app", frontend.IndexHandler(server.config.FrontendDir))

	api := router.Group("/api")

	{
		api.GET("/ping", health.PingHandler)

		products.RegisterRoutes(api, server.services.Listing, server.services.Agent)
		chat.RegisterRoutes(api, server.services.Agent)
	}
}
