package chat

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, assistant Assistant) {
	router.POST("/chat", ChatHandler(assistant))
	router.POST("/chat/structured", StructuredHandler(assistant))
}
