package chat

import (
	"context"
	"net/http"

	"codeberg.org/sqlai/server/internal/agent"
	"codeberg.org/sqlai/server/internal/errors"
	"github.com/gin-gonic/gin"
)

type Assistant interface {
	Chat(ctx context.Context, message string) (*agent.ChatResponse, error)
	ChatStructured(ctx context.Context, message string) (*agent.StructuredResponse, error)
}

// ChatHandler godoc
// @Summary Product assistant chat
// @Description Searches the catalog for the message and answers grounded on the results
// @Tags chat
// @Accept json
// @Produce json
// @Param request body Request true "user message"
// @Success 200 {object} agent.ChatResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/chat [post]
func ChatHandler(assistant Assistant) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		resp, err := assistant.Chat(c.Request.Context(), *req.Message)
		if err != nil {
			errors.InternalError(c, "failed to generate response", err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// StructuredHandler godoc
// @Summary Structured product recommendations
// @Description Returns the model's JSON recommendation object, or {"raw_response": text} when it is not valid JSON
// @Tags chat
// @Accept json
// @Produce json
// @Param request body Request true "user message"
// @Success 200 {object} agent.RecommendationPayload
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/chat/structured [post]
func StructuredHandler(assistant Assistant) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		resp, err := assistant.ChatStructured(c.Request.Context(), *req.Message)
		if err != nil {
			errors.InternalError(c, "failed to generate recommendations", err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
