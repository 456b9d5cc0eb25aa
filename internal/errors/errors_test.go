package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/products/search?query=x", nil)

	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestClassifyError_DriverErrors(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	pgInfo := classifyError(fmt.Errorf("query: %w", &pgconn.PgError{Message: "relation missing"}))
	assert.Equal(t, CategoryDatabase, pgInfo.category)
	assert.Equal(t, "database operation failed", pgInfo.sanitized)

	msInfo := classifyError(fmt.Errorf("exec: %w", mssql.Error{Number: 2812, Message: "Could not find stored procedure"}))
	assert.Equal(t, CategoryDatabase, msInfo.category)
	assert.Equal(t, "database operation failed", msInfo.sanitized)
}

func TestClassifyError_Context(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	info := classifyError(fmt.Errorf("completion: %w", context.DeadlineExceeded))

	assert.Equal(t, CategoryTimeout, info.category)
	assert.Equal(t, "request timed out", info.sanitized)
}

func TestClassifyError_DevelopmentKeepsMessage(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	info := classifyError(fmt.Errorf("dial tcp 127.0.0.1:1433: connection refused"))

	assert.Equal(t, CategoryNetwork, info.category)
	assert.Equal(t, "dial tcp 127.0.0.1:1433: connection refused", info.sanitized)
}

func TestSearchFailed_KeepsReasonVerbatim(t *testing.T) {
	// procedure text is never sanitized, even in production
	t.Setenv("ENVIRONMENT", "production")
	c, w := newTestContext()

	SearchFailed(c, "timeout")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeSearchError, resp.Error)
	assert.Equal(t, "Search error: timeout", resp.Message)
	assert.Equal(t, "timeout", resp.Details)
}

func TestServiceUnavailable(t *testing.T) {
	c, w := newTestContext()

	ServiceUnavailable(c, "Error connecting to DAB. Make sure DAB is running on port 5000.", fmt.Errorf("dial tcp: connection refused"))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeServiceUnavailable, resp.Error)
	assert.Contains(t, resp.Message, "port 5000")
}

func TestNotFound(t *testing.T) {
	c, w := newTestContext()

	NotFound(c, "frontend")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "frontend not found", decode(t, w).Message)
}

func TestInternalError_SanitizesInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	c, w := newTestContext()

	InternalError(c, "failed to generate response", fmt.Errorf("sql: password=hunter2 rejected"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeServerError, resp.Error)
	assert.Equal(t, "database operation failed", resp.Details)
}
