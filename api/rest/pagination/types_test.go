package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/products?"+rawQuery, nil)

	return c
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected Params
	}{
		{"defaults", "", Params{Page: 1, PageSize: 10}},
		{"snake case", "page=2&page_size=25", Params{Page: 2, PageSize: 25}},
		{"camel case", "page=3&pageSize=5", Params{Page: 3, PageSize: 5}},
		{"snake case wins", "page_size=7&pageSize=9", Params{Page: 1, PageSize: 7}},
		{"non-positive values", "page=0&page_size=-1", Params{Page: 1, PageSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := FromQuery(contextWithQuery(tt.query))

			require.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFromQuery_RejectsNonInteger(t *testing.T) {
	_, err := FromQuery(contextWithQuery("page=two"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page must be an integer")

	_, err = FromQuery(contextWithQuery("pageSize=lots"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pageSize")
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 40, Params{Page: 5, PageSize: 10}.Offset())
}
