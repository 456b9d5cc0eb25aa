package listing

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDABServer(t *testing.T, status int, body string, rawQuery *string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != productsPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		*rawQuery = r.URL.RawQuery

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body)) //nolint:errcheck
	}))

	t.Cleanup(srv.Close)

	return srv
}

func TestListProducts_FirstPage(t *testing.T) {
	var query string
	srv := newDABServer(t, http.StatusOK, `{"value":[{"id":1,"name":"Mouse A"},{"id":2,"name":"Mouse B"}]}`, &query)

	page, err := New(srv.URL, time.Second).ListProducts(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, "$first=10", query)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	require.Len(t, page.Products, 2)
	assert.Equal(t, "Mouse A", page.Products[0].(map[string]any)["name"])
}

func TestListProducts_LaterPageUsesOffset(t *testing.T) {
	var query string
	srv := newDABServer(t, http.StatusOK, `{"value":[]}`, &query)

	page, err := New(srv.URL+"/", time.Second).ListProducts(context.Background(), 3, 25)

	require.NoError(t, err)
	assert.Equal(t, "$first=25&$after=50", query)
	assert.Equal(t, 3, page.Page)
	assert.Empty(t, page.Products)
}

func TestListProducts_Defaults(t *testing.T) {
	var query string
	srv := newDABServer(t, http.StatusOK, `{}`, &query)

	page, err := New(srv.URL, time.Second).ListProducts(context.Background(), 0, -5)

	require.NoError(t, err)
	assert.Equal(t, "$first=10", query)
	assert.Equal(t, DefaultPage, page.Page)
	assert.Equal(t, DefaultPageSize, page.PageSize)
	assert.NotNil(t, page.Products, "missing value decodes to an empty list")
	assert.Empty(t, page.Products)
}

func TestListProducts_UpstreamStatus(t *testing.T) {
	var query string
	srv := newDABServer(t, http.StatusBadRequest, `{"error":{"code":"BadRequest"}}`, &query)

	_, err := New(srv.URL, time.Second).ListProducts(context.Background(), 1, 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")

	var unavailable *UnavailableError
	assert.False(t, errors.As(err, &unavailable), "a reachable upstream is not unavailable")
}

func TestListProducts_MalformedBody(t *testing.T) {
	var query string
	srv := newDABServer(t, http.StatusOK, `<html>`, &query)

	_, err := New(srv.URL, time.Second).ListProducts(context.Background(), 1, 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestListProducts_Unreachable(t *testing.T) {
	// grab a free port and release it so nothing is listening
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	_, err = New("http://"+addr, time.Second).ListProducts(context.Background(), 1, 10)

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "DAB", unavailable.Dependency)
	assert.Equal(t, port, unavailable.Port)
	assert.Contains(t, unavailable.Message(), "Make sure DAB is running on port "+port+".")
}

func TestUnavailableError_DefaultAddress(t *testing.T) {
	err := &UnavailableError{Dependency: "DAB", Address: "http://localhost:5000", Port: portOf("http://localhost:5000"), Err: errors.New("connection refused")}

	assert.Equal(t, "Error connecting to DAB. Make sure DAB is running on port 5000.", err.Message())
	assert.Contains(t, err.Error(), "http://localhost:5000")
	assert.Equal(t, "443", portOf("https://dab.example.com"))
	assert.Equal(t, "80", portOf("http://dab.internal"))
}
