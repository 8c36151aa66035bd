package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modkeeper/modkeeper/pkg/errors"
)

func TestGetSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"name":"com.example.mod"}`))
	}))
	defer server.Close()

	client := New(nil)
	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"name":"com.example.mod"}`, string(resp.Body))
}

func TestGetNonSuccessStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	client := New(nil)
	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	client := New(nil)
	resp, err := client.Get(context.Background(), server.URL)
	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestDecodeJSON(t *testing.T) {
	resp := &Response{StatusCode: http.StatusOK, Body: []byte(`{"name":"com.example.mod"}`)}

	var target struct {
		Name string `json:"name"`
	}
	require.NoError(t, DecodeJSON(resp, "module.json", &target))
	assert.Equal(t, "com.example.mod", target.Name)

	resp.Body = []byte(`{"name":`)
	err := DecodeJSON(resp, "module.json", &target)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
