package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riftcup/gateway/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientFor(serverURL string) *Client {
	cfg := &config.Config{}
	cfg.Backend.TeamsURL = serverURL
	cfg.Backend.TimeoutSeconds = 5
	return NewClient(cfg)
}

func TestDoDecodesSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":"ok"}`))
	}))
	defer server.Close()

	client := clientFor(server.URL)
	var out struct {
		Value string `json:"value"`
	}
	err := client.Do(context.Background(), Request{
		Method: http.MethodPost,
		URL:    client.TeamsURL,
		Body:   map[string]string{"ping": "pong"},
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Value)
}

func TestDoMergesQueryIntoURL(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("status")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := clientFor(server.URL)
	err := client.Do(context.Background(), Request{
		Method: http.MethodGet,
		URL:    client.TeamsURL,
		Query:  map[string][]string{"status": {"pending"}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "pending", gotQuery)
}

func TestDoReturnsAPIErrorWithBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Команда с таким названием уже существует"}`))
	}))
	defer server.Close()

	client := clientFor(server.URL)
	err := client.Do(context.Background(), Request{Method: http.MethodPost, URL: client.TeamsURL}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Команда с таким названием уже существует", apiErr.Message)
}

func TestDoFallsBackToMessageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"bad input"}`))
	}))
	defer server.Close()

	client := clientFor(server.URL)
	err := client.Do(context.Background(), Request{Method: http.MethodGet, URL: client.TeamsURL}, nil)

	assert.Equal(t, "bad input", UserMessage(err, "fallback"))
}

func TestUserMessage(t *testing.T) {
	withMessage := &APIError{StatusCode: 400, Message: "Неверный запрос"}
	assert.Equal(t, "Неверный запрос", UserMessage(withMessage, "fallback"))

	blank := &APIError{StatusCode: 500}
	assert.Equal(t, "fallback", UserMessage(blank, "fallback"))

	network := errors.New("dial tcp: connection refused")
	assert.Equal(t, "fallback", UserMessage(network, "fallback"))
}

func TestAuthHeaderSkipsEmptyToken(t *testing.T) {
	assert.Empty(t, AuthHeader(HeaderAuthToken, ""))
	h := AuthHeader(HeaderAdminToken, "tok")
	assert.Equal(t, "tok", h.Get(HeaderAdminToken))
}
