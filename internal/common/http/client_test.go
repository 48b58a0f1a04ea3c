// internal/common/http/client_test.go
package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"name":"value"}`))
		case "/bad":
			_, _ = w.Write([]byte(`not json`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(time.Second)
	defer client.CloseIdleConnections()

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, client.GetJSON(context.Background(), srv.URL+"/ok", &out))
	assert.Equal(t, "value", out.Name)

	err := client.GetJSON(context.Background(), srv.URL+"/bad", &out)
	assert.ErrorIs(t, err, ErrDecodeResponse)

	err = client.GetJSON(context.Background(), srv.URL+"/missing", &out)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Error(), "unexpected status 404")
}

func TestClient_GetJSON_InvalidURL(t *testing.T) {
	client := NewClientWith(&http.Client{})

	err := client.GetJSON(context.Background(), "://nope", &struct{}{})
	assert.Error(t, err)
}
