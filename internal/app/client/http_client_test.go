package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"junebug/internal/app/client/config"
	"junebug/internal/domain/user"
)

func newTestHTTPClient(t *testing.T, handler http.HandlerFunc) *httpClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{ServerAddress: strings.TrimPrefix(srv.URL, "http://")}
	return NewHTTPClient(cfg, slog.Default())
}

func TestHTTPClient_ParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:   "success envelope",
			status: http.StatusOK,
			body:   `{"success":true,"response":{"userId":"5d1a3c7e-0000-4000-8000-000000000001","username":"june","accessToken":"T"}}`,
		},
		{
			name:    "failure envelope",
			status:  http.StatusNotFound,
			body:    `{"success":false,"response":"User or password does not match"}`,
			wantErr: "User or password does not match",
		},
		{
			name:    "not an envelope",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			wantErr: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/signin", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			acc, err := h.SignIn(context.Background(), user.SignInRequest{Username: "june", Password: "hunter2x"})
			if tt.wantErr != "" {
				require.Error(t, err)
				var serverErr *ServerError
				require.ErrorAs(t, err, &serverErr)
				assert.Equal(t, tt.status, serverErr.Status)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "june", acc.Username)
			assert.Equal(t, "T", acc.AccessToken)
		})
	}
}

func TestHTTPClient_SendsBearerToken(t *testing.T) {
	var got string
	h := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"response":{"id":1,"category":"water","text":"Water early"}}`))
	})
	h.SetToken("abc")

	tip, err := h.Tip(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc", got)
	assert.Equal(t, "Water early", tip.Text)
}
