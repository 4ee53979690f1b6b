package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnaize/bouncer/src/core/filter"
	"github.com/cnaize/bouncer/src/core/logger"
)

func newRouter(t *testing.T, spec, pattern string) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	f, err := filter.New(context.Background(), spec, pattern, filter.Options{})
	require.NoError(t, err)

	r := gin.New()
	Register(r, filter.NewRef(f), logger.NewNop())

	return r
}

func TestCheckCandidate(t *testing.T) {
	r := newRouter(t, "10.0.0.0/24,user:alice", "")

	tests := []struct {
		name     string
		body     string
		status   int
		filtered bool
		reason   string
	}{
		{
			name:     "matched address",
			body:     `{"candidate":"10.0.0.5"}`,
			status:   http.StatusOK,
			filtered: true,
			reason:   filter.ReasonIPList,
		},
		{
			name:     "matched token",
			body:     `{"candidate":"ALICE"}`,
			status:   http.StatusOK,
			filtered: true,
			reason:   filter.ReasonOther,
		},
		{
			name:   "passed",
			body:   `{"candidate":"192.168.0.1"}`,
			status: http.StatusOK,
		},
		{
			name:   "missing candidate",
			body:   `{}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.status, w.Code)
			if tt.status != http.StatusOK {
				return
			}

			var out struct {
				Filtered bool   `json:"filtered"`
				Reason   string `json:"reason"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
			assert.Equal(t, tt.filtered, out.Filtered)
			assert.Equal(t, tt.reason, out.Reason)
		})
	}
}

func TestFilterInfo(t *testing.T) {
	r := newRouter(t, "10.0.0.1,10.0.0.0/24,user:bob", "^bot-")

	req := httptest.NewRequest(http.MethodGet, "/v1/filter", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Spec    string `json:"spec"`
		Pattern string `json:"pattern"`
		Addrs   int    `json:"addrs"`
		Ranges  int    `json:"ranges"`
		Tokens  int    `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "10.0.0.1,10.0.0.0/24,user:bob", out.Spec)
	assert.Equal(t, "^bot-", out.Pattern)
	assert.Equal(t, 1, out.Addrs)
	assert.Equal(t, 1, out.Ranges)
	assert.Equal(t, 1, out.Tokens)
}
