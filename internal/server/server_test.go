package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddr(t *testing.T) {
	assert.Equal(t, "", normalizeAddr(""))
	assert.Equal(t, ":8080", normalizeAddr("8080"))
	assert.Equal(t, ":8080", normalizeAddr(":8080"))
}

func TestHandler_CORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Session-Token", "tok")
		w.WriteHeader(http.StatusOK)
	})
	h := New(NewCORS([]string{"http://localhost:5173"})).Handler(ok)

	cases := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{"allowed origin", "http://localhost:5173", "http://localhost:5173"},
		{"other origin", "http://evil.example", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
			req.Header.Set("Origin", tc.origin)
			h.ServeHTTP(w, req)

			assert.Equal(t, tc.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			if tc.wantOrigin != "" {
				assert.Equal(t, "X-Session-Token", w.Header().Get("Access-Control-Expose-Headers"))
			}
		})
	}
}

func TestHandler_Preflight(t *testing.T) {
	h := New(NewCORS([]string{"*"})).Handler(http.NotFoundHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/auth/sign-in", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandler_NilCORSPassesThrough(t *testing.T) {
	h := New(nil).Handler(http.NotFoundHandler())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
