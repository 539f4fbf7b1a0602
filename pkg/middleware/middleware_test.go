package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCors(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		origin      string
		method      string
		wantStatus  int
		wantOrigin  string
		wantCredent string
	}{
		{
			name:        "listed origin is echoed",
			allowed:     []string{"http://localhost:3000/"},
			origin:      "http://localhost:3000",
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantOrigin:  "http://localhost:3000",
			wantCredent: "true",
		},
		{
			name:       "wildcard allows any origin",
			allowed:    []string{"*"},
			origin:     "https://seller.example.com",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantOrigin: "*",
		},
		{
			name:       "unlisted origin gets no headers",
			allowed:    []string{"http://localhost:3000"},
			origin:     "https://evil.example.com",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:        "preflight short-circuits",
			allowed:     []string{"http://localhost:3000"},
			origin:      "http://localhost:3000",
			method:      http.MethodOptions,
			wantStatus:  http.StatusNoContent,
			wantOrigin:  "http://localhost:3000",
			wantCredent: "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/overview", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredent, rec.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestRequireJSON(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantStatus  int
	}{
		{name: "json", contentType: "application/json", wantStatus: http.StatusOK},
		{name: "json with charset", contentType: "application/json; charset=utf-8", wantStatus: http.StatusOK},
		{name: "form", contentType: "application/x-www-form-urlencoded", wantStatus: http.StatusBadRequest},
		{name: "missing", contentType: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/insights/ask", strings.NewReader(`{"question":"hi"}`))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()

			RequireJSON()(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusBadRequest {
				assert.Contains(t, rec.Body.String(), `"VAL_003"`)
			}
		})
	}
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Test")
		w.WriteHeader(http.StatusAccepted)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
	req.Header.Set("X-Test", "value")
	rec := httptest.NewRecorder()

	LoggingMiddleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "value", seen)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		LogPanicMiddleware()(panicking).ServeHTTP(rec, req)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"SRV_001"`)
}

func TestLoggingResponseWriter_KeepsFirstStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	lrw := newLoggingResponseWriter(rec)

	lrw.WriteHeader(http.StatusNotFound)
	lrw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, lrw.statusCode)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
