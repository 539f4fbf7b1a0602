package middleware

import (
	"mime"
	"net/http"

	"github.com/vfg2006/seller-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/seller-dashboard-api/pkg/log"
)

// maxJSONBody bounds request bodies accepted by RequireJSON.
const maxJSONBody = 64 << 10

// RequireJSON rejects requests whose body is not declared as JSON and caps
// the body size.
func RequireJSON() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != "application/json" {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("request rejected: body is not JSON")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Content-Type must be application/json", nil)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
			next.ServeHTTP(w, r)
		})
	}
}
