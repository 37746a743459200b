// internal/middleware/request_info.go
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/annassetiawan/tamumu-app/internal/audit"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestInfo captures the request id, client IP and user agent and
// stores them on the context so the audit layer can attach them to
// activity log entries.
func RequestInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := audit.RequestInfo{
			RequestID: chimw.GetReqID(r.Context()),
			ClientIP:  clientIP(r),
			UserAgent: r.UserAgent(),
		}
		next.ServeHTTP(w, r.WithContext(audit.WithRequestInfo(r.Context(), info)))
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
