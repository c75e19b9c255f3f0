// Package http exposes the ledger as a thin JSON API. Identity comes from
// headers set by the authentication collaborator; the ledger itself never
// talks to the identity provider.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"finledger/internal/cache"
	"finledger/internal/catalog"
	"finledger/internal/ledger"
	applog "finledger/internal/log"
	"finledger/internal/report"
)

// Identity headers supplied by the auth collaborator in front of this
// service.
const (
	HeaderUserEmail = "X-User-Email"
	HeaderUserName  = "X-User-Name"
)

type api struct {
	ledger  ledger.Ledger
	catalog *catalog.Catalog
	reports *cache.LRU[report.Summary]
}

// NewServer builds the HTTP server. reports may be nil to disable report
// caching.
func NewServer(addr string, led ledger.Ledger, cat *catalog.Catalog, reports *cache.LRU[report.Summary]) *http.Server {
	a := &api{
		ledger:  led,
		catalog: cat,
		reports: reports,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", a.handleHealth)
	mux.HandleFunc("GET /api/categories", a.handleCategories)
	mux.HandleFunc("POST /api/transactions", a.handleCreate)
	mux.HandleFunc("GET /api/transactions", a.handleList)
	mux.HandleFunc("GET /api/transactions/{id}", a.handleGet)
	mux.HandleFunc("PUT /api/transactions/{id}", a.handleUpdate)
	mux.HandleFunc("DELETE /api/transactions/{id}", a.handleDelete)
	mux.HandleFunc("GET /api/reports", a.handleReport)

	return &http.Server{
		Addr:    addr,
		Handler: withRequestLog(mux),
	}
}

func (a *api) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withRequestLog logs every request with method, path, status and
// duration.
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.InfoContext(r.Context(), "Request handled",
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatusCode, rec.status,
			applog.FieldDuration, time.Since(start).Milliseconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
