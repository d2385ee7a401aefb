// Package api serves the browser calculator page and the JSON decode API.
package api

import (
	"context"
	"github.com/fpawel/ltool/internal/cfg"
	"github.com/powerman/structlog"
	"net/http"
	"time"
)

var log = structlog.New()

// RunServer starts the HTTP server and returns a func stopping it.
func RunServer(addr string) context.CancelFunc {
	srv := &http.Server{
		Addr:    addr,
		Handler: NewHandler(),
	}
	log.Debug("serve http: " + addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.PrintErr(err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.ErrIfFail(func() error {
			return srv.Shutdown(ctx)
		})
	}
}

// NewHandler returns the route table: the embedded page at / and the JSON API
// under /api/.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", indexHandler)
	mux.HandleFunc("/api/colors", colorsHandler)
	mux.HandleFunc("/api/colors/", colorsRoleHandler)
	mux.HandleFunc("/api/decode", decodeHandler)
	return logRequests(mux)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !cfg.Get().LogRequests {
			next.ServeHTTP(w, r)
			return
		}
		t := time.Now()
		lw := &loggingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(lw, r)
		log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", lw.status,
			"duration", time.Since(t))
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	status int
}

func (x *loggingResponseWriter) WriteHeader(status int) {
	x.status = status
	x.ResponseWriter.WriteHeader(status)
}
