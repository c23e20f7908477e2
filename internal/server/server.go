package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	brandhandler "github.com/dcastano/optica-inventory/internal/brand/handler"
	lenshandler "github.com/dcastano/optica-inventory/internal/lens/handler"
)

// Server binds the domain handlers plus health and metrics endpoints onto one
// HTTP listener.
type Server struct {
	httpServer *http.Server
}

func New(addr string, lensH *lenshandler.LensHandler, brandH *brandhandler.BrandHandler) *Server {
	mux := http.NewServeMux()
	lensH.Register(mux)
	brandH.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
