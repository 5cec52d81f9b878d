// Package health exposes a one-route HTTP liveness endpoint for the
// deployment platform's health probes.
package health

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/yusufisl4m/pera-assistant/pkg/logx"
)

type Service struct {
	addr string
	log  logx.Logger

	mu  sync.Mutex
	srv *http.Server
}

func New(addr string, log logx.Logger) *Service {
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Service{addr: addr, log: log}
}

func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Pera Assistant is running smoothly! 🚀"))
	})

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.srv = srv

	go func() {
		s.log.Info("health endpoint listening", logx.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Warn("health endpoint stopped", logx.Err(err))
		}
	}()
}

func (s *Service) Stop(ctx context.Context) {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.mu.Unlock()
	if srv == nil {
		return
	}
	_ = srv.Shutdown(ctx)
}
