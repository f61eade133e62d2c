package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"mirror-demo/internal/logging"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// InitRoutes mounts /metrics and /debug/frame on router
func (r *Recorder) InitRoutes(router *mux.Router) {
	router.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.HandleFunc("/debug/frame", r.getFrame).Methods(http.MethodGet)
}

func (r *Recorder) getFrame(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, r.Last())
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

// Serve runs an HTTP server for handler on addr until ctx is canceled
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	logger, ctx := logging.SubFrom(ctx, "http")

	server := http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("bindAddr", addr))
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
