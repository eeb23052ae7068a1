package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"notekeeper-backend/pkg/logutil"
)

// ShutdownTimeout bounds how long in-flight requests get once ctx is done.
var ShutdownTimeout = 30 * time.Second

// Serve runs handler on bind until ctx is cancelled or the listener fails.
// A cancelled ctx is a clean stop and returns nil.
func Serve(ctx context.Context, bind string, handler http.Handler) error {
	server := http.Server{
		Handler:           handler,
		Addr:              bind,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute * 2,
	}
	err := make(chan error, 1)
	done := make(chan struct{})
	go serveInBackground(ctx, &server, err, done)
	<-done
	return <-err
}

// serveInBackground closes done only after Shutdown has returned, so Serve
// cannot report before in-flight requests drain. firstErr is buffered and
// closed by the listener goroutine, leaving nil when the server stopped cleanly.
func serveInBackground(ctx context.Context, server *http.Server, firstErr chan<- error, done chan<- struct{}) {
	log := logutil.Component(ctx, "httpserver").With().Str("server.addr", server.Addr).Logger()
	defer close(done)
	serverCtx, cancel := context.WithCancel(ctx)
	go func() {
		defer cancel()
		defer close(firstErr)
		log.Info().Msg("Starting HTTP server")
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			log.Info().Msg("Server closed")
			return
		} else if err != nil {
			firstErr <- err
		}
	}()
	select {
	case <-serverCtx.Done():
	case <-ctx.Done():
		log.Info().Msg("Initiating shutdown process")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancelShutdown()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("Shutdown did not complete cleanly")
		}
		log.Info().Msg("Shutdown completed")
	}
}
