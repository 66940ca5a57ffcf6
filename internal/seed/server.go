package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/concursos/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// ContestsPath is where the stand-in backend serves the collection.
const ContestsPath = "/api/concursos"

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// NewHandler serves contests at ContestsPath the way the real backend does.
func NewHandler(contests []Contest) http.Handler {
	body, err := json.Marshal(Payload{Contests: contests})
	mux := http.NewServeMux()
	mux.HandleFunc(ContestsPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(body)
	})
	return mux
}

// Serve runs the stand-in backend on addr until ctx is canceled.
func Serve(ctx context.Context, addr string, contests []Contest) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(contests),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Get().Info(gctx, "serving seed contests",
			logger.String("addr", addr),
			logger.String("path", ContestsPath),
			logger.Int("count", len(contests)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("seed server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("seed server shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
