package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dreamsourcil/booking/api"
	"github.com/dreamsourcil/booking/config"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the front-end facing routes: candidate days, labeled
// slots, commit, and the presentation endpoints (catalog, salon info).
func NewRouter(schedule *api.ScheduleHandler, bookings *api.BookingHandler, cat *api.CatalogHandler) *gin.Engine {
	router := gin.Default()
	schedule.Register(router.Group("/"))
	bookings.Register(router.Group("/bookings"))
	cat.Register(router.Group("/"))
	return router
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
