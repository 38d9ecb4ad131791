package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/hotelbooking/api"
	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/Domenick1991/hotelbooking/internal/service/catalog"
	"github.com/Domenick1991/hotelbooking/internal/service/session"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP API server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, catalogSvc catalog.CatalogUseCase, sessionSvc session.SessionUseCase, history repository.BookingHistoryRepository) error {
	router := newRouter(catalogSvc, sessionSvc, history)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(catalogSvc catalog.CatalogUseCase, sessionSvc session.SessionUseCase, history repository.BookingHistoryRepository) *gin.Engine {
	router := gin.Default()

	api.NewCatalogHandler(catalogSvc).Register(router.Group("/"))
	api.NewSessionHandler(sessionSvc).Register(router.Group("/sessions"))
	if history != nil {
		api.NewHistoryHandler(history).Register(router.Group("/bookings"))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
