package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tamzrod/slotboard/internal/display"
	"github.com/tamzrod/slotboard/internal/logger"
)

// Server exposes a Board over HTTP. It only reads; the poll cycle is
// the Board's single writer.
type Server struct {
	board   *display.Board
	refresh time.Duration
	log     *logger.Logger
	router  *gin.Engine
}

// New builds the HTTP surface. refresh sets how often the HTML page reloads.
func New(board *display.Board, refresh time.Duration, log *logger.Logger) *Server {
	s := &Server{
		board:   board,
		refresh: refresh,
		log:     log,
		router:  gin.New(),
	}
	s.router.Use(gin.Recovery())
	SetupRoutes(s.router, s)
	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func SetupRoutes(router *gin.Engine, s *Server) {
	router.Use(CORSMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", s.getBoard)

	api := router.Group("/api")
	{
		api.GET("/view", s.getView)
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Cache-Control")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// getView returns the current regions as JSON
func (s *Server) getView(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(s.board.Regions()))
}

// getBoard renders the current regions as a self-refreshing page
func (s *Server) getBoard(c *gin.Context) {
	refresh := int(s.refresh / time.Second)
	if refresh < 1 {
		refresh = 1
	}

	data := struct {
		Title   string
		Refresh int
		IDs     regionIDs
		Regions display.Regions
	}{
		Title:   "Slot board",
		Refresh: refresh,
		IDs: regionIDs{
			Slots:     display.RegionSlots,
			Available: display.RegionAvailable,
			Busy:      display.RegionBusy,
			Away:      display.RegionAway,
			Total:     display.RegionTotal,
			Uptime:    display.RegionUptime,
			History:   display.RegionHistory,
		},
		Regions: s.board.Regions(),
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := boardTemplate.Execute(c.Writer, data); err != nil {
		s.log.Errorf("board page render failed: %v", err)
	}
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("http surface listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
