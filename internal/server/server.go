// Package server exposes banner composition over HTTP. It serves a
// small JSON API backed by the same pipeline the CLI uses, so internal
// tooling can request banners without shelling out.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"github.com/mwhitfield/bannersmith/internal/banner"
	"github.com/mwhitfield/bannersmith/internal/events"
	"github.com/mwhitfield/bannersmith/internal/version"
)

// composeTimeout bounds a single composition run, ImageMagick
// subprocesses included.
const composeTimeout = 60 * time.Second

// Server handles banner composition requests over HTTP.
type Server struct {
	// Composer runs the composition pipeline. Required.
	Composer *banner.Composer

	// DefaultBackground is used when a request does not name its own
	// background image.
	DefaultBackground string

	// Logger records request failures. Nil disables logging.
	Logger hclog.Logger
}

// BannerRequest is the JSON body of POST /api/banner.
type BannerRequest struct {
	Items      []string `json:"items"`
	Caption    string   `json:"caption"`
	Event      string   `json:"event"`
	Columns    int      `json:"columns"`
	QRText     string   `json:"qr_text"`
	Background string   `json:"background"`
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/api/health", s.handleHealth)
	router.GET("/api/version", s.handleVersion)
	router.GET("/api/events", s.handleEvents)
	router.POST("/api/banner", s.handleBanner)

	return router
}

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, version.GetInfo())
}

func (s *Server) handleEvents(c *gin.Context) {
	type eventEntry struct {
		Code     string `json:"code"`
		FullName string `json:"full_name"`
	}

	schemes := s.Composer.Events.All()
	out := make([]eventEntry, 0, len(schemes))
	for _, scheme := range schemes {
		out = append(out, eventEntry{Code: scheme.Code, FullName: scheme.FullName})
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}

func (s *Server) handleBanner(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items is required"})
		return
	}
	if req.Caption == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caption is required"})
		return
	}
	if req.Event == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event is required"})
		return
	}

	background := req.Background
	if background == "" {
		background = s.DefaultBackground
	}
	if background == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "background is required (no default configured)"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), composeTimeout)
	defer cancel()

	result, err := s.Composer.Compose(ctx, banner.Request{
		Items:            req.Items,
		BackgroundPath:   background,
		Caption:          req.Caption,
		EventCode:        req.Event,
		PreferredColumns: req.Columns,
		QRText:           req.QRText,
	})
	if err != nil {
		var unknown *events.UnknownCodeError
		if errors.As(err, &unknown) {
			c.JSON(http.StatusBadRequest, gin.H{"error": unknown.Error()})
			return
		}
		s.logger().Error("composition failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "composition failed"})
		return
	}

	var buf bytes.Buffer
	if err := banner.Encode(&buf, result.Image); err != nil {
		s.logger().Error("encoding failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encoding failed"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Header("X-Items-Placed", fmt.Sprintf("%d", len(result.Placed)))
	c.Header("X-Items-Skipped", fmt.Sprintf("%d", len(result.Skipped)))
	c.Data(http.StatusOK, "image/webp", buf.Bytes())
}

func (s *Server) logger() hclog.Logger {
	if s.Logger == nil {
		return hclog.NewNullLogger()
	}
	return s.Logger
}
