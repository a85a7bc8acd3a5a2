package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pantryhq/shoplist/internal/config"
	"github.com/pantryhq/shoplist/internal/server/middlewares"
)

const (
	apiPrefix     = "/api"
	apiV1Prefix   = "/api/v1"
	metricsPath   = "/metrics"
	shutdownGrace = 10 * time.Second
)

type Server struct {
	srv    *http.Server
	engine *gin.Engine
}

// NewServer builds the engine and hands the /api/v1 group to registerHandlerFn.
func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	prod := cfg.Server.Mode == "prod"
	if prod {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.GET(metricsPath, gin.WrapH(promhttp.Handler()))

	api := engine.Group(apiV1Prefix, middlewares.Logger(), ginzap.RecoveryWithZap(zap.L(), true))
	registerHandlerFn(api)

	if prod {
		if err := serveStatics(engine, cfg.Server.StaticsFolder); err != nil {
			return nil, err
		}
	} else {
		engine.NoRoute(apiNotFound)
	}

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Address, strconv.Itoa(cfg.Server.HTTPPort)),
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Handler exposes the engine, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the server stops. A graceful Stop returns nil.
func (s *Server) Start(ctx context.Context) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }

	zap.S().Named("server").Infow("http server listening", "address", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownGrace)
	defer cancel()

	zap.S().Named("server").Info("shutting down http server")
	return s.srv.Shutdown(ctx)
}

func serveStatics(engine *gin.Engine, folder string) error {
	index := filepath.Join(folder, "index.html")
	if _, err := os.Stat(index); err != nil {
		return fmt.Errorf("statics folder %q has no index.html: %w", folder, err)
	}

	engine.Static("/static", folder)
	engine.StaticFile("/favicon.ico", filepath.Join(folder, "favicon.ico"))
	engine.StaticFile("/", index)
	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
			apiNotFound(c)
			return
		}
		c.File(index)
	})
	return nil
}

func apiNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
}
