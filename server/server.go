// Package server exposes the movie header decoder over HTTP.
package server

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/ugparu/dtminfo/config"
	"github.com/ugparu/dtminfo/utils/logger"
)

const readHeaderTimeout = 10 * time.Second

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// Server is the HTTP inspection service.
type Server struct {
	server       *http.Server
	router       *gin.Engine
	maxBodyBytes int64
	startOnce    *sync.Once
	closeOnce    *sync.Once
	deadChan     chan any
}

// New builds a server from cfg. Nothing listens until Start is called.
func New(cfg config.ServerConfig) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	if cfg.Pprof {
		pprof.Register(router)
	}

	s := &Server{
		router:       router,
		maxBodyBytes: cfg.MaxBodyBytes,
		startOnce:    &sync.Once{},
		closeOnce:    &sync.Once{},
		deadChan:     make(chan any),
	}
	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	router.GET("/healthz", s.getHealth)
	router.POST("/v1/headers", s.postHeader)

	return s
}

func (s *Server) String() string {
	return "SERVER"
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving requests until Close is called.
func (s *Server) Start() {
	err := errors.New("HTTP server has been started already")
	s.startOnce.Do(func() {
		defer close(s.deadChan)

		logger.Infof(s, "Starting listening on %s", s.server.Addr)
		if err = s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(s, err.Error())
		}
		err = nil
	})
	if err != nil {
		logger.Error(s, err.Error())
	}
}

// Close stops the listener. It is safe to call more than once.
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		logger.Warning(s, "Stopping and closing")
		if err := s.server.Close(); err != nil {
			logger.Error(s, err.Error())
		}
	})
}

// Dead is closed once Start has returned.
func (s *Server) Dead() <-chan any {
	return s.deadChan
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debugf("HTTP", "%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
