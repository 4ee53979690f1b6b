package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cnaize/bouncer/src/api"
	"github.com/cnaize/bouncer/src/core/filter"
	"github.com/cnaize/bouncer/src/core/logger"
)

type Server struct {
	router *gin.Engine
	server *http.Server
}

func NewServer(
	addr,
	username,
	password string,
	flt *filter.Ref,
	logger *logger.Logger,
) *Server {
	r := gin.New()
	r.Use(gin.BasicAuth(gin.Accounts{username: password}), gin.Recovery())

	api.Register(r, flt, logger)

	return &Server{
		router: r,
		server: &http.Server{
			Addr:    addr,
			Handler: r,
		},
	}
}

func (s *Server) Run(ctx context.Context) error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
