package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/advocates/config"
	"github.com/meghashyamc/advocates/db/kvdb"
	"github.com/meghashyamc/advocates/db/pgdb"
	"github.com/meghashyamc/advocates/db/searchdb"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/services/records"
	"github.com/meghashyamc/advocates/validation"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	cfg        *config.Config
	router     *gin.Engine
	httpServer *http.Server
	source     *records.Fallback
	facetDB    searchdb.DB
	validator  *validation.Validator
	logger     logger.Logger
	closers    []func() error
}

func Run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)

	defer cancel()

	s := &server{
		cfg:    cfg,
		logger: logger.New(cfg.GetLogLevel()),
	}
	defer s.close()

	if err := s.setupDependencies(ctx); err != nil {
		return err
	}
	s.setupRouter()
	s.setupHTTPServer()

	return s.serve(ctx)
}

// setupDependencies picks the record source once: postgres, else the bbolt snapshot, else seed only.
func (s *server) setupDependencies(ctx context.Context) error {
	var err error
	s.validator, err = validation.New(s.logger)
	if err != nil {
		s.logger.Error("error creating validator", "err", err.Error())
		return err
	}

	opts := []records.Option{
		records.WithValidator(s.validator),
		records.WithTimeout(s.cfg.GetSourceTimeout()),
	}

	switch {
	case len(s.cfg.GetDatabaseURL()) > 0:
		postgres, err := pgdb.New(ctx, s.logger, s.cfg.GetDatabaseURL())
		if err != nil {
			// seed data still serves every request
			s.logger.Error("error creating postgres source, serving seed data only", "err", err.Error())
			break
		}
		s.closers = append(s.closers, postgres.Close)
		opts = append(opts, records.WithPrimary(pgdb.SourceName, postgres))

	case len(s.cfg.GetSnapshotPath()) > 0:
		boltDB, err := kvdb.New(s.logger, s.cfg.GetSnapshotPath())
		if err != nil {
			s.logger.Error("error opening snapshot, serving seed data only", "err", err.Error())
			break
		}
		s.closers = append(s.closers, boltDB.Close)
		opts = append(opts, records.WithPrimary(kvdb.SourceName, kvdb.NewSnapshotStore(s.logger, boltDB)))
	}

	s.source = records.NewFallback(s.logger, opts...)
	s.facetDB = searchdb.New(s.logger)
	s.logger.Info("record source selected", "source", s.source.Name())

	return nil

}

func (s *server) setupRouter() {
	router := newRouter(s.logger)

	setupRoutes(router, s.logger, s.source, s.facetDB)

	s.router = router
}

func (s *server) setupHTTPServer() {

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%s", s.cfg.GetPort()),
		Handler:           s.router.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (s *server) serve(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		s.logger.Info("starting http server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		s.logger.Info("starting to shut down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("error shutting down http server", "err", err)
			return err
		}
		s.logger.Info("shut down http server successfully")
		return nil
	})

	return group.Wait()
}

func (s *server) close() {
	for _, closer := range s.closers {
		if err := closer(); err != nil {
			s.logger.Error("error closing dependency", "err", err.Error())
		}
	}
}
