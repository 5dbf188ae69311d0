package main

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/bookriapp/bookri/pkg/config"
	"github.com/bookriapp/bookri/pkg/database"
	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/bookriapp/bookri/pkg/server"
	"github.com/bookriapp/bookri/pkg/version"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/robinjoseph08/golib/signals"
)

func main() {
	ctx := context.Background()
	log := logger.New()

	log.Info("starting bookri", logger.Data{"version": version.Version})

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	backend, cleanup, err := newBackend(ctx, cfg)
	if err != nil {
		log.Err(err).Fatal("backend error")
	}

	docs := docstore.NewDocuments(backend)
	docs.InitAll(ctx)
	log.Info("documents initialized", logger.Data{"backend": cfg.DocumentBackend})

	srv, err := server.New(cfg, docs)
	if err != nil {
		log.Err(err).Fatal("server error")
	}

	graceful := signals.Setup()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
		lc := net.ListenConfig{}
		listener, err := lc.Listen(ctx, "tcp", addr)
		if err != nil {
			log.Err(err).Fatal("failed to bind port")
		}

		// Extract actual port (useful when ServerPort is 0)
		actualPort := listener.Addr().(*net.TCPAddr).Port
		log.Info("server started", logger.Data{"port": actualPort})

		err = srv.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Err(err).Fatal("server stopped")
		}
		log.Info("server stopped")
	}()

	<-graceful
	log.Info("starting graceful shutdown")

	err = srv.Shutdown(ctx)
	if err != nil {
		log.Err(err).Error("server shutdown error")
	}
	log.Info("server shutdown")

	err = cleanup()
	if err != nil {
		log.Err(err).Error("backend close error")
	}
	log.Info("backend closed")
}

// newBackend builds the configured document backend. The cleanup function
// closes whatever the backend holds open.
func newBackend(ctx context.Context, cfg *config.Config) (docstore.Backend, func() error, error) {
	switch cfg.DocumentBackend {
	case config.BackendSQLite:
		db, err := database.New(cfg)
		if err != nil {
			return nil, nil, errors.WithStack(err)
		}
		backend, err := docstore.NewSQLiteBackend(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, errors.WithStack(err)
		}
		return backend, db.Close, nil
	case config.BackendFile:
		backend, err := docstore.NewFileBackend(cfg.DataDirectory)
		if err != nil {
			return nil, nil, errors.WithStack(err)
		}
		return backend, func() error { return nil }, nil
	default:
		return nil, nil, errors.Errorf("unknown document backend: %s", cfg.DocumentBackend)
	}
}
