/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/advisorhq/web/internal/cache"
	"github.com/advisorhq/web/internal/config"
	"github.com/advisorhq/web/internal/page"
	"github.com/advisorhq/web/internal/render"
	"github.com/advisorhq/web/internal/repository"
	"github.com/advisorhq/web/internal/seed"
	"github.com/advisorhq/web/internal/tenant"
	"github.com/advisorhq/web/internal/tools"
	"github.com/advisorhq/web/internal/web/server"
)

func main() {
	var configFile string
	var addr string
	var verbosity int

	flag.StringVar(&configFile, "config-file", "", "The path to a configuration yaml file.")
	flag.StringVar(&addr, "bind-address", "", "The address the webserver binds to; overrides the config file.")
	flag.IntVar(&verbosity, "v", 0, "Log verbosity level.")
	flag.Parse()

	zapLog, err := zap.NewProduction(zap.IncreaseLevel(zapcore.Level(-verbosity)))
	if err != nil {
		panic(err)
	}
	defer zapLog.Sync() //nolint:errcheck
	log := zapr.NewLogger(zapLog)
	setupLog := log.WithName("setup")

	cfg, err := config.Load(configFile)
	if err != nil {
		setupLog.Error(err, "unable to load configuration", "config-file", configFile)
		os.Exit(1)
	}
	if addr != "" {
		cfg.Addr = addr
	}

	repo, cleanup, err := newRepository(cfg, setupLog)
	if err != nil {
		setupLog.Error(err, "unable to open tenant repository")
		os.Exit(1)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := tenant.NewStore(repo, log)
	if err := store.Load(ctx); err != nil {
		setupLog.Error(err, "unable to load tenants")
		os.Exit(1)
	}

	if cfg.Seed && store.Count() == 0 {
		setupLog.Info("seeding demo tenants")
		if err := seed.Apply(ctx, store); err != nil {
			setupLog.Error(err, "unable to seed tenants")
			os.Exit(1)
		}
	}

	cacheManager, err := cache.NewManager(cfg.ValkeyAddr, time.Duration(cfg.CacheTTL))
	if err != nil {
		setupLog.Error(err, "unable to create cache manager", "valkey", cfg.ValkeyAddr)
		os.Exit(1)
	}

	var generation atomic.Int64
	store.OnUpdate(func(tenantID string) {
		gen := generation.Add(1)
		if err := cacheManager.Cycle(gen); err != nil {
			log.Error(err, "unable to cycle cache", "tenant", tenantID, "generation", gen)
		}
	})

	renderer, err := render.NewRenderer(tools.NewEmbedder(), log)
	if err != nil {
		setupLog.Error(err, "unable to create renderer")
		os.Exit(1)
	}

	pages := page.NewService(store, log)
	handler := server.NewHandler(pages, renderer, cacheManager, log)
	srv := server.New(cfg.Addr, store, handler, log)

	go func() {
		<-ctx.Done()
		setupLog.Info("shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			setupLog.Error(err, "problem shutting down web server")
		}
	}()

	setupLog.Info("starting web server", "addr", cfg.Addr, "tenants", store.Count())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		setupLog.Error(err, "problem running web server")
		os.Exit(1)
	}
}

func newRepository(cfg config.Config, setupLog logr.Logger) (tenant.Repository, func(), error) {
	if cfg.DataDir == "" {
		setupLog.Info("no data directory configured, tenants are in-memory only")
		return repository.NewMemory(), func() {}, nil
	}

	sqlite, err := repository.NewSQLite(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	setupLog.Info("tenant database opened", "path", sqlite.Path())
	return sqlite, func() { _ = sqlite.Close() }, nil
}
