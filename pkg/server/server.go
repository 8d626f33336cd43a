/*
Copyright 2026 Nscale.

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

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/nscaledev/chargepoint-e2e/pkg/openapi"
	"github.com/nscaledev/chargepoint-e2e/pkg/server/handler"
	"github.com/nscaledev/chargepoint-e2e/pkg/server/ui"
	"github.com/nscaledev/chargepoint-e2e/pkg/store"

	coreerrors "github.com/unikorn-cloud/core/pkg/server/errors"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Server is a reference implementation of the charge point service used to
// exercise the test harness without the real application.
type Server struct {
	options *Options
	store   *store.Store
	metrics *metrics
}

func New(options *Options, store *store.Store) *Server {
	return &Server{
		options: options,
		store:   store,
		metrics: newMetrics(),
	}
}

// loggingMiddleware attaches a request scoped logger to the context.
func loggingMiddleware(logger logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			requestLogger := logger.WithValues("requestID", middleware.GetReqID(ctx))

			next.ServeHTTP(w, r.WithContext(log.IntoContext(ctx, requestLogger)))
		})
	}
}

// handleRouteError reports parameters the generated router cannot bind.
func handleRouteError(w http.ResponseWriter, r *http.Request, err error) {
	coreerrors.HandleError(w, r, coreerrors.OAuth2InvalidRequest("invalid request parameters").WithError(err))
}

// APIHandler returns the charge point API.
func (s *Server) APIHandler(logger logr.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(loggingMiddleware(logger.WithName("api")))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.options.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Traceparent", "Tracestate"},
	}))

	router.Method(http.MethodGet, "/metrics", s.metrics.handler())

	router.Group(func(r chi.Router) {
		r.Use(s.metrics.middleware)

		openapi.HandlerWithOptions(handler.New(s.store), openapi.ChiServerOptions{
			BaseRouter:       r,
			ErrorHandlerFunc: handleRouteError,
		})
	})

	return router
}

// UIHandler returns the browser UI, which talks to the API at apiBaseURL.
func (s *Server) UIHandler(logger logr.Logger, apiBaseURL string) (http.Handler, error) {
	h, err := ui.New(&ui.Options{
		Title:      s.options.Title,
		APIBaseURL: apiBaseURL,
	})
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(loggingMiddleware(logger.WithName("ui")))

	h.Routes(router)

	return router, nil
}

func (s *Server) newHTTPServer(ctx context.Context, addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  s.options.ReadTimeout,
		WriteTimeout: s.options.WriteTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

// Run serves the API and UI until the context is cancelled, or either
// listener fails.
func (s *Server) Run(ctx context.Context) error {
	logger := log.FromContext(ctx)

	uiHandler, err := s.UIHandler(logger, s.options.APIBaseURL)
	if err != nil {
		return err
	}

	servers := map[string]*http.Server{
		"api": s.newHTTPServer(ctx, s.options.APIListenAddress, s.APIHandler(logger)),
		"ui":  s.newHTTPServer(ctx, s.options.UIListenAddress, uiHandler),
	}

	group, groupCtx := errgroup.WithContext(ctx)

	for name, server := range servers {
		group.Go(func() error {
			logger.Info("listening", "server", name, "address", server.Addr)

			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("%s server: %w", name, err)
			}

			return nil
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()

		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.options.ShutdownTimeout)
		defer cancel()

		var errs []error

		for _, server := range servers {
			if err := server.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}

		return errors.Join(errs...)
	})

	return group.Wait()
}
