/*
Copyright 2024-2025 the Unikorn Authors.
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

package api

import (
	"net/http/httptest"
	"time"

	"github.com/go-logr/logr"

	"github.com/nscaledev/chargepoint-e2e/pkg/server"
	"github.com/nscaledev/chargepoint-e2e/pkg/store"
)

// Stub is an in-process instance of the reference charge point service, used
// when START_STUB is set so the suites can run without a deployment.
type Stub struct {
	Store *store.Store
	API   *httptest.Server
	UI    *httptest.Server
}

// StartStub starts the stub API and UI on ephemeral ports.
func StartStub(logger logr.Logger, title string) (*Stub, error) {
	options := &server.Options{
		Title:           title,
		AllowedOrigins:  []string{"*"},
		ReadTimeout:     time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}

	s := store.New()
	srv := server.New(options, s)

	api := httptest.NewServer(srv.APIHandler(logger))

	uiHandler, err := srv.UIHandler(logger, api.URL)
	if err != nil {
		api.Close()
		return nil, err
	}

	return &Stub{
		Store: s,
		API:   api,
		UI:    httptest.NewServer(uiHandler),
	}, nil
}

// Configure points the configuration at the stub.
func (s *Stub) Configure(config *TestConfig) {
	config.BaseURL = s.API.URL
	config.UIBaseURL = s.UI.URL
}

func (s *Stub) Close() {
	s.UI.Close()
	s.API.Close()
}
