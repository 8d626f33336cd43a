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

package openapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// Schema is the parsed service contract with a router that resolves
// requests to their operations.
type Schema struct {
	// Spec is the loaded OpenAPI document.
	Spec *openapi3.T

	router routers.Router
}

// NewSchema loads and validates the generated contract.
func NewSchema() (*Schema, error) {
	spec, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("loading openapi spec: %w", err)
	}

	// NewRouter validates the document for us.
	router, err := legacy.NewRouter(spec)
	if err != nil {
		return nil, fmt.Errorf("creating openapi router: %w", err)
	}

	s := &Schema{
		Spec:   spec,
		router: router,
	}

	return s, nil
}

// FindRoute resolves a request to its route and path parameters.
func (s *Schema) FindRoute(r *http.Request) (*routers.Route, map[string]string, error) {
	route, params, err := s.router.FindRoute(r)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving route for %s %s: %w", r.Method, r.URL.Path, err)
	}

	return route, params, nil
}

// ValidateResponse checks a response to the given request conforms to the
// contract.  The request body is not re-validated, only used to locate the
// operation.
func (s *Schema) ValidateResponse(ctx context.Context, r *http.Request, status int, header http.Header, body []byte) error {
	route, params, err := s.FindRoute(r)
	if err != nil {
		return err
	}

	options := &openapi3filter.Options{
		IncludeResponseStatus: true,
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: params,
			Route:      route,
			Options:    options,
		},
		Status:  status,
		Header:  header,
		Body:    io.NopCloser(bytes.NewReader(body)),
		Options: options,
	}

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("response to %s %s violates contract: %w", r.Method, r.URL.Path, err)
	}

	return nil
}
