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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/nscaledev/chargepoint-e2e/pkg/openapi"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	// ErrUnexpectedStatus is returned when the service responds with a status
	// the caller did not ask for.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrChargePointNotFound is returned when a serial number lookup fails.
	ErrChargePointNotFound = errors.New("charge point not found")
)

const (
	// anyStatus hands every response back to the caller.
	anyStatus = 0

	// anySuccess accepts any 2xx status.
	anySuccess = -1
)

//go:generate mockgen -source=api_client.go -destination=mock/interfaces.go -package=mock

// ChargePointInterface is the set of charge point operations the fixtures
// depend on.
type ChargePointInterface interface {
	// ListChargePoints returns all charge points, and fails on a non-2xx status.
	ListChargePoints(ctx context.Context) (openapi.ChargePoints, error)
	// AddChargePoint creates a charge point, but does not check the status.
	AddChargePoint(ctx context.Context, serialNumber string) (*AddChargePointResponse, error)
	// DeleteChargePoint deletes a charge point, but does not check the status.
	DeleteChargePoint(ctx context.Context, id string) (*DeleteChargePointResponse, error)
}

// AddChargePointResponse exposes the outcome of a create, successful or not,
// so tests can check both.
type AddChargePointResponse struct {
	// Status is the HTTP status code.
	Status int
	// Data is the decoded JSON object, nil if the body was not one.
	Data map[string]interface{}
	// Body is the raw response body.
	Body []byte
}

// ChargePoint decodes the body as a charge point.
func (r *AddChargePointResponse) ChargePoint() (*openapi.ChargePoint, error) {
	var chargePoint openapi.ChargePoint

	if err := json.Unmarshal(r.Body, &chargePoint); err != nil {
		return nil, fmt.Errorf("unmarshaling charge point response: %w", err)
	}

	return &chargePoint, nil
}

// DeleteChargePointResponse exposes the outcome of a delete.
type DeleteChargePointResponse struct {
	// Status is the HTTP status code.
	Status int
}

type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
	schema    *openapi.Schema
}

var _ ChargePointInterface = &APIClient{}

func NewAPIClient(baseURL string) (*APIClient, error) {
	config, err := LoadTestConfig()
	if err != nil {
		return nil, err
	}

	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL)
}

func NewAPIClientWithConfig(config *TestConfig) (*APIClient, error) {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string) (*APIClient, error) {
	c := &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}

	if config.ValidateResponses {
		schema, err := openapi.NewSchema()
		if err != nil {
			return nil, err
		}

		c.schema = schema
	}

	return c, nil
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(log logr.Logger, method, path string, duration time.Duration, traceParent string, err error, context string) {
	log.Error(err, context, "method", method, "path", path, "duration", duration, "traceparent", traceParent)
	c.logTraceContext(log, traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(log logr.Logger, method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	log.Error(err, context, "method", method, "path", path, "duration", duration, "status", statusCode, "traceparent", traceParent)
	c.logTraceContext(log, traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(log logr.Logger, method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	log.Info("unexpected status", "method", method, "path", path, "expected", describeExpectedStatus(expectedStatus), "got", actualStatus, "body", body, "traceparent", traceParent)
	c.logTraceContext(log, traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(log logr.Logger, traceParent string) {
	log.Info(fmt.Sprintf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request", extractTraceID(traceParent)))
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

func describeExpectedStatus(expectedStatus int) string {
	if expectedStatus == anySuccess {
		return "2xx"
	}

	return fmt.Sprintf("%d", expectedStatus)
}

func statusAcceptable(expectedStatus, actualStatus int) bool {
	switch expectedStatus {
	case anyStatus:
		return true
	case anySuccess:
		return actualStatus >= 200 && actualStatus < 300
	}

	return expectedStatus == actualStatus
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, body []byte, expectedStatus int) (*http.Response, []byte, error) {
	log := log.FromContext(ctx)

	fullURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(log, method, path, duration, traceParent, err, "http request failed")
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(log, method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		log.Info("request", "method", method, "path", path, "status", resp.StatusCode, "duration", duration, "traceparent", traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		log.Info("response body", "method", method, "path", path, "body", string(respBody))
	}

	if c.schema != nil {
		// The request body has been consumed, the route only needs the method and URL.
		if err := c.schema.ValidateResponse(ctx, req, resp.StatusCode, resp.Header, respBody); err != nil {
			c.logErrorWithStatus(log, method, path, duration, resp.StatusCode, traceParent, err, "contract violation")
			return resp, respBody, fmt.Errorf("%w (trace ID: %s)", err, extractTraceID(traceParent))
		}
	}

	if !statusAcceptable(expectedStatus, resp.StatusCode) {
		c.logUnexpectedStatus(log, method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)
		return resp, respBody, fmt.Errorf("%w: expected %s, got %d, body: %s (trace ID: %s)", ErrUnexpectedStatus, describeExpectedStatus(expectedStatus), resp.StatusCode, string(respBody), extractTraceID(traceParent))
	}

	return resp, respBody, nil
}

// ListChargePoints lists all charge points.
func (c *APIClient) ListChargePoints(ctx context.Context) (openapi.ChargePoints, error) {
	path := c.endpoints.ListChargePoints()

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, path, nil, anySuccess)
	if err != nil {
		return nil, fmt.Errorf("listing charge points: %w", err)
	}

	var chargePoints openapi.ChargePoints
	if err := json.Unmarshal(respBody, &chargePoints); err != nil {
		return nil, fmt.Errorf("unmarshaling charge points response: %w", err)
	}

	return chargePoints, nil
}

// AddChargePoint creates a charge point.  The response is returned whatever
// the status so rejections can be asserted on.
func (c *APIClient) AddChargePoint(ctx context.Context, serialNumber string) (*AddChargePointResponse, error) {
	path := c.endpoints.CreateChargePoint()

	bodyBytes, err := json.Marshal(&openapi.ChargePointWrite{SerialNumber: serialNumber})
	if err != nil {
		return nil, fmt.Errorf("marshaling charge point body: %w", err)
	}

	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodPost, path, bodyBytes, anyStatus)
	if err != nil {
		return nil, fmt.Errorf("creating charge point: %w", err)
	}

	result := &AddChargePointResponse{
		Status: resp.StatusCode,
		Body:   respBody,
	}

	// Not every failure has a JSON body, and that's not our concern here.
	var data map[string]interface{}
	if err := json.Unmarshal(respBody, &data); err == nil {
		result.Data = data
	}

	return result, nil
}

// DeleteChargePoint deletes a charge point by ID.  The status is returned
// unchecked.
func (c *APIClient) DeleteChargePoint(ctx context.Context, id string) (*DeleteChargePointResponse, error) {
	path, err := c.endpoints.DeleteChargePoint(id)
	if err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	resp, _, err := c.doRequest(ctx, http.MethodDelete, path, nil, anyStatus)
	if err != nil {
		return nil, fmt.Errorf("deleting charge point: %w", err)
	}

	return &DeleteChargePointResponse{
		Status: resp.StatusCode,
	}, nil
}

// FindChargePoint returns the first charge point with the serial number.
func (c *APIClient) FindChargePoint(ctx context.Context, serialNumber string) (*openapi.ChargePoint, error) {
	return FindChargePoint(ctx, c, serialNumber)
}

// DeleteChargePointBySerialNumber resolves a serial number to an ID and
// deletes it.
func (c *APIClient) DeleteChargePointBySerialNumber(ctx context.Context, serialNumber string) (*DeleteChargePointResponse, error) {
	return DeleteChargePointBySerialNumber(ctx, c, serialNumber)
}
