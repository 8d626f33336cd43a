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

// Package api provides end-to-end test utilities for the charge point API.
//
// # Separate Client Implementation
//
// APIClient is written by hand rather than generated from the contract in
// pkg/openapi.  An independent client triangulates on API correctness: a
// legitimate contract change needs a compensating change here, and a change
// that doesn't may indicate a problem with it.
//
// The client is tailored for end-to-end testing:
//   - W3C trace context propagation for request correlation
//   - Logging through the logr logger carried by the context
//   - Direct access to status codes and response bodies, so rejections can
//     be asserted on rather than surfacing as errors
//   - Optional validation of every response against the contract
//
// # Fixtures
//
// Fixtures accept ChargePointInterface so they can be unit tested against the
// mock in the mock package.  Those that assert, such as
// CreateChargePointWithCleanup, must be called from a running Ginkgo test.
package api
