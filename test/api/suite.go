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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/chargepoint-e2e/test/logger"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// LoadSuiteConfig loads configuration for a suite, skipping it when
// SKIP_INTEGRATION is set and starting a private stub when START_STUB is.
// Call it from BeforeSuite.
func LoadSuiteConfig() *TestConfig {
	config, err := LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	if config.SkipIntegration {
		Skip("SKIP_INTEGRATION is set")
	}

	if config.StartStub {
		stubLogger := logger.New(GinkgoWriter, config.LoggerConfig()).WithTestContext("stub")

		stub, err := StartStub(stubLogger.Logr(), config.ExpectedTitle)
		Expect(err).NotTo(HaveOccurred())

		stub.Configure(config)

		DeferCleanup(stub.Close)

		stubLogger.Info("Started stub", map[string]string{"api": config.BaseURL, "ui": config.UIBaseURL})
	}

	return config
}

// NewTestLogger returns a diagnostic logger tagged with the running test's
// name, and a context carrying it for the API client.  Call it from BeforeEach.
func NewTestLogger(config *TestConfig) (*logger.Logger, context.Context) {
	l := logger.New(GinkgoWriter, config.LoggerConfig()).WithTestContext(CurrentSpecReport().LeafNodeText)

	return l, log.IntoContext(context.Background(), l.Logr())
}
