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

package ui

import (
	"fmt"
	"regexp"

	"github.com/playwright-community/playwright-go"

	"github.com/nscaledev/chargepoint-e2e/test/api"
	"github.com/nscaledev/chargepoint-e2e/test/logger"
)

type HomePage struct {
	page    playwright.Page
	logger  *logger.Logger
	timeout float64
}

func NewHomePage(page playwright.Page, config *api.TestConfig, logger *logger.Logger) *HomePage {
	return &HomePage{
		page:    page,
		logger:  logger,
		timeout: float64(config.TestTimeout.Milliseconds()),
	}
}

func (p *HomePage) Navigate() error {
	p.logger.Debug("Navigating to home page")

	if _, err := p.page.Goto("/"); err != nil {
		return fmt.Errorf("navigating to home page: %w", err)
	}

	return nil
}

// GetMainContent locates the document body.
func (p *HomePage) GetMainContent() playwright.Locator {
	return p.page.Locator("body")
}

// VerifyTitle waits for the document title to match the pattern.
func (p *HomePage) VerifyTitle(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("compiling title pattern: %w", err)
	}

	if err := playwright.NewPlaywrightAssertions(p.timeout).Page(p.page).ToHaveTitle(re); err != nil {
		title, _ := p.page.Title()

		return fmt.Errorf("%w: title %q does not match %q: %w", ErrConditionNotMet, title, pattern, err)
	}

	return nil
}
