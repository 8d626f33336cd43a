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

// Package ui provides page objects for driving the charge point web UI with
// Playwright.
package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/playwright-community/playwright-go"

	"github.com/nscaledev/chargepoint-e2e/test/api"

	"k8s.io/utils/ptr"
)

// ScreenshotDirectory is where failure screenshots are written, relative to
// the suite.
const ScreenshotDirectory = "test-results/screenshots"

var screenshotNameInvalid = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Browser is a Playwright driver, a Chromium instance and a single page bound
// to the UI base URL.
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext

	// Page is the page all page objects act upon.
	Page playwright.Page
}

// NewBrowser starts Playwright and opens a page.  The driver and browser are
// installed on demand unless PLAYWRIGHT_PREINSTALLED is set e.g. in CI images.
func NewBrowser(config *api.TestConfig) (*Browser, error) {
	if os.Getenv("PLAYWRIGHT_PREINSTALLED") == "" {
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
			return nil, fmt.Errorf("could not install playwright: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	b := &Browser{
		pw: pw,
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: ptr.To(config.Headless),
		SlowMo:   ptr.To(float64(config.SlowMo.Milliseconds())),
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("could not launch browser: %w", err), b.Close())
	}

	b.browser = browser

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		BaseURL: ptr.To(config.UIBaseURL),
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("could not create browser context: %w", err), b.Close())
	}

	b.context = context

	page, err := context.NewPage()
	if err != nil {
		return nil, errors.Join(fmt.Errorf("could not create page: %w", err), b.Close())
	}

	page.SetDefaultTimeout(float64(config.TestTimeout.Milliseconds()))

	b.Page = page

	return b, nil
}

// Close releases everything that was successfully created.
func (b *Browser) Close() error {
	var errs []error

	if b.context != nil {
		if err := b.context.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close browser context: %w", err))
		}
	}

	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
	}

	if b.pw != nil {
		if err := b.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
	}

	return errors.Join(errs...)
}

// ScreenshotPath returns where a screenshot with the given name is written.
func ScreenshotPath(name string) string {
	return filepath.Join(ScreenshotDirectory, screenshotNameInvalid.ReplaceAllString(name, "-")+".png")
}

// Screenshot captures the full page, typically after a failure.
func (b *Browser) Screenshot(name string) (string, error) {
	path := ScreenshotPath(name)

	if _, err := b.Page.Screenshot(playwright.PageScreenshotOptions{
		Path:     ptr.To(path),
		FullPage: ptr.To(true),
	}); err != nil {
		return "", fmt.Errorf("could not capture screenshot: %w", err)
	}

	return path, nil
}
