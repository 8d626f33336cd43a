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
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/nscaledev/chargepoint-e2e/test/api"
	"github.com/nscaledev/chargepoint-e2e/test/logger"

	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/utils/ptr"
)

// ErrConditionNotMet is returned when a polled condition does not hold before
// the deadline.
var ErrConditionNotMet = errors.New("condition not met")

const (
	serialNumberInputSelector = `input[name="input-serial-number"]`
	addButtonSelector         = `button:has-text("Add")`
	listTextSelector          = ".list-text"
	listButtonSelector        = ".list-button"
	errorMessageSelector      = ".error-message"
)

// poller holds the bounds for every verification.
type poller struct {
	interval time.Duration
	timeout  time.Duration
}

func newPoller(config *api.TestConfig) poller {
	return poller{
		interval: config.PollInterval,
		timeout:  config.TestTimeout,
	}
}

// poll evaluates the condition immediately, then at every interval until it
// holds, or the timeout expires with ErrConditionNotMet naming the expectation.
func (p poller) poll(ctx context.Context, expectation string, condition wait.ConditionWithContextFunc) error {
	if err := wait.PollUntilContextTimeout(ctx, p.interval, p.timeout, true, condition); err != nil {
		if wait.Interrupted(err) {
			return fmt.Errorf("%w: %s within %s", ErrConditionNotMet, expectation, p.timeout)
		}

		return fmt.Errorf("%s: %w", expectation, err)
	}

	return nil
}

// ChargePointsPage is the charge point list, with its add form.
type ChargePointsPage struct {
	page   playwright.Page
	logger *logger.Logger
	poller poller
}

func NewChargePointsPage(page playwright.Page, config *api.TestConfig, logger *logger.Logger) *ChargePointsPage {
	return &ChargePointsPage{
		page:   page,
		logger: logger,
		poller: newPoller(config),
	}
}

// Navigate loads the application root.
func (p *ChargePointsPage) Navigate() error {
	p.logger.Debug("Navigating to charge points page")

	if _, err := p.page.Goto("/", playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return fmt.Errorf("navigating to charge points page: %w", err)
	}

	return nil
}

// Reload picks up changes made through the API.
func (p *ChargePointsPage) Reload() error {
	p.logger.Debug("Reloading charge points page")

	if _, err := p.page.Reload(playwright.PageReloadOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return fmt.Errorf("reloading charge points page: %w", err)
	}

	return nil
}

// AddChargePoint submits the form.  It does not wait for the outcome, use one
// of the verifications for that.
func (p *ChargePointsPage) AddChargePoint(serialNumber string) error {
	p.logger.Debug("Adding charge point", map[string]string{"serialNumber": serialNumber})

	if err := p.page.Locator(serialNumberInputSelector).Fill(serialNumber); err != nil {
		return fmt.Errorf("filling serial number: %w", err)
	}

	if err := p.page.Locator(addButtonSelector).Click(); err != nil {
		return fmt.Errorf("clicking add: %w", err)
	}

	return nil
}

// item locates list entries whose text is exactly the serial number, so that
// SN1 never matches SN10.
func (p *ChargePointsPage) item(serialNumber string) playwright.Locator {
	exact := regexp.MustCompile(`^\s*` + regexp.QuoteMeta(serialNumber) + `\s*$`)

	return p.page.Locator("li").Filter(playwright.LocatorFilterOptions{
		Has: p.page.Locator(listTextSelector, playwright.PageLocatorOptions{
			HasText: exact,
		}),
	})
}

// DeleteChargePoint clicks the delete button of the matching entry.
func (p *ChargePointsPage) DeleteChargePoint(serialNumber string) error {
	p.logger.Debug("Deleting charge point", map[string]string{"serialNumber": serialNumber})

	if err := p.item(serialNumber).First().Locator(listButtonSelector).Click(); err != nil {
		return fmt.Errorf("deleting charge point %s: %w", serialNumber, err)
	}

	return nil
}

// DeleteAllChargePoints deletes entries in list order, waiting for each to
// disappear before moving on.
func (p *ChargePointsPage) DeleteAllChargePoints(ctx context.Context) error {
	serialNumbers, err := p.GetAllChargePointsSerialNumber()
	if err != nil {
		return err
	}

	p.logger.Debug("Deleting all charge points", serialNumbers)

	for _, serialNumber := range serialNumbers {
		if err := p.DeleteChargePoint(serialNumber); err != nil {
			return err
		}

		if err := p.VerifyChargePointVisibility(ctx, serialNumber, false); err != nil {
			return err
		}
	}

	return nil
}

// GetAllChargePointsSerialNumber returns the listed serial numbers in order.
func (p *ChargePointsPage) GetAllChargePointsSerialNumber() ([]string, error) {
	texts, err := p.page.Locator(listTextSelector).AllTextContents()
	if err != nil {
		return nil, fmt.Errorf("reading charge point list: %w", err)
	}

	serialNumbers := make([]string, 0, len(texts))

	for _, text := range texts {
		if text = strings.TrimSpace(text); text != "" {
			serialNumbers = append(serialNumbers, text)
		}
	}

	return serialNumbers, nil
}

func describeVisibility(visible bool) string {
	if visible {
		return "visible"
	}

	return "not visible"
}

// VerifyChargePointVisibility waits for the entry to appear, or disappear.
func (p *ChargePointsPage) VerifyChargePointVisibility(ctx context.Context, serialNumber string, shouldBeVisible bool) error {
	expectation := fmt.Sprintf("charge point %s should be %s", serialNumber, describeVisibility(shouldBeVisible))

	return p.poller.poll(ctx, expectation, func(context.Context) (bool, error) {
		visible, err := p.item(serialNumber).First().IsVisible()
		if err != nil {
			return false, err
		}

		return visible == shouldBeVisible, nil
	})
}

// VerifySerialNumberError waits for the error message to show the text.
func (p *ChargePointsPage) VerifySerialNumberError(ctx context.Context, text string) error {
	expectation := fmt.Sprintf("error message %q should be visible", text)

	message := p.page.Locator(errorMessageSelector).First()

	var last string

	err := p.poller.poll(ctx, expectation, func(context.Context) (bool, error) {
		visible, err := message.IsVisible()
		if err != nil || !visible {
			return false, err
		}

		content, err := message.TextContent(playwright.LocatorTextContentOptions{
			Timeout: ptr.To(float64(p.poller.interval.Milliseconds())),
		})
		if err != nil {
			return false, err
		}

		last = strings.TrimSpace(content)

		return strings.Contains(content, text), nil
	})

	if err != nil && last != "" {
		return fmt.Errorf("%w, last saw %q", err, last)
	}

	return err
}
