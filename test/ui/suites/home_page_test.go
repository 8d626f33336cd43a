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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/chargepoint-e2e/test/ui"
)

var _ = Describe("Homepage", Ordered, Serial, func() {
	It("should have the expected title and load", func() {
		homePage := ui.NewHomePage(browser.Page, config, log)

		Expect(homePage.Navigate()).To(Succeed())
		Expect(homePage.VerifyTitle(config.ExpectedTitle)).To(Succeed())

		visible, err := homePage.GetMainContent().IsVisible()
		Expect(err).NotTo(HaveOccurred())
		Expect(visible).To(BeTrue())
	})
})
