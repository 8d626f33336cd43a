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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/chargepoint-e2e/test/api"
	"github.com/nscaledev/chargepoint-e2e/test/ui"
)

var _ = Describe("Combined UI and API", Ordered, Serial, func() {
	var chargePointsPage *ui.ChargePointsPage

	BeforeEach(func() {
		chargePointsPage = ui.NewChargePointsPage(browser.Page, config, log)

		Expect(chargePointsPage.Navigate()).To(Succeed())
	})

	AfterEach(func() {
		Expect(chargePointsPage.DeleteAllChargePoints(ctx)).To(Succeed())
	})

	Context("When adding a charge point", func() {
		It("should add via API and verify in UI", func() {
			serialNumber := api.GenerateSerialNumber()

			response, err := client.AddChargePoint(ctx, serialNumber)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.Status).To(Equal(http.StatusCreated))

			// The UI only learns of API changes on load.
			Expect(chargePointsPage.Reload()).To(Succeed())
			Expect(chargePointsPage.VerifyChargePointVisibility(ctx, serialNumber, true)).To(Succeed())
		})

		It("should add via UI and verify via API", func() {
			serialNumber := api.GenerateSerialNumber()

			Expect(chargePointsPage.AddChargePoint(serialNumber)).To(Succeed())

			api.EventuallyListed(ctx, client, config, serialNumber, true)
		})
	})

	Context("When deleting a charge point", func() {
		It("should delete via UI and verify via API", func() {
			serialNumber := api.GenerateSerialNumber()

			response, err := client.AddChargePoint(ctx, serialNumber)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.Status).To(Equal(http.StatusCreated))

			Expect(chargePointsPage.Reload()).To(Succeed())
			Expect(chargePointsPage.DeleteChargePoint(serialNumber)).To(Succeed())

			api.EventuallyListed(ctx, client, config, serialNumber, false)
		})

		It("should delete via API and verify in UI", func() {
			serialNumber := api.GenerateSerialNumber()

			Expect(chargePointsPage.AddChargePoint(serialNumber)).To(Succeed())

			// The UI doesn't wait for the add, so make sure it landed before
			// looking it up.
			api.EventuallyListed(ctx, client, config, serialNumber, true)

			deleted, err := client.DeleteChargePointBySerialNumber(ctx, serialNumber)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.Status).To(Equal(http.StatusNoContent))

			Expect(chargePointsPage.Reload()).To(Succeed())
			Expect(chargePointsPage.VerifyChargePointVisibility(ctx, serialNumber, false)).To(Succeed())
		})
	})

	Context("When comparing both views", func() {
		It("should list the same serial numbers", func() {
			serialNumbers := api.GenerateSerialNumbers("_api", "_ui")

			response, err := client.AddChargePoint(ctx, serialNumbers[0])
			Expect(err).NotTo(HaveOccurred())
			Expect(response.Status).To(Equal(http.StatusCreated))

			Expect(chargePointsPage.Reload()).To(Succeed())

			Expect(chargePointsPage.AddChargePoint(serialNumbers[1])).To(Succeed())
			Expect(chargePointsPage.VerifyChargePointVisibility(ctx, serialNumbers[1], true)).To(Succeed())

			chargePoints, err := client.ListChargePoints(ctx)
			Expect(err).NotTo(HaveOccurred())

			listed, err := chargePointsPage.GetAllChargePointsSerialNumber()
			Expect(err).NotTo(HaveOccurred())

			onlyAPI, onlyUI := api.DiffSerialNumbers(api.SerialNumbers(chargePoints), listed)
			Expect(onlyAPI).To(BeEmpty(), "listed by the API but not the UI")
			Expect(onlyUI).To(BeEmpty(), "listed by the UI but not the API")
		})
	})
})
