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
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/chargepoint-e2e/pkg/openapi"
	"github.com/nscaledev/chargepoint-e2e/test/api"
	"github.com/nscaledev/chargepoint-e2e/test/ui"
)

var _ = Describe("Charge Point Management", Ordered, Serial, func() {
	var chargePointsPage *ui.ChargePointsPage

	BeforeEach(func() {
		chargePointsPage = ui.NewChargePointsPage(browser.Page, config, log)

		Expect(chargePointsPage.Navigate()).To(Succeed())
	})

	AfterEach(func() {
		Expect(chargePointsPage.DeleteAllChargePoints(ctx)).To(Succeed())
	})

	Context("When adding a charge point", func() {
		Describe("Given a unique serial number", func() {
			It("should create a new charge point", func() {
				serialNumber := api.GenerateSerialNumber()
				log.Info("Generated serial number: " + serialNumber)

				Expect(chargePointsPage.AddChargePoint(serialNumber)).To(Succeed())
				Expect(chargePointsPage.VerifyChargePointVisibility(ctx, serialNumber, true)).To(Succeed())
			})

			It("should manage multiple charge points correctly", func() {
				serialNumbers := api.GenerateSerialNumbers("_1", "_2", "_3")

				for _, serialNumber := range serialNumbers {
					Expect(chargePointsPage.AddChargePoint(serialNumber)).To(Succeed())
					Expect(chargePointsPage.VerifyChargePointVisibility(ctx, serialNumber, true)).To(Succeed())
				}

				listed, err := chargePointsPage.GetAllChargePointsSerialNumber()
				Expect(err).NotTo(HaveOccurred())
				Expect(listed).To(ContainElements(serialNumbers))
			})
		})

		Describe("Given an empty serial number", func() {
			It("should show an error and add nothing", func() {
				initial, err := chargePointsPage.GetAllChargePointsSerialNumber()
				Expect(err).NotTo(HaveOccurred())

				Expect(chargePointsPage.AddChargePoint("")).To(Succeed())
				Expect(chargePointsPage.VerifySerialNumberError(ctx, "Serial number is required")).To(Succeed())

				updated, err := chargePointsPage.GetAllChargePointsSerialNumber()
				Expect(err).NotTo(HaveOccurred())
				Expect(updated).To(HaveLen(len(initial)))
			})
		})

		Describe("Given a serial number that already exists", func() {
			It("should show an error and keep a single entry", func() {
				serialNumber := api.GenerateSerialNumber()

				Expect(chargePointsPage.AddChargePoint(serialNumber)).To(Succeed())
				Expect(chargePointsPage.VerifyChargePointVisibility(ctx, serialNumber, true)).To(Succeed())

				Expect(chargePointsPage.AddChargePoint(serialNumber)).To(Succeed())
				Expect(chargePointsPage.VerifySerialNumberError(ctx, "Serial number already exists")).To(Succeed())

				listed, err := chargePointsPage.GetAllChargePointsSerialNumber()
				Expect(err).NotTo(HaveOccurred())

				occurrences := 0

				for _, sn := range listed {
					if sn == serialNumber {
						occurrences++
					}
				}

				Expect(occurrences).To(Equal(1))
			})
		})

		Describe("Given a serial number with an illegal character", func() {
			DescribeTable("should reject the serial number",
				func(serialNumber string) {
					Expect(chargePointsPage.AddChargePoint(serialNumber)).To(Succeed())
					Expect(chargePointsPage.VerifySerialNumberError(ctx, "Invalid serial number format")).To(Succeed())

					listed, err := chargePointsPage.GetAllChargePointsSerialNumber()
					Expect(err).NotTo(HaveOccurred())
					Expect(listed).NotTo(ContainElement(serialNumber))
				},
				Entry("with a dollar sign", "SN123$456"),
				Entry("with an at symbol", "SN123@456"),
				Entry("with a hash", "SN123#456"),
				Entry("with a percent", "SN123%456"),
				Entry("with an ampersand", "SN123&456"),
			)
		})

		Describe("Given a serial number longer than the service accepts", func() {
			It("should report the same rejection as the API", func() {
				serialNumber := "SN" + strings.Repeat("1", 100)

				Expect(chargePointsPage.AddChargePoint(serialNumber)).To(Succeed())
				Expect(chargePointsPage.VerifySerialNumberError(ctx, openapi.ErrSerialNumberTooLong.Error())).To(Succeed())

				listed, err := chargePointsPage.GetAllChargePointsSerialNumber()
				Expect(err).NotTo(HaveOccurred())
				Expect(listed).NotTo(ContainElement(serialNumber))
			})
		})
	})

	Context("When deleting a charge point", func() {
		Describe("Given the charge point is listed", func() {
			It("should delete an existing charge point", func() {
				serialNumber := api.GenerateSerialNumber()

				Expect(chargePointsPage.AddChargePoint(serialNumber)).To(Succeed())
				Expect(chargePointsPage.VerifyChargePointVisibility(ctx, serialNumber, true)).To(Succeed())

				Expect(chargePointsPage.DeleteChargePoint(serialNumber)).To(Succeed())
				Expect(chargePointsPage.VerifyChargePointVisibility(ctx, serialNumber, false)).To(Succeed())
			})

			It("should only delete the exact serial number", func() {
				serialNumber := api.GenerateSerialNumber()
				longer := serialNumber + "0"

				Expect(chargePointsPage.AddChargePoint(longer)).To(Succeed())
				Expect(chargePointsPage.VerifyChargePointVisibility(ctx, longer, true)).To(Succeed())

				Expect(chargePointsPage.AddChargePoint(serialNumber)).To(Succeed())
				Expect(chargePointsPage.VerifyChargePointVisibility(ctx, serialNumber, true)).To(Succeed())

				Expect(chargePointsPage.DeleteChargePoint(serialNumber)).To(Succeed())
				Expect(chargePointsPage.VerifyChargePointVisibility(ctx, serialNumber, false)).To(Succeed())
				Expect(chargePointsPage.VerifyChargePointVisibility(ctx, longer, true)).To(Succeed())
			})
		})

		Describe("Given the page is reloaded", func() {
			It("should leave nothing behind after deleting everything", func() {
				for _, serialNumber := range api.GenerateSerialNumbers("_1", "_2") {
					Expect(chargePointsPage.AddChargePoint(serialNumber)).To(Succeed())
					Expect(chargePointsPage.VerifyChargePointVisibility(ctx, serialNumber, true)).To(Succeed())
				}

				Expect(chargePointsPage.DeleteAllChargePoints(ctx)).To(Succeed())
				Expect(chargePointsPage.Reload()).To(Succeed())

				listed, err := chargePointsPage.GetAllChargePointsSerialNumber()
				Expect(err).NotTo(HaveOccurred())
				Expect(listed).To(BeEmpty())
			})
		})
	})
})
