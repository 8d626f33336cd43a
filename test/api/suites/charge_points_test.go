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
//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/chargepoint-e2e/pkg/openapi"
	"github.com/nscaledev/chargepoint-e2e/test/api"
)

// Every spec empties the shared service when it finishes.
var _ = Describe("Charge Points API", Serial, func() {
	Context("When adding a charge point", func() {
		Describe("Given a unique serial number", func() {
			It("should add the charge point", func() {
				serialNumber := api.GenerateSerialNumber()

				response, err := client.AddChargePoint(ctx, serialNumber)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Status).To(Equal(http.StatusCreated))

				chargePoints, err := client.ListChargePoints(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(api.SerialNumbers(chargePoints)).To(ContainElement(serialNumber))
			})

			It("should return the charge point with the expected structure", func() {
				serialNumber := api.GenerateSerialNumber("_struct_test")

				response, err := client.AddChargePoint(ctx, serialNumber)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Status).To(Equal(http.StatusCreated))

				Expect(response.Data).To(HaveKey("id"))
				Expect(response.Data).To(HaveKeyWithValue("serialNumber", serialNumber))

				Expect(response.Data["id"]).To(BeAssignableToTypeOf(""))

				// Decoding fails unless both fields are strings.
				chargePoints, err := client.ListChargePoints(ctx)
				Expect(err).NotTo(HaveOccurred())

				var listed openapi.ChargePoint

				Expect(chargePoints).To(ContainElement(HaveField("SerialNumber", serialNumber), &listed))
				Expect(listed.Id).NotTo(BeEmpty())
				Expect(listed.Id).To(Equal(response.Data["id"]))
			})
		})

		Describe("Given a serial number that already exists", func() {
			It("should reject the duplicate", func() {
				serialNumber := api.GenerateSerialNumber()

				response, err := client.AddChargePoint(ctx, serialNumber)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Status).To(Equal(http.StatusCreated))

				response, err = client.AddChargePoint(ctx, serialNumber)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Status).NotTo(Equal(http.StatusCreated))

				chargePoints, err := client.ListChargePoints(ctx)
				Expect(err).NotTo(HaveOccurred())

				matching := 0

				for _, sn := range api.SerialNumbers(chargePoints) {
					if sn == serialNumber {
						matching++
					}
				}

				Expect(matching).To(Equal(1))
			})
		})

		Describe("Given an invalid serial number", func() {
			DescribeTable("should reject the serial number",
				func(serialNumber string) {
					response, err := client.AddChargePoint(ctx, serialNumber)
					Expect(err).NotTo(HaveOccurred())
					Expect(response.Status).NotTo(Equal(http.StatusCreated))

					exists, err := api.ChargePointExists(ctx, client, serialNumber)
					Expect(err).NotTo(HaveOccurred())
					Expect(exists).To(BeFalse())
				},
				Entry("when empty", ""),
				Entry("when 102 characters long", "SN"+strings.Repeat("1", 100)),
			)
		})
	})

	Context("When listing charge points", func() {
		Describe("Given several charge points exist", func() {
			It("should return all of them", func() {
				serialNumbers := api.GenerateSerialNumbers("_1", "_2", "_3")

				for _, serialNumber := range serialNumbers {
					api.CreateChargePointWithCleanup(ctx, client, serialNumber)
				}

				chargePoints, err := client.ListChargePoints(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(api.SerialNumbers(chargePoints)).To(ContainElements(serialNumbers))
			})
		})

		Describe("Given every charge point has been deleted", func() {
			It("should return nothing", func() {
				api.CreateChargePointWithCleanup(ctx, client, api.GenerateSerialNumber())

				Expect(api.DeleteAllChargePoints(ctx, client)).To(Succeed())

				chargePoints, err := client.ListChargePoints(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(chargePoints).To(BeEmpty())
			})
		})
	})

	Context("When deleting a charge point", func() {
		Describe("Given the serial number exists", func() {
			It("should delete the charge point", func() {
				serialNumber := api.GenerateSerialNumber()

				response, err := client.AddChargePoint(ctx, serialNumber)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Status).To(Equal(http.StatusCreated))

				exists, err := api.ChargePointExists(ctx, client, serialNumber)
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())

				deleted, err := client.DeleteChargePointBySerialNumber(ctx, serialNumber)
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted.Status).To(Equal(http.StatusNoContent))

				exists, err = api.ChargePointExists(ctx, client, serialNumber)
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeFalse())
			})

			It("should round trip by ID", func() {
				serialNumber := api.GenerateSerialNumber()

				response, err := client.AddChargePoint(ctx, serialNumber)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Status).To(Equal(http.StatusCreated))

				created, err := response.ChargePoint()
				Expect(err).NotTo(HaveOccurred())
				Expect(created.Id).NotTo(BeEmpty())
				Expect(created.SerialNumber).To(Equal(serialNumber))

				chargePoints, err := client.ListChargePoints(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(chargePoints).To(ContainElement(openapi.ChargePoint{Id: created.Id, SerialNumber: serialNumber}))

				deleted, err := client.DeleteChargePoint(ctx, created.Id)
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted.Status).To(Equal(http.StatusNoContent))

				chargePoints, err = client.ListChargePoints(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(api.SerialNumbers(chargePoints)).NotTo(ContainElement(serialNumber))
			})
		})

		Describe("Given the serial number does not exist", func() {
			It("should fail the lookup without deleting anything", func() {
				survivor := api.CreateChargePointWithCleanup(ctx, client, api.GenerateSerialNumber())

				_, err := client.DeleteChargePointBySerialNumber(ctx, api.GenerateSerialNumber("_missing"))
				Expect(err).To(MatchError(api.ErrChargePointNotFound))

				chargePoints, err := client.ListChargePoints(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(chargePoints).To(ContainElement(*survivor))
			})
		})
	})
})
