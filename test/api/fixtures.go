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
	"errors"
	"fmt"
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/nscaledev/chargepoint-e2e/pkg/openapi"
)

// FindChargePoint returns the first listed charge point with the serial number,
// or ErrChargePointNotFound.
func FindChargePoint(ctx context.Context, client ChargePointInterface, serialNumber string) (*openapi.ChargePoint, error) {
	chargePoints, err := client.ListChargePoints(ctx)
	if err != nil {
		return nil, err
	}

	index := slices.IndexFunc(chargePoints, func(chargePoint openapi.ChargePoint) bool {
		return chargePoint.SerialNumber == serialNumber
	})

	if index < 0 {
		return nil, fmt.Errorf("%w: serial number %q", ErrChargePointNotFound, serialNumber)
	}

	return &chargePoints[index], nil
}

// DeleteChargePointBySerialNumber looks up a charge point and deletes it by ID.
func DeleteChargePointBySerialNumber(ctx context.Context, client ChargePointInterface, serialNumber string) (*DeleteChargePointResponse, error) {
	chargePoint, err := FindChargePoint(ctx, client, serialNumber)
	if err != nil {
		return nil, err
	}

	return client.DeleteChargePoint(ctx, chargePoint.Id)
}

// DeleteAllChargePoints deletes every listed charge point, carrying on past
// failures so one bad entry doesn't leak the rest.
func DeleteAllChargePoints(ctx context.Context, client ChargePointInterface) error {
	chargePoints, err := client.ListChargePoints(ctx)
	if err != nil {
		return err
	}

	var errs []error

	for _, chargePoint := range chargePoints {
		response, err := client.DeleteChargePoint(ctx, chargePoint.Id)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		// Something else got there first.
		if response.Status == http.StatusNotFound {
			continue
		}

		if response.Status != http.StatusNoContent {
			errs = append(errs, fmt.Errorf("%w: deleting charge point %s returned %d", ErrUnexpectedStatus, chargePoint.SerialNumber, response.Status))
		}
	}

	return errors.Join(errs...)
}

// ChargePointExists reports whether a charge point with the serial number is listed.
func ChargePointExists(ctx context.Context, client ChargePointInterface, serialNumber string) (bool, error) {
	if _, err := FindChargePoint(ctx, client, serialNumber); err != nil {
		if errors.Is(err, ErrChargePointNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// SerialNumbers extracts serial numbers in listing order.
func SerialNumbers(chargePoints openapi.ChargePoints) []string {
	serialNumbers := make([]string, len(chargePoints))

	for i := range chargePoints {
		serialNumbers[i] = chargePoints[i].SerialNumber
	}

	return serialNumbers
}

// DiffSerialNumbers returns the sorted serial numbers found only on the left,
// and only on the right.  Both are empty when the two views agree.
func DiffSerialNumbers(left, right []string) ([]string, []string) {
	l := set.New[string](left...)
	r := set.New[string](right...)

	return slices.Sorted(l.Difference(r).All()), slices.Sorted(r.Difference(l).All())
}

// CreateChargePointWithCleanup creates a charge point, asserts it was accepted,
// and schedules its deletion.
func CreateChargePointWithCleanup(ctx context.Context, client ChargePointInterface, serialNumber string) *openapi.ChargePoint {
	response, err := client.AddChargePoint(ctx, serialNumber)
	Expect(err).NotTo(HaveOccurred())
	Expect(response.Status).To(Equal(http.StatusCreated), "creating charge point %s: %s", serialNumber, string(response.Body))

	chargePoint, err := response.ChargePoint()
	Expect(err).NotTo(HaveOccurred())

	GinkgoWriter.Printf("Created charge point %s with ID: %s\n", chargePoint.SerialNumber, chargePoint.Id)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func(ctx context.Context) {
		GinkgoWriter.Printf("Cleaning up charge point: %s\n", chargePoint.SerialNumber)

		response, deleteErr := client.DeleteChargePoint(ctx, chargePoint.Id)

		switch {
		case deleteErr != nil:
			GinkgoWriter.Printf("Warning: Failed to delete charge point %s: %v\n", chargePoint.SerialNumber, deleteErr)
		case response.Status == http.StatusNotFound:
			GinkgoWriter.Printf("Charge point %s already deleted\n", chargePoint.SerialNumber)
		default:
			GinkgoWriter.Printf("Successfully deleted charge point: %s\n", chargePoint.SerialNumber)
		}
	})

	return chargePoint
}

// EventuallyListed waits until the listing agrees with the expectation.
func EventuallyListed(ctx context.Context, client ChargePointInterface, config *TestConfig, serialNumber string, listed bool) {
	Eventually(func() (bool, error) {
		return ChargePointExists(ctx, client, serialNumber)
	}).WithTimeout(config.TestTimeout).WithPolling(config.PollInterval).Should(Equal(listed), "charge point %s listed", serialNumber)
}
