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

package openapi

import (
	"errors"
	"regexp"
)

// MaxSerialNumberLength is the longest serial number the service accepts.
const MaxSerialNumberLength = 100

//nolint:stylecheck,revive // messages are shown to users verbatim
var (
	ErrSerialNumberRequired      = errors.New("Serial number is required")
	ErrSerialNumberTooLong       = errors.New("Serial number is too long")
	ErrInvalidSerialNumberFormat = errors.New("Invalid serial number format")
)

// SerialNumberPattern is the set of characters a serial number may contain.
const SerialNumberPattern = "^[A-Za-z0-9_-]+$"

var serialNumberValidationRegex = regexp.MustCompile(SerialNumberPattern)

// ValidateSerialNumber checks a serial number against the service's format rules.
// The error text is exactly what the UI shows to the user.
func ValidateSerialNumber(serialNumber string) error {
	if serialNumber == "" {
		return ErrSerialNumberRequired
	}

	if len(serialNumber) > MaxSerialNumberLength {
		return ErrSerialNumberTooLong
	}

	if !serialNumberValidationRegex.MatchString(serialNumber) {
		return ErrInvalidSerialNumberFormat
	}

	return nil
}
