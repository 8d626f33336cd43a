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

package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/nscaledev/chargepoint-e2e/pkg/openapi"
)

var (
	// ErrNotFound is raised when an ID does not refer to a charge point.
	ErrNotFound = errors.New("charge point not found")

	// ErrSerialNumberExists is raised on a create with a duplicate serial number.
	//nolint:stylecheck,revive // shown to users verbatim
	ErrSerialNumberExists = errors.New("Serial number already exists")
)

// Store is an in-memory charge point store.  Charge points are kept in
// creation order, and are safe for concurrent access.
type Store struct {
	lock  sync.RWMutex
	items []openapi.ChargePoint
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// List returns a copy of all charge points, oldest first.
func (s *Store) List() openapi.ChargePoints {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return append(make(openapi.ChargePoints, 0, len(s.items)), s.items...)
}

// Create validates and adds a new charge point.
func (s *Store) Create(serialNumber string) (*openapi.ChargePoint, error) {
	if err := openapi.ValidateSerialNumber(serialNumber); err != nil {
		return nil, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if slices.ContainsFunc(s.items, func(x openapi.ChargePoint) bool { return x.SerialNumber == serialNumber }) {
		return nil, fmt.Errorf("%w: %s", ErrSerialNumberExists, serialNumber)
	}

	chargePoint := openapi.ChargePoint{
		Id:           uuid.NewString(),
		SerialNumber: serialNumber,
	}

	s.items = append(s.items, chargePoint)

	return &chargePoint, nil
}

// Delete removes a charge point by ID.
func (s *Store) Delete(id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	index := slices.IndexFunc(s.items, func(x openapi.ChargePoint) bool { return x.Id == id })
	if index < 0 {
		return fmt.Errorf("%w: id %s", ErrNotFound, id)
	}

	s.items = slices.Delete(s.items, index, index+1)

	return nil
}

// Reset removes everything.
func (s *Store) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.items = nil
}
