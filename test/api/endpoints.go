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

package api

import (
	"fmt"

	"github.com/oapi-codegen/runtime"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Charge point endpoints.
func (e *Endpoints) ListChargePoints() string {
	return "/charge-point"
}

func (e *Endpoints) CreateChargePoint() string {
	return "/charge-point"
}

// DeleteChargePoint styles the ID the same way a generated client would, so
// IDs that need escaping reach the server intact.
func (e *Endpoints) DeleteChargePoint(id string) (string, error) {
	pathParam, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, id)
	if err != nil {
		return "", fmt.Errorf("styling charge point id: %w", err)
	}

	return "/charge-point/" + pathParam, nil
}
