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

//nolint:revive
package handler

import (
	"encoding/json"
	goerrors "errors"
	"net/http"

	"github.com/nscaledev/chargepoint-e2e/pkg/openapi"
	"github.com/nscaledev/chargepoint-e2e/pkg/store"

	"github.com/unikorn-cloud/core/pkg/server/errors"
	"github.com/unikorn-cloud/core/pkg/server/util"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

type Handler struct {
	// store holds all charge points.
	store *store.Store
}

// Ensure the generated routes are fully implemented.
var _ openapi.ServerInterface = &Handler{}

func New(store *store.Store) *Handler {
	h := &Handler{
		store: store,
	}

	return h
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func (h *Handler) GetChargePoint(w http.ResponseWriter, r *http.Request) {
	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, h.store.List())
}

func (h *Handler) PostChargePoint(w http.ResponseWriter, r *http.Request) {
	log := log.FromContext(r.Context())

	var request openapi.PostChargePointJSONRequestBody

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		errors.HandleError(w, r, errors.OAuth2InvalidRequest("request body is not a valid charge point").WithError(err))
		return
	}

	result, err := h.store.Create(request.SerialNumber)
	if err != nil {
		errors.HandleError(w, r, createError(err))
		return
	}

	log.Info("charge point created", "id", result.Id, "serialNumber", result.SerialNumber)

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, result)
}

// createError maps a store failure to the response the client sees.  The
// descriptions of validation failures are shown to users verbatim.
func createError(err error) error {
	if goerrors.Is(err, store.ErrSerialNumberExists) {
		return errors.HTTPConflict().WithError(err)
	}

	for _, validationErr := range []error{openapi.ErrSerialNumberRequired, openapi.ErrSerialNumberTooLong, openapi.ErrInvalidSerialNumberFormat} {
		if goerrors.Is(err, validationErr) {
			return errors.OAuth2InvalidRequest(validationErr.Error()).WithError(err)
		}
	}

	return errors.OAuth2ServerError("unable to create charge point").WithError(err)
}

func (h *Handler) DeleteChargePointId(w http.ResponseWriter, r *http.Request, id openapi.ChargePointIDParameter) {
	log := log.FromContext(r.Context())

	if err := h.store.Delete(id); err != nil {
		if goerrors.Is(err, store.ErrNotFound) {
			errors.HandleError(w, r, errors.HTTPNotFound().WithError(err))
			return
		}

		errors.HandleError(w, r, errors.OAuth2ServerError("unable to delete charge point").WithError(err))

		return
	}

	log.Info("charge point deleted", "id", id)

	w.WriteHeader(http.StatusNoContent)
}
