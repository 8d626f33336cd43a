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
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nscaledev/chargepoint-e2e/pkg/openapi"
	"github.com/nscaledev/chargepoint-e2e/pkg/store"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

//go:embed index.html.tmpl
var indexTemplate string

// Options configures the rendered page.
type Options struct {
	// Title is the document title.
	Title string

	// APIBaseURL is where the page's script sends API requests.
	APIBaseURL string
}

type Handler struct {
	index []byte
}

// New renders the page once, it has no per-request state.
func New(options *Options) (*Handler, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}

	data := map[string]any{
		"Title":      options.Title,
		"APIBaseURL": options.APIBaseURL,
		"MaxLength":  openapi.MaxSerialNumberLength,
		"Pattern":    openapi.SerialNumberPattern,
		"Messages": map[string]string{
			"Required":      openapi.ErrSerialNumberRequired.Error(),
			"TooLong":       openapi.ErrSerialNumberTooLong.Error(),
			"InvalidFormat": openapi.ErrInvalidSerialNumberFormat.Error(),
			"Exists":        store.ErrSerialNumberExists.Error(),
		},
	}

	var buffer bytes.Buffer

	if err := tmpl.Execute(&buffer, data); err != nil {
		return nil, fmt.Errorf("rendering index template: %w", err)
	}

	h := &Handler{
		index: buffer.Bytes(),
	}

	return h, nil
}

// Routes mounts the UI on a router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.GetIndex)
}

func (h *Handler) GetIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(h.index); err != nil {
		log.FromContext(r.Context()).Error(err, "failed to write index")
	}
}
