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

package server

import (
	"time"

	"github.com/spf13/pflag"
)

// Options allows the stub's behaviour to be defined on the CLI.
type Options struct {
	// APIListenAddress is where the charge point API is served.
	APIListenAddress string

	// UIListenAddress is where the browser UI is served.
	UIListenAddress string

	// APIBaseURL is the API address as seen by a browser.
	APIBaseURL string

	// Title is the UI document title.
	Title string

	// AllowedOrigins are the CORS origins permitted to call the API.
	AllowedOrigins []string

	// ReadTimeout is the maximum time to read a request.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to write a response.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.APIListenAddress, "api-listen-address", ":3001", "API listener address.")
	f.StringVar(&o.UIListenAddress, "ui-listen-address", ":3000", "UI listener address.")
	f.StringVar(&o.APIBaseURL, "api-base-url", "http://localhost:3001", "API URL used by the UI from the browser.")
	f.StringVar(&o.Title, "title", "React App", "UI document title.")
	f.StringSliceVar(&o.AllowedOrigins, "cors-allow-origin", []string{"*"}, "CORS origins allowed to call the API.")
	f.DurationVar(&o.ReadTimeout, "read-timeout", time.Second, "How long to wait for a request to be read.")
	f.DurationVar(&o.WriteTimeout, "write-timeout", 10*time.Second, "How long to wait for a response to be written.")
	f.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", 5*time.Second, "How long to wait for in-flight requests on shutdown.")
}
