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

// Package openapi holds the charge point service contract, and the types,
// router and spec loader generated from it.
package openapi

//go:generate go tool oapi-codegen -generate types -package openapi -o types.go server.spec.yaml
//go:generate go tool oapi-codegen -generate chi-server -package openapi -o router.go server.spec.yaml
//go:generate go tool oapi-codegen -generate spec -package openapi -o schema.go server.spec.yaml
