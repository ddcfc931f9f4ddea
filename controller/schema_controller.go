// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package controller

import (
	"net/http"

	"github.com/thundercloud/site-audit-service/client"
	"github.com/thundercloud/site-audit-service/view"
)

type SchemaController interface {
	GetAuditResultSchema(w http.ResponseWriter, r *http.Request)
	GetValidationResultSchema(w http.ResponseWriter, r *http.Request)
}

func NewSchemaController() SchemaController {
	return &schemaControllerImpl{
		auditResultSchema:      client.GenerateSchema[view.AuditResult](),
		validationResultSchema: client.GenerateSchema[view.ValidationResult](),
	}
}

type schemaControllerImpl struct {
	auditResultSchema      interface{}
	validationResultSchema interface{}
}

func (s schemaControllerImpl) GetAuditResultSchema(w http.ResponseWriter, r *http.Request) {
	respondWithJson(w, http.StatusOK, s.auditResultSchema)
}

func (s schemaControllerImpl) GetValidationResultSchema(w http.ResponseWriter, r *http.Request) {
	respondWithJson(w, http.StatusOK, s.validationResultSchema)
}
