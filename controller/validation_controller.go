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

	"github.com/thundercloud/site-audit-service/secctx"
	"github.com/thundercloud/site-audit-service/service"
	"github.com/thundercloud/site-audit-service/view"
)

type ValidationController interface {
	ValidatePage(w http.ResponseWriter, r *http.Request)
	GetValidation(w http.ResponseWriter, r *http.Request)
}

func NewValidationController(qualityService service.QualityService, authorizationService service.AuthorizationService) ValidationController {
	return &validationControllerImpl{
		qualityService:       qualityService,
		authorizationService: authorizationService,
	}
}

type validationControllerImpl struct {
	qualityService       service.QualityService
	authorizationService service.AuthorizationService
}

func (v validationControllerImpl) ValidatePage(w http.ResponseWriter, r *http.Request) {
	ctx := secctx.MakeUserContext(r)
	sufficientPrivileges, err := v.authorizationService.HasAuditWritePermission(ctx)
	if err != nil {
		respondWithError(w, "Failed to check permissions", err)
		return
	}
	if !sufficientPrivileges {
		respondForbidden(w)
		return
	}

	var req view.ValidationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := v.qualityService.ValidatePage(ctx, req)
	if err != nil {
		respondWithError(w, "Failed to validate page", err)
		return
	}
	respondWithJson(w, http.StatusCreated, result)
}

func (v validationControllerImpl) GetValidation(w http.ResponseWriter, r *http.Request) {
	ctx := secctx.MakeUserContext(r)
	sufficientPrivileges, err := v.authorizationService.HasAuditReadPermission(ctx)
	if err != nil {
		respondWithError(w, "Failed to check permissions", err)
		return
	}
	if !sufficientPrivileges {
		respondForbidden(w)
		return
	}

	result, err := v.qualityService.GetValidation(ctx, getStringParam(r, "validationId"))
	if err != nil {
		respondWithError(w, "Failed to get validation", err)
		return
	}
	respondWithJson(w, http.StatusOK, result)
}
