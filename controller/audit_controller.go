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

type AuditController interface {
	CreateAudit(w http.ResponseWriter, r *http.Request)
	GetAudit(w http.ResponseWriter, r *http.Request)
	GetWebsiteAudits(w http.ResponseWriter, r *http.Request)
}

func NewAuditController(auditService service.AuditService, authorizationService service.AuthorizationService) AuditController {
	return &auditControllerImpl{
		auditService:         auditService,
		authorizationService: authorizationService,
	}
}

type auditControllerImpl struct {
	auditService         service.AuditService
	authorizationService service.AuthorizationService
}

func (a auditControllerImpl) CreateAudit(w http.ResponseWriter, r *http.Request) {
	ctx := secctx.MakeUserContext(r)
	sufficientPrivileges, err := a.authorizationService.HasAuditWritePermission(ctx)
	if err != nil {
		respondWithError(w, "Failed to check permissions", err)
		return
	}
	if !sufficientPrivileges {
		respondForbidden(w)
		return
	}

	var req view.AuditRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := a.auditService.CreateAudit(ctx, req)
	if err != nil {
		respondWithError(w, "Failed to run audit", err)
		return
	}
	respondWithJson(w, http.StatusCreated, result)
}

func (a auditControllerImpl) GetAudit(w http.ResponseWriter, r *http.Request) {
	ctx := secctx.MakeUserContext(r)
	sufficientPrivileges, err := a.authorizationService.HasAuditReadPermission(ctx)
	if err != nil {
		respondWithError(w, "Failed to check permissions", err)
		return
	}
	if !sufficientPrivileges {
		respondForbidden(w)
		return
	}

	result, err := a.auditService.GetAudit(ctx, getStringParam(r, "auditId"))
	if err != nil {
		respondWithError(w, "Failed to get audit", err)
		return
	}
	respondWithJson(w, http.StatusOK, result)
}

func (a auditControllerImpl) GetWebsiteAudits(w http.ResponseWriter, r *http.Request) {
	ctx := secctx.MakeUserContext(r)
	sufficientPrivileges, err := a.authorizationService.HasAuditReadPermission(ctx)
	if err != nil {
		respondWithError(w, "Failed to check permissions", err)
		return
	}
	if !sufficientPrivileges {
		respondForbidden(w)
		return
	}

	websiteId, ok := getUnescapedParamOrRespond(w, r, "websiteId")
	if !ok {
		return
	}
	limit, err := getIntQueryParam(r, "limit")
	if err != nil {
		respondWithError(w, "Failed to read limit", err)
		return
	}

	result, err := a.auditService.GetWebsiteAudits(ctx, websiteId, limit)
	if err != nil {
		respondWithError(w, "Failed to get website audits", err)
		return
	}
	respondWithJson(w, http.StatusOK, result)
}
