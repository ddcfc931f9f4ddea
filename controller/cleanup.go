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

	"github.com/thundercloud/site-audit-service/exception"
	"github.com/thundercloud/site-audit-service/secctx"
	"github.com/thundercloud/site-audit-service/service"
)

type CleanupController interface {
	ClearWebsiteData(w http.ResponseWriter, r *http.Request)
}

type cleanupControllerImpl struct {
	cleanupService       service.CleanupService
	authorizationService service.AuthorizationService
	systemInfoService    service.SystemInfoService
}

func NewCleanupController(cleanupService service.CleanupService, authorizationService service.AuthorizationService, systemInfoService service.SystemInfoService) CleanupController {
	return &cleanupControllerImpl{
		cleanupService:       cleanupService,
		authorizationService: authorizationService,
		systemInfoService:    systemInfoService,
	}
}

func (c cleanupControllerImpl) ClearWebsiteData(w http.ResponseWriter, r *http.Request) {
	if c.systemInfoService.IsProductionMode() {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.OperationNotAllowed,
			Message: exception.OperationNotAllowedMsg,
		})
		return
	}
	ctx := secctx.MakeUserContext(r)
	sufficientPrivileges, err := c.authorizationService.HasManagementPermission(ctx)
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

	result, err := c.cleanupService.ClearWebsiteData(ctx, websiteId)
	if err != nil {
		respondWithError(w, "Failed to clear website data", err)
		return
	}

	respondWithJson(w, http.StatusOK, result)
}
