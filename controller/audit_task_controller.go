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

type AuditTaskController interface {
	CreateTask(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
}

func NewAuditTaskController(taskService service.AuditTaskService, authorizationService service.AuthorizationService) AuditTaskController {
	return &auditTaskControllerImpl{
		taskService:          taskService,
		authorizationService: authorizationService,
	}
}

type auditTaskControllerImpl struct {
	taskService          service.AuditTaskService
	authorizationService service.AuthorizationService
}

func (a auditTaskControllerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
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

	var req view.AuditTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	task, err := a.taskService.CreateTask(ctx, req)
	if err != nil {
		respondWithError(w, "Failed to create audit task", err)
		return
	}
	respondWithJson(w, http.StatusAccepted, task)
}

func (a auditTaskControllerImpl) GetTask(w http.ResponseWriter, r *http.Request) {
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

	task, err := a.taskService.GetTask(ctx, getStringParam(r, "taskId"))
	if err != nil {
		respondWithError(w, "Failed to get audit task", err)
		return
	}
	respondWithJson(w, http.StatusOK, task)
}
