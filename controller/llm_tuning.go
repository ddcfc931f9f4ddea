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
	"strings"

	"github.com/thundercloud/site-audit-service/client"
	"github.com/thundercloud/site-audit-service/exception"
	"github.com/thundercloud/site-audit-service/secctx"
	"github.com/thundercloud/site-audit-service/service"
	"github.com/thundercloud/site-audit-service/view"
)

type LLMTuningController interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateFixPagePrompt(w http.ResponseWriter, r *http.Request)
	UpdateModel(w http.ResponseWriter, r *http.Request)
}

// NewLLMTuningController accepts a nil openaiClient when auto-fix is not configured.
func NewLLMTuningController(openaiClient client.LLMClient, authorizationService service.AuthorizationService) LLMTuningController {
	return &llmTuningControllerImpl{openaiClient: openaiClient, authorizationService: authorizationService}
}

type llmTuningControllerImpl struct {
	openaiClient         client.LLMClient
	authorizationService service.AuthorizationService
}

// checkAccess writes the error response and returns false when the caller cannot tune the model.
func (l llmTuningControllerImpl) checkAccess(w http.ResponseWriter, r *http.Request) bool {
	ctx := secctx.MakeUserContext(r)
	sufficientPrivileges, err := l.authorizationService.HasManagementPermission(ctx)
	if err != nil {
		respondWithError(w, "Failed to check permissions", err)
		return false
	}
	if !sufficientPrivileges {
		respondForbidden(w)
		return false
	}
	if l.openaiClient == nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusNotImplemented,
			Code:    exception.AutofixNotConfigured,
			Message: exception.AutofixNotConfiguredMsg,
		})
		return false
	}
	return true
}

func (l llmTuningControllerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	if !l.checkAccess(w, r) {
		return
	}
	respondWithJson(w, http.StatusOK, view.LLMSettings{Model: l.openaiClient.GetModel()})
}

func (l llmTuningControllerImpl) UpdateFixPagePrompt(w http.ResponseWriter, r *http.Request) {
	if !l.checkAccess(w, r) {
		return
	}
	var req view.UpdatePromptReq
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.RequiredParamsMissing,
			Message: exception.RequiredParamsMissingMsg,
			Params:  map[string]interface{}{"params": "prompt"},
		})
		return
	}

	l.openaiClient.UpdateFixPagePrompt(req.Prompt)
	w.WriteHeader(http.StatusNoContent)
}

func (l llmTuningControllerImpl) UpdateModel(w http.ResponseWriter, r *http.Request) {
	if !l.checkAccess(w, r) {
		return
	}
	var req view.UpdateModelReq
	if !decodeBody(w, r, &req) {
		return
	}

	err := l.openaiClient.UpdateModel(req.Model)
	if err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidParameterValue,
			Message: exception.InvalidParameterValueMsg,
			Params:  map[string]interface{}{"param": "model", "value": req.Model},
			Debug:   err.Error(),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
