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
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thundercloud/site-audit-service/exception"
	"github.com/thundercloud/site-audit-service/service"
	"github.com/thundercloud/site-audit-service/view"
)

func TestValidationController_ValidatePage(t *testing.T) {
	quality := &fakeQualityService{record: &view.ValidationRecord{
		Id:               "v-1",
		ValidationResult: view.ValidationResult{Passed: false, Score: 56, MinScore: 75},
	}}
	c := NewValidationController(quality, service.NewAuthorizationService())

	rec := serve(http.MethodPost, "/api/v1/validations", "/api/v1/validations",
		`{"websiteId":"site-1","html":"`+emptyPage+`"}`, c.ValidatePage, view.AuditorRole)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "site-1", quality.lastReq.WebsiteId)

	var record view.ValidationRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, 56, record.Score)
	assert.False(t, record.Passed)
}

func TestValidationController_GetValidation_NotFound(t *testing.T) {
	quality := &fakeQualityService{err: &exception.CustomError{
		Status:  http.StatusNotFound,
		Code:    exception.EntityNotFound,
		Message: exception.EntityNotFoundMsg,
		Params:  map[string]interface{}{"entity": "validation", "id": "v-404"},
	}}
	c := NewValidationController(quality, service.NewAuthorizationService())

	rec := serve(http.MethodGet, "/api/v1/validations/{validationId}", "/api/v1/validations/v-404", "", c.GetValidation)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "validation with id v-404 is not found", decodeError(t, rec.Body.Bytes()).Error())
}

func TestAuditTaskController_CreateTask(t *testing.T) {
	tasks := &fakeTaskService{task: &view.AuditTask{Id: "t-1", Status: view.TaskStatusNotStarted}}
	c := NewAuditTaskController(tasks, service.NewAuthorizationService())

	rec := serve(http.MethodPost, "/api/v1/audit-tasks", "/api/v1/audit-tasks",
		`{"websiteId":"site-1","url":"https://example.com/"}`, c.CreateTask, view.AuditorRole)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "user-1", tasks.createdBy)
	assert.Contains(t, rec.Body.String(), `"status":"not_started"`)
}

func TestAuditTaskController_CreateTask_Forbidden(t *testing.T) {
	c := NewAuditTaskController(&fakeTaskService{}, service.NewAuthorizationService())

	rec := serve(http.MethodPost, "/api/v1/audit-tasks", "/api/v1/audit-tasks", `{}`, c.CreateTask)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAutofixController_FixPage_NotConfigured(t *testing.T) {
	autofix := &fakeAutofixService{err: &exception.CustomError{
		Status:  http.StatusNotImplemented,
		Code:    exception.AutofixNotConfigured,
		Message: exception.AutofixNotConfiguredMsg,
	}}
	c := NewAutofixController(autofix, service.NewAuthorizationService())

	rec := serve(http.MethodPost, "/api/v1/autofix", "/api/v1/autofix", `{"html":"x"}`, c.FixPage, view.AuditorRole)

	require.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Equal(t, exception.AutofixNotConfigured, decodeError(t, rec.Body.Bytes()).Code)
}

func TestAutofixController_FixPage(t *testing.T) {
	autofix := &fakeAutofixService{resp: &view.AutofixResponse{FixedHtml: "<html></html>", ResolvedFixes: []string{"title_missing"}}}
	c := NewAutofixController(autofix, service.NewAuthorizationService())

	rec := serve(http.MethodPost, "/api/v1/autofix", "/api/v1/autofix", `{"html":"x"}`, c.FixPage, view.SysadmRole)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"resolvedFixes":["title_missing"]`)
}

func TestCleanupController_ClearWebsiteData(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		roles      []view.SystemRole
		status     int
		called     bool
	}{
		{name: "production", production: true, roles: []view.SystemRole{view.SysadmRole}, status: http.StatusNotFound},
		{name: "auditor", roles: []view.SystemRole{view.AuditorRole}, status: http.StatusForbidden},
		{name: "sysadm", roles: []view.SystemRole{view.SysadmRole}, status: http.StatusOK, called: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := &fakeCleanupService{}
			c := NewCleanupController(cleanup, service.NewAuthorizationService(), fakeSystemInfo{production: tt.production})

			rec := serve(http.MethodDelete, "/api/v1/websites/{websiteId}/audits", "/api/v1/websites/site-1/audits", "", c.ClearWebsiteData, tt.roles...)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.called, cleanup.called)
			if tt.called {
				var result view.CleanupResult
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
				assert.Equal(t, view.CleanupResult{WebsiteId: "site-1", Audits: 3, Validations: 1}, result)
			}
		})
	}
}

func TestLLMTuningController(t *testing.T) {
	llm := &fakeLLMClient{model: "gpt-4o-mini"}
	c := NewLLMTuningController(llm, service.NewAuthorizationService())

	rec := serve(http.MethodGet, "/api/v1/llm/settings", "/api/v1/llm/settings", "", c.GetSettings, view.SysadmRole)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"model":"gpt-4o-mini"}`, rec.Body.String())

	rec = serve(http.MethodGet, "/api/v1/llm/settings", "/api/v1/llm/settings", "", c.GetSettings, view.AuditorRole)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(http.MethodPut, "/api/v1/llm/prompt", "/api/v1/llm/prompt", `{"prompt":"  "}`, c.UpdateFixPagePrompt, view.SysadmRole)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, exception.RequiredParamsMissing, decodeError(t, rec.Body.Bytes()).Code)

	rec = serve(http.MethodPut, "/api/v1/llm/prompt", "/api/v1/llm/prompt", `{"prompt":"Fix it"}`, c.UpdateFixPagePrompt, view.SysadmRole)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "Fix it", llm.prompt)

	rec = serve(http.MethodPut, "/api/v1/llm/model", "/api/v1/llm/model", `{"model":"gpt-4.1"}`, c.UpdateModel, view.SysadmRole)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "gpt-4.1", llm.model)

	llm.modelErr = errors.New("empty model")
	rec = serve(http.MethodPut, "/api/v1/llm/model", "/api/v1/llm/model", `{"model":""}`, c.UpdateModel, view.SysadmRole)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, exception.InvalidParameterValue, decodeError(t, rec.Body.Bytes()).Code)
}

func TestLLMTuningController_NotConfigured(t *testing.T) {
	c := NewLLMTuningController(nil, service.NewAuthorizationService())

	rec := serve(http.MethodGet, "/api/v1/llm/settings", "/api/v1/llm/settings", "", c.GetSettings, view.SysadmRole)

	require.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Equal(t, exception.AutofixNotConfigured, decodeError(t, rec.Body.Bytes()).Code)
}

func TestHealthController(t *testing.T) {
	c := NewHealthController()

	rec := serve(http.MethodGet, "/live", "/live", "", c.Live)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(http.MethodGet, "/ready", "/ready", "", c.Ready)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	c.SetReady()
	rec = serve(http.MethodGet, "/ready", "/ready", "", c.Ready)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSchemaController(t *testing.T) {
	c := NewSchemaController()

	rec := serve(http.MethodGet, "/api/v1/schema/audit-result", "/api/v1/schema/audit-result", "", c.GetAuditResultSchema)
	require.Equal(t, http.StatusOK, rec.Code)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schema))
	properties, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, properties, "totalScore")
	assert.Contains(t, properties, "findings")

	rec = serve(http.MethodGet, "/api/v1/schema/validation-result", "/api/v1/schema/validation-result", "", c.GetValidationResultSchema)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"minScore"`)
}
