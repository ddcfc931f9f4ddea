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
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/thundercloud/site-audit-service/secctx"
	"github.com/thundercloud/site-audit-service/service"
	"github.com/thundercloud/site-audit-service/view"
)

type fakeAuditService struct {
	record      *view.AuditRecord
	records     *view.AuditRecords
	err         error
	called      bool
	lastReq     view.AuditRequest
	lastWebsite string
	lastLimit   int
}

func (f *fakeAuditService) Evaluate(ctx context.Context, html string, url string, scope view.Scope) (*view.AuditResult, error) {
	return nil, errors.New("not expected")
}

func (f *fakeAuditService) CreateAudit(ctx context.Context, req view.AuditRequest) (*view.AuditRecord, error) {
	f.called = true
	f.lastReq = req
	return f.record, f.err
}

func (f *fakeAuditService) GetAudit(ctx context.Context, id string) (*view.AuditRecord, error) {
	f.called = true
	return f.record, f.err
}

func (f *fakeAuditService) GetWebsiteAudits(ctx context.Context, websiteId string, limit int) (*view.AuditRecords, error) {
	f.called = true
	f.lastWebsite = websiteId
	f.lastLimit = limit
	return f.records, f.err
}

type fakeQualityService struct {
	record  *view.ValidationRecord
	err     error
	lastReq view.ValidationRequest
}

func (f *fakeQualityService) ValidatePage(ctx context.Context, req view.ValidationRequest) (*view.ValidationRecord, error) {
	f.lastReq = req
	return f.record, f.err
}

func (f *fakeQualityService) GetValidation(ctx context.Context, id string) (*view.ValidationRecord, error) {
	return f.record, f.err
}

type fakeTaskService struct {
	task      *view.AuditTask
	err       error
	createdBy string
}

func (f *fakeTaskService) CreateTask(ctx context.Context, req view.AuditTaskRequest) (*view.AuditTask, error) {
	f.createdBy = secctx.GetUserId(ctx)
	return f.task, f.err
}

func (f *fakeTaskService) EnqueueTask(ctx context.Context, req view.AuditTaskRequest) (*view.AuditTask, error) {
	return f.task, f.err
}

func (f *fakeTaskService) GetTask(ctx context.Context, id string) (*view.AuditTask, error) {
	return f.task, f.err
}

type fakeAutofixService struct {
	resp *view.AutofixResponse
	err  error
}

func (f *fakeAutofixService) FixPage(ctx context.Context, req view.AutofixRequest) (*view.AutofixResponse, error) {
	return f.resp, f.err
}

type fakeCleanupService struct {
	called bool
	err    error
}

func (f *fakeCleanupService) ClearWebsiteData(ctx context.Context, websiteId string) (*view.CleanupResult, error) {
	f.called = true
	return &view.CleanupResult{WebsiteId: websiteId, Audits: 3, Validations: 1}, f.err
}

type fakeSystemInfo struct {
	service.SystemInfoService
	production bool
}

func (f fakeSystemInfo) IsProductionMode() bool {
	return f.production
}

type fakeLLMClient struct {
	model    string
	prompt   string
	modelErr error
}

func (f *fakeLLMClient) FixPage(ctx context.Context, html string, findings []view.Finding) (*view.FixedPageOutput, error) {
	return nil, errors.New("not expected")
}

func (f *fakeLLMClient) UpdateFixPagePrompt(prompt string) {
	f.prompt = prompt
}

func (f *fakeLLMClient) UpdateModel(model string) error {
	if f.modelErr != nil {
		return f.modelErr
	}
	f.model = model
	return nil
}

func (f *fakeLLMClient) GetModel() string {
	return f.model
}

// serve routes a single request through a router holding one handler, as a
// user with the given roles.
func serve(method, pattern, path, body string, h http.HandlerFunc, roles ...view.SystemRole) *httptest.ResponseRecorder {
	router := mux.NewRouter().UseEncodedPath()
	router.HandleFunc(pattern, h).Methods(method)

	ext := auth.Extensions{}
	for _, role := range roles {
		ext.Add(secctx.SystemRoleExt, string(role))
	}
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r = auth.RequestWithUser(auth.NewDefaultUser("tester", "user-1", nil, ext), r)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}
