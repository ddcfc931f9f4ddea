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

package service

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/client"
	"github.com/thundercloud/site-audit-service/exception"
	"github.com/thundercloud/site-audit-service/view"
)

type AutofixService interface {
	FixPage(ctx context.Context, req view.AutofixRequest) (*view.AutofixResponse, error)
}

// NewAutofixService accepts a nil llmClient, in which case every fix request is rejected.
func NewAutofixService(auditService AuditService, llmClient client.LLMClient) AutofixService {
	return &autofixServiceImpl{
		auditService: auditService,
		llmClient:    llmClient,
	}
}

type autofixServiceImpl struct {
	auditService AuditService
	llmClient    client.LLMClient
}

func (a autofixServiceImpl) FixPage(ctx context.Context, req view.AutofixRequest) (*view.AutofixResponse, error) {
	if a.llmClient == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotImplemented,
			Code:    exception.AutofixNotConfigured,
			Message: exception.AutofixNotConfiguredMsg,
		}
	}

	before, err := a.auditService.Evaluate(ctx, req.Html, req.Url, req.Scope)
	if err != nil {
		return nil, err
	}

	var fixable []view.Finding
	attempted := make([]string, 0)
	for _, f := range before.Findings {
		if f.AutoFixAvailable {
			fixable = append(fixable, f)
			attempted = append(attempted, f.Id)
		}
	}
	if len(fixable) == 0 {
		return &view.AutofixResponse{
			FixedHtml:      req.Html,
			AttemptedFixes: attempted,
			ResolvedFixes:  []string{},
			Before:         before,
			After:          before,
		}, nil
	}

	out, err := a.llmClient.FixPage(ctx, req.Html, fixable)
	if err != nil {
		return nil, autofixError(err.Error())
	}

	after, err := a.auditService.Evaluate(ctx, out.Html, req.Url, before.Scope)
	if err != nil {
		return nil, autofixError("fixed page cannot be audited: " + err.Error())
	}

	resolved := resolvedFindings(attempted, after.Findings)
	log.Infof("Autofix resolved %d of %d findings, score %d -> %d", len(resolved), len(attempted), before.TotalScore, after.TotalScore)

	return &view.AutofixResponse{
		FixedHtml:      out.Html,
		AttemptedFixes: attempted,
		ResolvedFixes:  resolved,
		Before:         before,
		After:          after,
	}, nil
}

// resolvedFindings lists the attempted finding ids absent from the re-audit.
func resolvedFindings(attempted []string, after []view.Finding) []string {
	remaining := map[string]bool{}
	for _, f := range after {
		remaining[f.Id] = true
	}
	resolved := make([]string, 0, len(attempted))
	for _, id := range attempted {
		if !remaining[id] {
			resolved = append(resolved, id)
		}
	}
	return resolved
}

func autofixError(reason string) error {
	return &exception.CustomError{
		Status:  http.StatusFailedDependency,
		Code:    exception.AutofixFailed,
		Message: exception.AutofixFailedMsg,
		Params:  map[string]interface{}{"reason": reason},
	}
}
