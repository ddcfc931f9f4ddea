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
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/audit"
	"github.com/thundercloud/site-audit-service/entity"
	"github.com/thundercloud/site-audit-service/exception"
	"github.com/thundercloud/site-audit-service/repository"
	"github.com/thundercloud/site-audit-service/secctx"
	"github.com/thundercloud/site-audit-service/utils"
	"github.com/thundercloud/site-audit-service/view"
)

type AuditService interface {
	// Evaluate runs an audit without persisting it.
	Evaluate(ctx context.Context, html string, url string, scope view.Scope) (*view.AuditResult, error)
	CreateAudit(ctx context.Context, req view.AuditRequest) (*view.AuditRecord, error)
	GetAudit(ctx context.Context, id string) (*view.AuditRecord, error)
	GetWebsiteAudits(ctx context.Context, websiteId string, limit int) (*view.AuditRecords, error)
}

const defaultAuditsLimit = 20
const maxAuditsLimit = 100

func NewAuditService(auditRepo repository.SiteAuditRepository, cache AuditCache) AuditService {
	return &auditServiceImpl{
		auditRepo: auditRepo,
		cache:     cache,
	}
}

type auditServiceImpl struct {
	auditRepo repository.SiteAuditRepository
	cache     AuditCache
}

func (a auditServiceImpl) Evaluate(ctx context.Context, html string, url string, scope view.Scope) (*view.AuditResult, error) {
	parsedScope, err := audit.ParseScope(string(scope))
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidAuditScope,
			Message: exception.InvalidAuditScopeMsg,
			Params:  map[string]interface{}{"scope": scope},
			Debug:   err.Error(),
		}
	}

	key := utils.CreateAuditKey(string(parsedScope), url, html)
	if cached, ok := a.cache.Get(ctx, key); ok {
		log.Debugf("Audit result %s is taken from cache", key)
		return cached, nil
	}

	result, err := audit.Run(html, audit.Options{Scope: parsedScope, URL: url})
	if err != nil {
		return nil, toInputError(err)
	}
	a.cache.Put(ctx, key, result)
	return result, nil
}

func (a auditServiceImpl) CreateAudit(ctx context.Context, req view.AuditRequest) (*view.AuditRecord, error) {
	if strings.TrimSpace(req.WebsiteId) == "" {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.RequiredParamsMissing,
			Message: exception.RequiredParamsMissingMsg,
			Params:  map[string]interface{}{"params": "websiteId"},
		}
	}
	result, err := a.Evaluate(ctx, req.Html, req.Url, req.Scope)
	if err != nil {
		return nil, err
	}

	ent := entity.MakeSiteAuditEntity(uuid.New().String(), req, utils.CreateSHA256Hash([]byte(req.Html)), result, secctx.GetUserId(ctx))
	if err := a.auditRepo.SaveAudit(ctx, ent); err != nil {
		return nil, err
	}
	log.Debugf("Audit %s for website %s saved: %d/%d", ent.Id, ent.WebsiteId, ent.TotalScore, ent.MaxScore)

	record := entity.MakeAuditRecordView(*ent, audit.Budgets(ent.Scope))
	return &record, nil
}

func (a auditServiceImpl) GetAudit(ctx context.Context, id string) (*view.AuditRecord, error) {
	ent, err := a.auditRepo.GetAudit(ctx, id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.EntityNotFound,
			Message: exception.EntityNotFoundMsg,
			Params:  map[string]interface{}{"entity": "audit", "id": id},
		}
	}
	record := entity.MakeAuditRecordView(*ent, audit.Budgets(ent.Scope))
	return &record, nil
}

func (a auditServiceImpl) GetWebsiteAudits(ctx context.Context, websiteId string, limit int) (*view.AuditRecords, error) {
	ents, err := a.auditRepo.GetWebsiteAudits(ctx, websiteId, utils.ClampLimit(limit, defaultAuditsLimit, maxAuditsLimit))
	if err != nil {
		return nil, err
	}
	result := view.AuditRecords{Audits: make([]view.AuditRecord, 0, len(ents))}
	for _, ent := range ents {
		result.Audits = append(result.Audits, entity.MakeAuditRecordView(ent, audit.Budgets(ent.Scope)))
	}
	return &result, nil
}

// toInputError maps engine input errors to a 400 response error.
func toInputError(err error) error {
	var inputErr *exception.InvalidInputError
	if errors.As(err, &inputErr) {
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidHtmlInput,
			Message: exception.InvalidHtmlInputMsg,
			Params:  map[string]interface{}{"reason": inputErr.Reason},
		}
	}
	return err
}
