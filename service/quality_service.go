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
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/entity"
	"github.com/thundercloud/site-audit-service/exception"
	"github.com/thundercloud/site-audit-service/quality"
	"github.com/thundercloud/site-audit-service/repository"
	"github.com/thundercloud/site-audit-service/secctx"
	"github.com/thundercloud/site-audit-service/utils"
	"github.com/thundercloud/site-audit-service/view"
)

type QualityService interface {
	ValidatePage(ctx context.Context, req view.ValidationRequest) (*view.ValidationRecord, error)
	GetValidation(ctx context.Context, id string) (*view.ValidationRecord, error)
}

func NewQualityService(validationRepo repository.QualityValidationRepository, minScore int) QualityService {
	return &qualityServiceImpl{
		validationRepo: validationRepo,
		opts:           quality.Options{MinScore: minScore},
	}
}

type qualityServiceImpl struct {
	validationRepo repository.QualityValidationRepository
	opts           quality.Options
}

func (q qualityServiceImpl) ValidatePage(ctx context.Context, req view.ValidationRequest) (*view.ValidationRecord, error) {
	if strings.TrimSpace(req.WebsiteId) == "" {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.RequiredParamsMissing,
			Message: exception.RequiredParamsMissingMsg,
			Params:  map[string]interface{}{"params": "websiteId"},
		}
	}
	result, err := quality.Validate(req.Html, q.opts)
	if err != nil {
		return nil, toInputError(err)
	}

	ent := entity.MakeQualityValidationEntity(uuid.New().String(), req.WebsiteId, utils.CreateSHA256Hash([]byte(req.Html)), result, secctx.GetUserId(ctx))
	if err := q.validationRepo.SaveValidation(ctx, ent); err != nil {
		return nil, err
	}
	log.Debugf("Quality validation %s for website %s saved: score %d, passed %t", ent.Id, ent.WebsiteId, ent.Score, ent.Passed)

	record := entity.MakeValidationRecordView(*ent)
	return &record, nil
}

func (q qualityServiceImpl) GetValidation(ctx context.Context, id string) (*view.ValidationRecord, error) {
	ent, err := q.validationRepo.GetValidation(ctx, id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.EntityNotFound,
			Message: exception.EntityNotFoundMsg,
			Params:  map[string]interface{}{"entity": "validation", "id": id},
		}
	}
	record := entity.MakeValidationRecordView(*ent)
	return &record, nil
}
