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
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/audit"
	"github.com/thundercloud/site-audit-service/entity"
	"github.com/thundercloud/site-audit-service/exception"
	"github.com/thundercloud/site-audit-service/repository"
	"github.com/thundercloud/site-audit-service/secctx"
	"github.com/thundercloud/site-audit-service/view"
)

type AuditTaskService interface {
	CreateTask(ctx context.Context, req view.AuditTaskRequest) (*view.AuditTask, error)
	// EnqueueTask returns the pending task for the same page if there is one.
	EnqueueTask(ctx context.Context, req view.AuditTaskRequest) (*view.AuditTask, error)
	GetTask(ctx context.Context, id string) (*view.AuditTask, error)
}

func NewAuditTaskService(taskRepo repository.AuditTaskRepository) AuditTaskService {
	return &auditTaskServiceImpl{taskRepo: taskRepo}
}

type auditTaskServiceImpl struct {
	taskRepo repository.AuditTaskRepository
}

func (a auditTaskServiceImpl) CreateTask(ctx context.Context, req view.AuditTaskRequest) (*view.AuditTask, error) {
	ent, err := a.makeTask(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := a.taskRepo.SaveTask(ctx, ent); err != nil {
		return nil, err
	}
	log.Infof("Audit task %s created for website %s, url %s", ent.Id, ent.WebsiteId, ent.Url)
	res := entity.MakeAuditTaskView(*ent)
	return &res, nil
}

func (a auditTaskServiceImpl) EnqueueTask(ctx context.Context, req view.AuditTaskRequest) (*view.AuditTask, error) {
	existing, err := a.taskRepo.FindPendingTask(ctx, req.WebsiteId, req.Url)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Debugf("Audit task %s is already pending for website %s, url %s", existing.Id, existing.WebsiteId, existing.Url)
		res := entity.MakeAuditTaskView(*existing)
		return &res, nil
	}
	return a.CreateTask(ctx, req)
}

func (a auditTaskServiceImpl) GetTask(ctx context.Context, id string) (*view.AuditTask, error) {
	ent, err := a.taskRepo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.EntityNotFound,
			Message: exception.EntityNotFoundMsg,
			Params:  map[string]interface{}{"entity": "audit task", "id": id},
		}
	}
	res := entity.MakeAuditTaskView(*ent)
	return &res, nil
}

func (a auditTaskServiceImpl) makeTask(ctx context.Context, req view.AuditTaskRequest) (*entity.AuditTask, error) {
	var missing []string
	if strings.TrimSpace(req.WebsiteId) == "" {
		missing = append(missing, "websiteId")
	}
	if strings.TrimSpace(req.Url) == "" {
		missing = append(missing, "url")
	}
	if len(missing) > 0 {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.RequiredParamsMissing,
			Message: exception.RequiredParamsMissingMsg,
			Params:  map[string]interface{}{"params": strings.Join(missing, ", ")},
		}
	}
	scope, err := audit.ParseScope(string(req.Scope))
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidAuditScope,
			Message: exception.InvalidAuditScopeMsg,
			Params:  map[string]interface{}{"scope": req.Scope},
		}
	}
	return &entity.AuditTask{
		Id:        uuid.New().String(),
		WebsiteId: req.WebsiteId,
		Url:       req.Url,
		Scope:     scope,
		Status:    view.TaskStatusNotStarted,
		CreatedAt: time.Now(),
		CreatedBy: secctx.GetUserId(ctx),
	}, nil
}
