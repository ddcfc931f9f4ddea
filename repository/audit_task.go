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

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/thundercloud/site-audit-service/db"
	"github.com/thundercloud/site-audit-service/entity"
	"github.com/thundercloud/site-audit-service/view"
)

type AuditTaskRepository interface {
	SaveTask(ctx context.Context, ent *entity.AuditTask) error
	GetTask(ctx context.Context, id string) (*entity.AuditTask, error)
	FindPendingTask(ctx context.Context, websiteId string, url string) (*entity.AuditTask, error)
	FindFreeTask(ctx context.Context, executorId string) (*entity.AuditTask, error)
	SetTaskStatus(ctx context.Context, id string, status view.TaskStatus, details string, executorId string) error
	CompleteTask(ctx context.Context, id string, auditId string, executorId string) error
	UpdateLastActive(ctx context.Context, id string, executorId string) error
}

func NewAuditTaskRepository(cp db.ConnectionProvider) AuditTaskRepository {
	return &auditTaskRepositoryImpl{cp: cp}
}

type auditTaskRepositoryImpl struct {
	cp db.ConnectionProvider
}

const taskKeepaliveTimeoutSec = 30

const maxTaskRestarts = 2

var queryTaskToProcess = fmt.Sprintf("select * from audit_task t where "+
	"(t.status='%s' or (t.status='%s' and t.last_active < (now() - interval '%d seconds'))) "+
	"order by t.created_at ASC limit 1 for no key update skip locked", view.TaskStatusNotStarted, view.TaskStatusProcessing, taskKeepaliveTimeoutSec)

func (a auditTaskRepositoryImpl) SaveTask(ctx context.Context, ent *entity.AuditTask) error {
	_, err := a.cp.GetConnection().ModelContext(ctx, ent).Insert()
	return err
}

func (a auditTaskRepositoryImpl) GetTask(ctx context.Context, id string) (*entity.AuditTask, error) {
	var result entity.AuditTask
	err := a.cp.GetConnection().ModelContext(ctx, &result).
		Where("id = ?", id).
		Select()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (a auditTaskRepositoryImpl) FindPendingTask(ctx context.Context, websiteId string, url string) (*entity.AuditTask, error) {
	var result entity.AuditTask
	err := a.cp.GetConnection().ModelContext(ctx, &result).
		Where("website_id = ?", websiteId).
		Where("url = ?", url).
		Where("status = ?", view.TaskStatusNotStarted).
		Order("created_at DESC").
		Limit(1).
		Select()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// FindFreeTask claims the oldest task that is not started or whose executor
// stopped reporting. Tasks restarted too many times are failed and skipped.
func (a auditTaskRepositoryImpl) FindFreeTask(ctx context.Context, executorId string) (*entity.AuditTask, error) {
	var result *entity.AuditTask
	var err error

	for {
		taskFailed := false
		result = nil
		err = a.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
			var ents []entity.AuditTask

			_, err := tx.Query(&ents, queryTaskToProcess)
			if err != nil {
				if errors.Is(err, pg.ErrNoRows) {
					return nil
				}
				return fmt.Errorf("failed to find free audit task: %w", err)
			}
			if len(ents) == 0 {
				return nil
			}
			candidate := &ents[0]

			if candidate.RestartCount >= maxTaskRestarts {
				_, err := tx.Model(candidate).
					Where("id = ?", candidate.Id).
					Set("status = ?", view.TaskStatusError).
					Set("details = ?", fmt.Sprintf("Restart count exceeded limit. Details: %v", candidate.Details)).
					Set("last_active = now()").
					Update()
				if err != nil {
					return err
				}
				taskFailed = true
				return nil
			}

			if candidate.Status != view.TaskStatusNotStarted {
				candidate.RestartCount += 1
			}
			candidate.Status = view.TaskStatusProcessing
			candidate.ExecutorId = executorId

			_, err = tx.Model(candidate).
				Set("status = ?status").
				Set("executor_id = ?executor_id").
				Set("restart_count = ?restart_count").
				Set("last_active = now()").
				Where("id = ?", candidate.Id).
				Update()
			if err != nil {
				return fmt.Errorf("unable to update audit task status during takeTask: %w", err)
			}
			result = candidate
			return nil
		})
		if taskFailed {
			continue
		}
		break
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (a auditTaskRepositoryImpl) SetTaskStatus(ctx context.Context, id string, status view.TaskStatus, details string, executorId string) error {
	_, err := a.cp.GetConnection().ModelContext(ctx, (*entity.AuditTask)(nil)).
		Set("status = ?", status).
		Set("details = ?", details).
		Set("last_active = now()").
		Where("id = ?", id).
		Where("executor_id = ?", executorId).
		Update()
	return err
}

func (a auditTaskRepositoryImpl) CompleteTask(ctx context.Context, id string, auditId string, executorId string) error {
	_, err := a.cp.GetConnection().ModelContext(ctx, (*entity.AuditTask)(nil)).
		Set("status = ?", view.TaskStatusSuccess).
		Set("audit_id = ?", auditId).
		Set("details = ''").
		Set("last_active = now()").
		Where("id = ?", id).
		Where("executor_id = ?", executorId).
		Update()
	return err
}

func (a auditTaskRepositoryImpl) UpdateLastActive(ctx context.Context, id string, executorId string) error {
	_, err := a.cp.GetConnection().ModelContext(ctx, (*entity.AuditTask)(nil)).
		Set("last_active = now()").
		Where("id = ?", id).
		Where("executor_id = ?", executorId).
		Where("status = ?", view.TaskStatusProcessing).
		Update()
	return err
}
