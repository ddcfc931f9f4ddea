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
	"fmt"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/client"
	"github.com/thundercloud/site-audit-service/entity"
	"github.com/thundercloud/site-audit-service/repository"
	"github.com/thundercloud/site-audit-service/secctx"
	"github.com/thundercloud/site-audit-service/utils"
	"github.com/thundercloud/site-audit-service/view"
)

type AuditTaskProcessor interface {
	Start()
}

const taskKeepaliveInterval = 5 * time.Second

func NewAuditTaskProcessor(taskRepo repository.AuditTaskRepository, auditService AuditService, siteClient client.SiteClient,
	executorId string, pollInterval time.Duration) AuditTaskProcessor {
	return &auditTaskProcessorImpl{
		taskRepo:     taskRepo,
		auditService: auditService,
		siteClient:   siteClient,
		executorId:   executorId,
		pollInterval: pollInterval,
	}
}

type auditTaskProcessorImpl struct {
	taskRepo     repository.AuditTaskRepository
	auditService AuditService
	siteClient   client.SiteClient

	executorId   string
	pollInterval time.Duration
}

func (p *auditTaskProcessorImpl) Start() {
	utils.SafeAsync(func() {
		ticker := time.NewTicker(p.pollInterval)

		running := atomic.Bool{}

		for range ticker.C {
			if !running.CompareAndSwap(false, true) {
				log.Tracef("auditTaskProcessorImpl: ticker skipped, running")
				continue
			}

			utils.SafeAsync(func() {
				defer running.Store(false)
				for p.processTask() {
					log.Tracef("auditTaskProcessorImpl: keep on running")
				}
			})
		}
	})
}

// processTask claims and runs one task. It reports whether there may be more work.
func (p *auditTaskProcessorImpl) processTask() bool {
	task, err := p.taskRepo.FindFreeTask(context.Background(), p.executorId)
	if err != nil {
		log.Errorf("Error finding free audit task: %s", err)
		return false
	}
	if task == nil {
		return false
	}
	p.runTask(secctx.MakeSysadminContext(context.Background()), *task)
	return true
}

func (p *auditTaskProcessorImpl) handleError(ctx context.Context, taskId string, err error) {
	log.Infof("Audit task %s failed with error: %s", taskId, err)
	setErr := p.taskRepo.SetTaskStatus(ctx, taskId, view.TaskStatusError, err.Error(), p.executorId)
	if setErr != nil {
		log.Errorf("Error updating status of audit task %s: %s", taskId, setErr)
	}
}

func (p *auditTaskProcessorImpl) runTask(ctx context.Context, task entity.AuditTask) {
	runningC := make(chan struct{})
	defer close(runningC)

	// update last_active during a long run
	utils.SafeAsync(func() {
		t := time.NewTicker(taskKeepaliveInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-runningC:
				return
			case <-t.C:
				if err := p.taskRepo.UpdateLastActive(ctx, task.Id, p.executorId); err != nil {
					log.Errorf("Error updating last active time of audit task %s: %s", task.Id, err)
				}
			}
		}
	})

	start := time.Now()
	log.Infof("Processing audit task %s: website %s, url %s, scope %s", task.Id, task.WebsiteId, task.Url, task.Scope)

	html, err := p.siteClient.FetchPage(ctx, task.Url)
	if err != nil {
		p.handleError(ctx, task.Id, err)
		return
	}

	record, err := p.auditService.CreateAudit(ctx, view.AuditRequest{
		WebsiteId: task.WebsiteId,
		Url:       task.Url,
		Html:      html,
		Scope:     task.Scope,
	})
	if err != nil {
		p.handleError(ctx, task.Id, fmt.Errorf("audit failed: %w", err))
		return
	}

	if err := p.taskRepo.CompleteTask(ctx, task.Id, record.Id, p.executorId); err != nil {
		log.Errorf("Error completing audit task %s: %s", task.Id, err)
		return
	}
	log.Infof("Audit task %s completed in %dms, audit id = %s", task.Id, time.Since(start).Milliseconds(), record.Id)
}
