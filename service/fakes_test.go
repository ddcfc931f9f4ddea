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
	"sort"
	"sync"
	"time"

	"github.com/thundercloud/site-audit-service/entity"
	"github.com/thundercloud/site-audit-service/view"
)

type fakeSiteAuditRepository struct {
	mutex     sync.Mutex
	audits    map[string]entity.SiteAudit
	lastLimit int
}

func newFakeSiteAuditRepository() *fakeSiteAuditRepository {
	return &fakeSiteAuditRepository{audits: map[string]entity.SiteAudit{}}
}

func (f *fakeSiteAuditRepository) SaveAudit(ctx context.Context, ent *entity.SiteAudit) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.audits[ent.Id] = *ent
	return nil
}

func (f *fakeSiteAuditRepository) GetAudit(ctx context.Context, id string) (*entity.SiteAudit, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	ent, ok := f.audits[id]
	if !ok {
		return nil, nil
	}
	return &ent, nil
}

func (f *fakeSiteAuditRepository) GetWebsiteAudits(ctx context.Context, websiteId string, limit int) ([]entity.SiteAudit, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.lastLimit = limit
	var res []entity.SiteAudit
	for _, ent := range f.audits {
		if ent.WebsiteId == websiteId {
			res = append(res, ent)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

type fakeQualityValidationRepository struct {
	validations map[string]entity.QualityValidation
}

func newFakeQualityValidationRepository() *fakeQualityValidationRepository {
	return &fakeQualityValidationRepository{validations: map[string]entity.QualityValidation{}}
}

func (f *fakeQualityValidationRepository) SaveValidation(ctx context.Context, ent *entity.QualityValidation) error {
	f.validations[ent.Id] = *ent
	return nil
}

func (f *fakeQualityValidationRepository) GetValidation(ctx context.Context, id string) (*entity.QualityValidation, error) {
	ent, ok := f.validations[id]
	if !ok {
		return nil, nil
	}
	return &ent, nil
}

type fakeAuditTaskRepository struct {
	mutex sync.Mutex
	tasks map[string]*entity.AuditTask
	order []string
}

func newFakeAuditTaskRepository() *fakeAuditTaskRepository {
	return &fakeAuditTaskRepository{tasks: map[string]*entity.AuditTask{}}
}

func (f *fakeAuditTaskRepository) SaveTask(ctx context.Context, ent *entity.AuditTask) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	copied := *ent
	f.tasks[ent.Id] = &copied
	f.order = append(f.order, ent.Id)
	return nil
}

func (f *fakeAuditTaskRepository) GetTask(ctx context.Context, id string) (*entity.AuditTask, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	ent, ok := f.tasks[id]
	if !ok {
		return nil, nil
	}
	copied := *ent
	return &copied, nil
}

func (f *fakeAuditTaskRepository) FindPendingTask(ctx context.Context, websiteId string, url string) (*entity.AuditTask, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	for _, id := range f.order {
		ent := f.tasks[id]
		if ent.WebsiteId == websiteId && ent.Url == url && ent.Status == view.TaskStatusNotStarted {
			copied := *ent
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAuditTaskRepository) FindFreeTask(ctx context.Context, executorId string) (*entity.AuditTask, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	for _, id := range f.order {
		ent := f.tasks[id]
		if ent.Status == view.TaskStatusNotStarted {
			ent.Status = view.TaskStatusProcessing
			ent.ExecutorId = executorId
			now := time.Now()
			ent.LastActive = &now
			copied := *ent
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAuditTaskRepository) SetTaskStatus(ctx context.Context, id string, status view.TaskStatus, details string, executorId string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if ent, ok := f.tasks[id]; ok && ent.ExecutorId == executorId {
		ent.Status = status
		ent.Details = details
	}
	return nil
}

func (f *fakeAuditTaskRepository) CompleteTask(ctx context.Context, id string, auditId string, executorId string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if ent, ok := f.tasks[id]; ok && ent.ExecutorId == executorId {
		ent.Status = view.TaskStatusSuccess
		ent.AuditId = auditId
		ent.Details = ""
	}
	return nil
}

func (f *fakeAuditTaskRepository) UpdateLastActive(ctx context.Context, id string, executorId string) error {
	return nil
}

type memoryAuditCache struct {
	mutex  sync.Mutex
	values map[string]view.AuditResult
	hits   int
}

func newMemoryAuditCache() *memoryAuditCache {
	return &memoryAuditCache{values: map[string]view.AuditResult{}}
}

func (m *memoryAuditCache) Get(ctx context.Context, key string) (*view.AuditResult, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	res, ok := m.values[key]
	if !ok {
		return nil, false
	}
	m.hits++
	return &res, true
}

func (m *memoryAuditCache) Put(ctx context.Context, key string, result *view.AuditResult) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.values[key] = *result
}

type fakeSiteClient struct {
	pages map[string]string
	err   error
}

func (f fakeSiteClient) FetchPage(ctx context.Context, pageUrl string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.pages[pageUrl], nil
}

type fakeLLMClient struct {
	output   *view.FixedPageOutput
	err      error
	received []view.Finding
}

func (f *fakeLLMClient) FixPage(ctx context.Context, html string, findings []view.Finding) (*view.FixedPageOutput, error) {
	f.received = findings
	return f.output, f.err
}

func (f *fakeLLMClient) UpdateFixPagePrompt(prompt string) {}

func (f *fakeLLMClient) UpdateModel(model string) error { return nil }

func (f *fakeLLMClient) GetModel() string { return "fake" }
