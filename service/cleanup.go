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

	"github.com/go-pg/pg/v10"
	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/db"
	"github.com/thundercloud/site-audit-service/entity"
	"github.com/thundercloud/site-audit-service/view"
)

type CleanupService interface {
	ClearWebsiteData(ctx context.Context, websiteId string) (*view.CleanupResult, error)
}

type cleanupServiceImpl struct {
	cp db.ConnectionProvider
}

func NewCleanupService(cp db.ConnectionProvider) CleanupService {
	return &cleanupServiceImpl{
		cp: cp,
	}
}

func (s *cleanupServiceImpl) ClearWebsiteData(ctx context.Context, websiteId string) (*view.CleanupResult, error) {
	log.Debugf("Starting cleanup for website: %s", websiteId)

	result := view.CleanupResult{WebsiteId: websiteId}
	err := s.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		res, err := tx.Model((*entity.AuditTask)(nil)).
			Where("website_id = ?", websiteId).
			Where("status != ?", view.TaskStatusProcessing).
			Delete()
		if err != nil {
			return fmt.Errorf("failed to delete audit_task records: %w", err)
		}
		result.Tasks = res.RowsAffected()

		res, err = tx.Model((*entity.SiteAudit)(nil)).
			Where("website_id = ?", websiteId).
			Delete()
		if err != nil {
			return fmt.Errorf("failed to delete site_audit records: %w", err)
		}
		result.Audits = res.RowsAffected()

		res, err = tx.Model((*entity.QualityValidation)(nil)).
			Where("website_id = ?", websiteId).
			Delete()
		if err != nil {
			return fmt.Errorf("failed to delete quality_validation records: %w", err)
		}
		result.Validations = res.RowsAffected()
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("Cleanup for website %s removed %d audits, %d validations, %d tasks", websiteId, result.Audits, result.Validations, result.Tasks)
	return &result, nil
}
