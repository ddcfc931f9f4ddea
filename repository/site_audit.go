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

	"github.com/go-pg/pg/v10"
	"github.com/thundercloud/site-audit-service/db"
	"github.com/thundercloud/site-audit-service/entity"
)

type SiteAuditRepository interface {
	SaveAudit(ctx context.Context, ent *entity.SiteAudit) error
	GetAudit(ctx context.Context, id string) (*entity.SiteAudit, error)
	GetWebsiteAudits(ctx context.Context, websiteId string, limit int) ([]entity.SiteAudit, error)
}

func NewSiteAuditRepository(cp db.ConnectionProvider) SiteAuditRepository {
	return &siteAuditRepositoryImpl{cp: cp}
}

type siteAuditRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (s siteAuditRepositoryImpl) SaveAudit(ctx context.Context, ent *entity.SiteAudit) error {
	_, err := s.cp.GetConnection().ModelContext(ctx, ent).Insert()
	return err
}

func (s siteAuditRepositoryImpl) GetAudit(ctx context.Context, id string) (*entity.SiteAudit, error) {
	var result entity.SiteAudit
	err := s.cp.GetConnection().ModelContext(ctx, &result).
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

func (s siteAuditRepositoryImpl) GetWebsiteAudits(ctx context.Context, websiteId string, limit int) ([]entity.SiteAudit, error) {
	var result []entity.SiteAudit
	err := s.cp.GetConnection().ModelContext(ctx, &result).
		Where("website_id = ?", websiteId).
		Order("created_at DESC").
		Limit(limit).
		Select()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}
