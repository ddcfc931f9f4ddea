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

type QualityValidationRepository interface {
	SaveValidation(ctx context.Context, ent *entity.QualityValidation) error
	GetValidation(ctx context.Context, id string) (*entity.QualityValidation, error)
}

func NewQualityValidationRepository(cp db.ConnectionProvider) QualityValidationRepository {
	return &qualityValidationRepositoryImpl{cp: cp}
}

type qualityValidationRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (q qualityValidationRepositoryImpl) SaveValidation(ctx context.Context, ent *entity.QualityValidation) error {
	_, err := q.cp.GetConnection().ModelContext(ctx, ent).Insert()
	return err
}

func (q qualityValidationRepositoryImpl) GetValidation(ctx context.Context, id string) (*entity.QualityValidation, error) {
	var result entity.QualityValidation
	err := q.cp.GetConnection().ModelContext(ctx, &result).
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
