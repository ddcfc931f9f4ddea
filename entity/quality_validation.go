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

package entity

import (
	"time"

	"github.com/thundercloud/site-audit-service/view"
)

type QualityValidation struct {
	tableName struct{} `pg:"quality_validation"`

	Id              string                `pg:"id,pk,type:varchar"`
	WebsiteId       string                `pg:"website_id,type:varchar,notnull"`
	Score           int                   `pg:"score,type:integer,notnull,use_zero"`
	MinScore        int                   `pg:"min_score,type:integer,notnull,use_zero"`
	Passed          bool                  `pg:"passed,type:boolean,notnull,use_zero"`
	Checks          view.ValidationChecks `pg:"checks,type:jsonb,notnull"`
	Issues          []string              `pg:"issues,type:jsonb,notnull"`
	Recommendations []string              `pg:"recommendations,type:jsonb,notnull"`
	HtmlHash        string                `pg:"html_hash,type:varchar,notnull"`
	CreatedAt       time.Time             `pg:"created_at,type:timestamp without time zone,notnull"`
	CreatedBy       string                `pg:"created_by,type:varchar"`
}

func MakeQualityValidationEntity(id string, websiteId string, htmlHash string, res *view.ValidationResult, createdBy string) *QualityValidation {
	return &QualityValidation{
		Id:              id,
		WebsiteId:       websiteId,
		Score:           res.Score,
		MinScore:        res.MinScore,
		Passed:          res.Passed,
		Checks:          res.Checks,
		Issues:          res.Issues,
		Recommendations: res.Recommendations,
		HtmlHash:        htmlHash,
		CreatedAt:       time.Now(),
		CreatedBy:       createdBy,
	}
}

func MakeValidationRecordView(ent QualityValidation) view.ValidationRecord {
	return view.ValidationRecord{
		Id:        ent.Id,
		WebsiteId: ent.WebsiteId,
		HtmlHash:  ent.HtmlHash,
		CreatedAt: ent.CreatedAt,
		CreatedBy: ent.CreatedBy,
		ValidationResult: view.ValidationResult{
			Passed:          ent.Passed,
			Score:           ent.Score,
			MinScore:        ent.MinScore,
			Checks:          ent.Checks,
			Issues:          ent.Issues,
			Recommendations: ent.Recommendations,
		},
	}
}
