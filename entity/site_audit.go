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

type SiteAudit struct {
	tableName struct{} `pg:"site_audit"`

	Id              string                `pg:"id,pk,type:varchar"`
	WebsiteId       string                `pg:"website_id,type:varchar,notnull"`
	Url             string                `pg:"url,type:varchar"`
	Scope           view.Scope            `pg:"scope,type:varchar,notnull"`
	TotalScore      int                   `pg:"total_score,type:integer,notnull,use_zero"`
	MaxScore        int                   `pg:"max_score,type:integer,notnull"`
	CategoryScores  map[view.Category]int `pg:"category_scores,type:jsonb,notnull"`
	Findings        []view.Finding        `pg:"findings,type:jsonb,notnull"`
	Recommendations []string              `pg:"recommendations,type:jsonb,notnull"`
	ChecksPassed    int                   `pg:"checks_passed,type:integer,notnull,use_zero"`
	ChecksFailed    int                   `pg:"checks_failed,type:integer,notnull,use_zero"`
	ChecksWarned    int                   `pg:"checks_warned,type:integer,notnull,use_zero"`
	Details         *view.AuditDetails    `pg:"details,type:jsonb"`
	HtmlHash        string                `pg:"html_hash,type:varchar,notnull"`
	CreatedAt       time.Time             `pg:"created_at,type:timestamp without time zone,notnull"`
	CreatedBy       string                `pg:"created_by,type:varchar"`
}

func MakeSiteAuditEntity(id string, req view.AuditRequest, htmlHash string, res *view.AuditResult, createdBy string) *SiteAudit {
	return &SiteAudit{
		Id:              id,
		WebsiteId:       req.WebsiteId,
		Url:             req.Url,
		Scope:           res.Scope,
		TotalScore:      res.TotalScore,
		MaxScore:        res.MaxScore,
		CategoryScores:  res.CategoryScores,
		Findings:        res.Findings,
		Recommendations: res.Recommendations,
		ChecksPassed:    res.ChecksPassed,
		ChecksFailed:    res.ChecksFailed,
		ChecksWarned:    res.ChecksWarned,
		Details:         res.Details,
		HtmlHash:        htmlHash,
		CreatedAt:       time.Now(),
		CreatedBy:       createdBy,
	}
}

// MakeAuditRecordView restores category budgets from the scope, they are not stored.
func MakeAuditRecordView(ent SiteAudit, budgets map[view.Category]int) view.AuditRecord {
	return view.AuditRecord{
		Id:        ent.Id,
		WebsiteId: ent.WebsiteId,
		Url:       ent.Url,
		HtmlHash:  ent.HtmlHash,
		CreatedAt: ent.CreatedAt,
		CreatedBy: ent.CreatedBy,
		AuditResult: view.AuditResult{
			Scope:           ent.Scope,
			TotalScore:      ent.TotalScore,
			MaxScore:        ent.MaxScore,
			CategoryScores:  ent.CategoryScores,
			CategoryBudgets: budgets,
			Findings:        ent.Findings,
			Recommendations: ent.Recommendations,
			ChecksPassed:    ent.ChecksPassed,
			ChecksFailed:    ent.ChecksFailed,
			ChecksWarned:    ent.ChecksWarned,
			Details:         ent.Details,
		},
	}
}
