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

type AuditTask struct {
	tableName struct{} `pg:"audit_task"`

	Id           string          `pg:"id,pk,type:varchar"`
	WebsiteId    string          `pg:"website_id,type:varchar,notnull"`
	Url          string          `pg:"url,type:varchar,notnull"`
	Scope        view.Scope      `pg:"scope,type:varchar,notnull"`
	Status       view.TaskStatus `pg:"status,type:varchar,notnull"`
	Details      string          `pg:"details,type:varchar"`
	AuditId      string          `pg:"audit_id,type:varchar"`
	CreatedAt    time.Time       `pg:"created_at,type:timestamp without time zone,notnull"`
	CreatedBy    string          `pg:"created_by,type:varchar"`
	ExecutorId   string          `pg:"executor_id,type:varchar"`
	LastActive   *time.Time      `pg:"last_active,type:timestamp without time zone"`
	RestartCount int             `pg:"restart_count,type:integer,notnull,use_zero"`
}

func MakeAuditTaskView(ent AuditTask) view.AuditTask {
	return view.AuditTask{
		Id:           ent.Id,
		WebsiteId:    ent.WebsiteId,
		Url:          ent.Url,
		Scope:        ent.Scope,
		Status:       ent.Status,
		Details:      ent.Details,
		AuditId:      ent.AuditId,
		CreatedAt:    ent.CreatedAt,
		CreatedBy:    ent.CreatedBy,
		RestartCount: ent.RestartCount,
	}
}
