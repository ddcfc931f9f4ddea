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

package view

import "time"

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "not_started"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusSuccess    TaskStatus = "success"
	TaskStatusError      TaskStatus = "error"
)

type AuditTaskRequest struct {
	WebsiteId string `json:"websiteId"`
	Url       string `json:"url"`
	Scope     Scope  `json:"scope,omitempty"`
}

type AuditTask struct {
	Id           string     `json:"id"`
	WebsiteId    string     `json:"websiteId"`
	Url          string     `json:"url"`
	Scope        Scope      `json:"scope"`
	Status       TaskStatus `json:"status"`
	Details      string     `json:"details,omitempty"`
	AuditId      string     `json:"auditId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CreatedBy    string     `json:"createdBy,omitempty"`
	RestartCount int        `json:"restartCount"`
}
