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

type AuditRequest struct {
	WebsiteId string `json:"websiteId"`
	Url       string `json:"url,omitempty"`
	Html      string `json:"html"`
	Scope     Scope  `json:"scope,omitempty"`
}

// AuditRecord is a persisted audit result.
type AuditRecord struct {
	Id        string    `json:"id"`
	WebsiteId string    `json:"websiteId"`
	Url       string    `json:"url,omitempty"`
	HtmlHash  string    `json:"htmlHash"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy,omitempty"`
	AuditResult
}

type AuditRecords struct {
	Audits []AuditRecord `json:"audits"`
}

type ValidationRequest struct {
	WebsiteId string `json:"websiteId"`
	Html      string `json:"html"`
}

type ValidationRecord struct {
	Id        string    `json:"id"`
	WebsiteId string    `json:"websiteId"`
	HtmlHash  string    `json:"htmlHash"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy,omitempty"`
	ValidationResult
}

type CleanupResult struct {
	WebsiteId   string `json:"websiteId"`
	Audits      int    `json:"audits"`
	Validations int    `json:"validations"`
	Tasks       int    `json:"tasks"`
}
