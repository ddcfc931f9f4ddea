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

type Category string

const (
	CategoryTechnical      Category = "technical"
	CategoryOnPage         Category = "onpage"
	CategoryContent        Category = "content"
	CategoryMobile         Category = "mobile"
	CategoryPerformance    Category = "performance"
	CategoryAccessibility  Category = "accessibility"
	CategoryStructuredData Category = "structured-data"
	CategoryDesign         Category = "design"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Finding is a single rule outcome. Points is the deduction applied to the
// finding's category budget.
type Finding struct {
	Id               string   `json:"id" yaml:"id"`
	Category         Category `json:"category" yaml:"category" jsonschema:"enum=technical,enum=onpage,enum=content,enum=mobile,enum=performance,enum=accessibility,enum=structured-data,enum=design"`
	Severity         Severity `json:"severity" yaml:"severity" jsonschema:"enum=error,enum=warning,enum=info"`
	Impact           Impact   `json:"impact" yaml:"impact" jsonschema:"enum=high,enum=medium,enum=low"`
	Message          string   `json:"message" yaml:"message"`
	Points           int      `json:"points" yaml:"points"`
	Fixable          bool     `json:"fixable" yaml:"fixable"`
	AutoFixAvailable bool     `json:"autoFixAvailable" yaml:"autoFixAvailable"`
	Details          string   `json:"details,omitempty" yaml:"details,omitempty"`
}
