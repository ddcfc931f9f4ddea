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

type QualityCategory string

const (
	QualitySEO           QualityCategory = "seo"
	QualityPerformance   QualityCategory = "performance"
	QualityAccessibility QualityCategory = "accessibility"
	QualityDesign        QualityCategory = "design"
	QualityContent       QualityCategory = "content"
)

// QualityCategories is the fixed evaluation order of the validator.
var QualityCategories = []QualityCategory{QualitySEO, QualityPerformance, QualityAccessibility, QualityDesign, QualityContent}

type ValidationCheck struct {
	Score  int      `json:"score" yaml:"score"`
	Issues []string `json:"issues" yaml:"issues"`
}

type ValidationChecks struct {
	SEO           ValidationCheck `json:"seo" yaml:"seo"`
	Performance   ValidationCheck `json:"performance" yaml:"performance"`
	Accessibility ValidationCheck `json:"accessibility" yaml:"accessibility"`
	Design        ValidationCheck `json:"design" yaml:"design"`
	Content       ValidationCheck `json:"content" yaml:"content"`
}

func (c ValidationChecks) Get(category QualityCategory) ValidationCheck {
	switch category {
	case QualitySEO:
		return c.SEO
	case QualityPerformance:
		return c.Performance
	case QualityAccessibility:
		return c.Accessibility
	case QualityDesign:
		return c.Design
	case QualityContent:
		return c.Content
	}
	return ValidationCheck{}
}

type ValidationResult struct {
	Passed          bool             `json:"passed" yaml:"passed"`
	Score           int              `json:"score" yaml:"score"`
	MinScore        int              `json:"minScore" yaml:"minScore"`
	Checks          ValidationChecks `json:"checks" yaml:"checks"`
	Issues          []string         `json:"issues" yaml:"issues"`
	Recommendations []string         `json:"recommendations" yaml:"recommendations"`
}
