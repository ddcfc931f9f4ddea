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

type Scope string

const (
	ScopeQuick         Scope = "quick"
	ScopeComprehensive Scope = "comprehensive"
)

// AuditResult is produced by the point-budget scoring model. TotalScore is out
// of MaxScore: 100 for quick scope, 135 for comprehensive scope.
type AuditResult struct {
	Scope           Scope            `json:"scope" yaml:"scope"`
	TotalScore      int              `json:"totalScore" yaml:"totalScore"`
	MaxScore        int              `json:"maxScore" yaml:"maxScore"`
	CategoryScores  map[Category]int `json:"categoryScores" yaml:"categoryScores"`
	CategoryBudgets map[Category]int `json:"categoryBudgets" yaml:"categoryBudgets"`
	Findings        []Finding        `json:"findings" yaml:"findings"`
	Recommendations []string         `json:"recommendations" yaml:"recommendations"`
	ChecksPassed    int              `json:"checksPassed" yaml:"checksPassed"`
	ChecksFailed    int              `json:"checksFailed" yaml:"checksFailed"`
	ChecksWarned    int              `json:"checksWarned" yaml:"checksWarned"`
	Details         *AuditDetails    `json:"details,omitempty" yaml:"details,omitempty"`
}

// AuditDetails is reporting-only data computed for comprehensive audits.
// Nothing here affects scores.
type AuditDetails struct {
	Technical     TechnicalDetails     `json:"technical" yaml:"technical"`
	Content       ContentDetails       `json:"content" yaml:"content"`
	Accessibility AccessibilityDetails `json:"accessibility" yaml:"accessibility"`
}

type TechnicalDetails struct {
	HtmlValidation HtmlStructure  `json:"htmlValidation" yaml:"htmlValidation"`
	LinkAnalysis   LinkStructure  `json:"linkAnalysis" yaml:"linkAnalysis"`
	SchemaMarkup   SchemaOverview `json:"schemaMarkup" yaml:"schemaMarkup"`
}

type HtmlStructure struct {
	HasDoctype    bool `json:"hasDoctype" yaml:"hasDoctype"`
	HasHtmlTag    bool `json:"hasHtmlTag" yaml:"hasHtmlTag"`
	HasHeadTag    bool `json:"hasHeadTag" yaml:"hasHeadTag"`
	HasBodyTag    bool `json:"hasBodyTag" yaml:"hasBodyTag"`
	TotalElements int  `json:"totalElements" yaml:"totalElements"`
}

type LinkStructure struct {
	TotalLinks       int `json:"totalLinks" yaml:"totalLinks"`
	InternalLinks    int `json:"internalLinks" yaml:"internalLinks"`
	ExternalLinks    int `json:"externalLinks" yaml:"externalLinks"`
	LinksWithoutText int `json:"linksWithoutText" yaml:"linksWithoutText"`
}

type SchemaOverview struct {
	Count           int      `json:"count" yaml:"count"`
	Types           []string `json:"types" yaml:"types"`
	HasOrganization bool     `json:"hasOrganization" yaml:"hasOrganization"`
	HasWebSite      bool     `json:"hasWebSite" yaml:"hasWebSite"`
	HasWebPage      bool     `json:"hasWebPage" yaml:"hasWebPage"`
}

type ContentDetails struct {
	ReadabilityScore float64          `json:"readabilityScore" yaml:"readabilityScore"`
	KeywordDensity   KeywordDensity   `json:"keywordDensity" yaml:"keywordDensity"`
	HeadingStructure HeadingStructure `json:"headingStructure" yaml:"headingStructure"`
}

type KeywordDensity struct {
	TotalWords  int       `json:"totalWords" yaml:"totalWords"`
	UniqueWords int       `json:"uniqueWords" yaml:"uniqueWords"`
	TopKeywords []Keyword `json:"topKeywords" yaml:"topKeywords"`
}

type Keyword struct {
	Word    string  `json:"word" yaml:"word"`
	Count   int     `json:"count" yaml:"count"`
	Density float64 `json:"density" yaml:"density"` // percent of total words
}

type HeadingStructure struct {
	H1    int `json:"h1" yaml:"h1"`
	H2    int `json:"h2" yaml:"h2"`
	H3    int `json:"h3" yaml:"h3"`
	H4    int `json:"h4" yaml:"h4"`
	H5    int `json:"h5" yaml:"h5"`
	H6    int `json:"h6" yaml:"h6"`
	Total int `json:"total" yaml:"total"`
}

type AccessibilityDetails struct {
	AriaLabels         AriaCoverage       `json:"ariaLabels" yaml:"ariaLabels"`
	ColorContrast      UncheckedAnalysis  `json:"colorContrast" yaml:"colorContrast"`
	KeyboardNavigation KeyboardNavigation `json:"keyboardNavigation" yaml:"keyboardNavigation"`
}

type AriaCoverage struct {
	ElementsWithAria    int     `json:"elementsWithAria" yaml:"elementsWithAria"`
	InteractiveElements int     `json:"interactiveElements" yaml:"interactiveElements"`
	Coverage            float64 `json:"coverage" yaml:"coverage"` // percent
}

type UncheckedAnalysis struct {
	Checked bool   `json:"checked" yaml:"checked"`
	Note    string `json:"note" yaml:"note"`
}

type KeyboardNavigation struct {
	FocusableElements            int  `json:"focusableElements" yaml:"focusableElements"`
	ElementsWithNegativeTabindex int  `json:"elementsWithNegativeTabindex" yaml:"elementsWithNegativeTabindex"`
	HasTabindexZero              bool `json:"hasTabindexZero" yaml:"hasTabindexZero"`
}
